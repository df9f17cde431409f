package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"vitalwatch/internal/service"
)

// PatientHandler 病人登记 API
type PatientHandler struct {
	patients service.PatientService
	logger   *zap.Logger
}

func NewPatientHandler(patients service.PatientService, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{patients: patients, logger: logger}
}

type registerPatientRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type registerPatientResponse struct {
	ID string `json:"id"`
}

// POST /api/v1/patients
func (h *PatientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerPatientRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	p, err := h.patients.Register(r.Context(), req.Name, req.Age)
	if err != nil {
		h.logger.Error("Failed to register patient", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to register patient"))
		return
	}

	writeJSON(w, http.StatusOK, OkMsg("Patient registered successfully", registerPatientResponse{ID: p.ID}))
}

// GET /api/v1/patients
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.patients.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list patients", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to list patients"))
		return
	}

	writeJSON(w, http.StatusOK, Ok(all))
}
