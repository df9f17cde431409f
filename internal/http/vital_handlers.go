package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"vitalwatch/internal/domain"
	"vitalwatch/internal/service"
)

// VitalHandler 生命体征 API
type VitalHandler struct {
	vitals service.VitalService
	logger *zap.Logger
}

func NewVitalHandler(vitals service.VitalService, logger *zap.Logger) *VitalHandler {
	return &VitalHandler{vitals: vitals, logger: logger}
}

type recordVitalsRequest struct {
	PatientID     string  `json:"patient_id"`
	HeartRate     float64 `json:"heart_rate"`
	Temperature   float64 `json:"temperature"`
	BloodPressure float64 `json:"blood_pressure"`
}

// POST /api/v1/vitals
func (h *VitalHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordVitalsRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	err := h.vitals.Record(r.Context(), req.PatientID, req.HeartRate, req.Temperature, req.BloodPressure)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			writeJSON(w, http.StatusBadRequest, Fail("Missing required fields"))
			return
		}
		h.logger.Error("Failed to record vitals", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to record vitals"))
		return
	}

	writeJSON(w, http.StatusOK, OkMsg("Vitals recorded", struct{}{}))
}

type latestVitalsResponse struct {
	Recorded bool                `json:"recorded"`
	Vitals   domain.VitalReading `json:"vitals"`
}

// GET /api/v1/vitals/{patientId}
// Unknown ids and not-yet-submitted patients both resolve to a placeholder,
// never an error.
func (h *VitalHandler) Latest(w http.ResponseWriter, r *http.Request, patientID string) {
	reading, ok, err := h.vitals.Latest(r.Context(), patientID)
	if err != nil {
		h.logger.Error("Failed to get latest vitals",
			zap.String("patient_id", patientID),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, Fail("failed to get latest vitals"))
		return
	}

	writeJSON(w, http.StatusOK, Ok(latestVitalsResponse{Recorded: ok, Vitals: reading}))
}
