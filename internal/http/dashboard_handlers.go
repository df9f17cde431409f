package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"vitalwatch/internal/aggregator"
	"vitalwatch/internal/export"
	"vitalwatch/internal/service"
)

// DashboardHandler serves the composed roster view the front end renders:
// every patient with their latest vitals and full alert log.
type DashboardHandler struct {
	patients service.PatientService
	views    *aggregator.ViewAggregator
	logger   *zap.Logger
}

func NewDashboardHandler(patients service.PatientService, views *aggregator.ViewAggregator, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{patients: patients, views: views, logger: logger}
}

// GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	roster, err := h.patients.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list patients for dashboard", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to load dashboard"))
		return
	}

	views := h.views.AggregateViews(r.Context(), roster)
	writeJSON(w, http.StatusOK, Ok(views))
}

// GET /api/v1/patients/export
func (h *DashboardHandler) ExportRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.patients.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list patients for export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to export roster"))
		return
	}

	views := h.views.AggregateViews(r.Context(), roster)
	data, err := export.GenerateRosterExport(views)
	if err != nil {
		h.logger.Error("Failed to generate roster export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to export roster"))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="patients.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
