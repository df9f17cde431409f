package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"vitalwatch/internal/service"
)

// AlertHandler 报警查询 API
type AlertHandler struct {
	alerts service.AlertService
	logger *zap.Logger
}

func NewAlertHandler(alerts service.AlertService, logger *zap.Logger) *AlertHandler {
	return &AlertHandler{alerts: alerts, logger: logger}
}

// GET /api/v1/alerts/{patientId}
func (h *AlertHandler) ListByPatient(w http.ResponseWriter, r *http.Request, patientID string) {
	log, err := h.alerts.Alerts(r.Context(), patientID)
	if err != nil {
		h.logger.Error("Failed to get alerts",
			zap.String("patient_id", patientID),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, Fail("failed to get alerts"))
		return
	}

	writeJSON(w, http.StatusOK, Ok(log))
}
