package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vitalwatch/internal/domain"
	"vitalwatch/internal/evaluator"
	"vitalwatch/internal/repository"
)

// AlertService 报警服务
type AlertService interface {
	// CheckVitals evaluates one submission against the fixed thresholds and
	// appends an alert to the patient's log when at least one condition fires.
	CheckVitals(ctx context.Context, patientID string, heartRate, temperature, bloodPressure float64) (evaluator.Result, error)

	// Alerts returns the patient's full alert log in append order.
	Alerts(ctx context.Context, patientID string) ([]domain.Alert, error)
}

type alertService struct {
	eval       *evaluator.Evaluator
	alertsRepo repository.AlertsRepo
	audit      Auditor
	logger     *zap.Logger
}

func NewAlertService(
	eval *evaluator.Evaluator,
	alertsRepo repository.AlertsRepo,
	audit Auditor,
	logger *zap.Logger,
) AlertService {
	return &alertService{
		eval:       eval,
		alertsRepo: alertsRepo,
		audit:      audit,
		logger:     logger,
	}
}

func (s *alertService) CheckVitals(ctx context.Context, patientID string, heartRate, temperature, bloodPressure float64) (evaluator.Result, error) {
	result := s.eval.Evaluate(heartRate, temperature, bloodPressure)

	if !result.Triggered {
		s.audit.Record(fmt.Sprintf("no alert for patient %s", patientID))
		return result, nil
	}

	alert := domain.Alert{
		PatientID: patientID,
		Message:   result.Message,
		CreatedAt: time.Now(),
	}
	if err := s.alertsRepo.Append(ctx, alert); err != nil {
		return result, fmt.Errorf("failed to append alert: %w", err)
	}

	s.logger.Info("Alert triggered",
		zap.String("patient_id", patientID),
		zap.String("message", result.Message),
	)
	s.audit.Record(fmt.Sprintf("alert triggered for patient %s: %s", patientID, result.Message))

	return result, nil
}

func (s *alertService) Alerts(ctx context.Context, patientID string) ([]domain.Alert, error) {
	return s.alertsRepo.ListByPatient(ctx, patientID)
}
