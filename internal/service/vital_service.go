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

// VitalService 生命体征服务
type VitalService interface {
	// Record validates and stores one submission, then runs alert
	// evaluation before returning. Evaluation failure does not roll back
	// the stored reading.
	Record(ctx context.Context, patientID string, heartRate, temperature, bloodPressure float64) error

	// Latest returns the stored reading, or a placeholder (ok=false) for
	// unknown ids and patients with no submission yet.
	Latest(ctx context.Context, patientID string) (domain.VitalReading, bool, error)
}

// VitalsChecker is the evaluation hook invoked on every successful write.
// Satisfied by AlertService.
type VitalsChecker interface {
	CheckVitals(ctx context.Context, patientID string, heartRate, temperature, bloodPressure float64) (evaluator.Result, error)
}

type vitalService struct {
	vitalsRepo repository.VitalsRepo
	checker    VitalsChecker
	audit      Auditor
	logger     *zap.Logger
}

func NewVitalService(
	vitalsRepo repository.VitalsRepo,
	checker VitalsChecker,
	audit Auditor,
	logger *zap.Logger,
) VitalService {
	return &vitalService{
		vitalsRepo: vitalsRepo,
		checker:    checker,
		audit:      audit,
		logger:     logger,
	}
}

func (s *vitalService) Record(ctx context.Context, patientID string, heartRate, temperature, bloodPressure float64) error {
	// NOTE: a reading of exactly 0 is rejected the same as an absent field.
	// Known quirk of the ingest contract; upstream forms never submit zeros.
	if patientID == "" || heartRate == 0 || temperature == 0 || bloodPressure == 0 {
		s.logger.Warn("Rejected vitals submission",
			zap.String("patient_id", patientID),
			zap.Float64("heart_rate", heartRate),
			zap.Float64("temperature", temperature),
			zap.Float64("blood_pressure", bloodPressure),
		)
		s.audit.Record(fmt.Sprintf("vitals rejected for patient %s: missing required fields", patientID))
		return ErrInvalidArgument
	}

	reading := domain.VitalReading{
		PatientID:     patientID,
		HeartRate:     heartRate,
		Temperature:   temperature,
		BloodPressure: bloodPressure,
		Timestamp:     time.Now(),
	}
	if err := s.vitalsRepo.Put(ctx, reading); err != nil {
		return fmt.Errorf("failed to store vitals: %w", err)
	}

	s.audit.Record(fmt.Sprintf("vitals recorded for patient %s (hr=%.1f temp=%.1f bp=%.1f)",
		patientID, heartRate, temperature, bloodPressure))

	// Evaluation runs before the write returns; the reading stays stored
	// even when it fails.
	if _, err := s.checker.CheckVitals(ctx, patientID, heartRate, temperature, bloodPressure); err != nil {
		s.logger.Warn("Vitals evaluation failed",
			zap.String("patient_id", patientID),
			zap.Error(err),
		)
	}

	return nil
}

func (s *vitalService) Latest(ctx context.Context, patientID string) (domain.VitalReading, bool, error) {
	return s.vitalsRepo.Latest(ctx, patientID)
}
