package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"vitalwatch/internal/domain"
	"vitalwatch/internal/repository"
)

// PatientService 病人登记服务
type PatientService interface {
	// Register creates a patient and reserves their vitals slot and alert log.
	Register(ctx context.Context, name string, age int) (domain.Patient, error)

	// List returns a snapshot of the roster.
	List(ctx context.Context) ([]domain.Patient, error)
}

type patientService struct {
	patientsRepo repository.PatientsRepo
	vitalsRepo   repository.VitalsRepo
	alertsRepo   repository.AlertsRepo
	audit        Auditor
	logger       *zap.Logger
}

func NewPatientService(
	patientsRepo repository.PatientsRepo,
	vitalsRepo repository.VitalsRepo,
	alertsRepo repository.AlertsRepo,
	audit Auditor,
	logger *zap.Logger,
) PatientService {
	return &patientService{
		patientsRepo: patientsRepo,
		vitalsRepo:   vitalsRepo,
		alertsRepo:   alertsRepo,
		audit:        audit,
		logger:       logger,
	}
}

func (s *patientService) Register(ctx context.Context, name string, age int) (domain.Patient, error) {
	p, err := s.patientsRepo.Create(ctx, name, age)
	if err != nil {
		return domain.Patient{}, fmt.Errorf("failed to create patient: %w", err)
	}

	// Placeholder slots so reads resolve cleanly before the first submission.
	if err := s.vitalsRepo.Init(ctx, p.ID); err != nil {
		s.logger.Warn("Failed to init vitals slot", zap.String("patient_id", p.ID), zap.Error(err))
	}
	if err := s.alertsRepo.Init(ctx, p.ID); err != nil {
		s.logger.Warn("Failed to init alert log", zap.String("patient_id", p.ID), zap.Error(err))
	}

	s.logger.Info("Patient registered",
		zap.String("patient_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("age", p.Age),
	)
	s.audit.Record(fmt.Sprintf("patient %s registered (name=%s age=%d)", p.ID, p.Name, p.Age))

	return p, nil
}

func (s *patientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.patientsRepo.List(ctx)
}
