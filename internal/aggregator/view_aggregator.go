package aggregator

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"vitalwatch/internal/domain"
)

// VitalSource supplies the latest reading per patient.
// Satisfied by service.VitalService.
type VitalSource interface {
	Latest(ctx context.Context, patientID string) (domain.VitalReading, bool, error)
}

// AlertSource supplies the full alert log per patient.
// Satisfied by service.AlertService.
type AlertSource interface {
	Alerts(ctx context.Context, patientID string) ([]domain.Alert, error)
}

// ViewAggregator 读侧聚合器
// Composes the dashboard view per patient by fanning out to the vital and
// alert sources. It owns no state of its own.
type ViewAggregator struct {
	vitals VitalSource
	alerts AlertSource
	logger *zap.Logger
}

func NewViewAggregator(vitals VitalSource, alerts AlertSource, logger *zap.Logger) *ViewAggregator {
	return &ViewAggregator{
		vitals: vitals,
		alerts: alerts,
		logger: logger,
	}
}

// AggregateViews builds one view per patient, all patients in parallel.
// It waits for every fan-out to finish and always returns exactly
// len(patients) entries in input order; a failed or empty sub-lookup
// degrades that patient's view to placeholders instead of failing the call.
func (a *ViewAggregator) AggregateViews(ctx context.Context, patients []domain.Patient) []domain.PatientView {
	views := make([]domain.PatientView, len(patients))

	var wg sync.WaitGroup
	for i, p := range patients {
		wg.Add(1)
		go func(i int, p domain.Patient) {
			defer wg.Done()
			views[i] = a.aggregateOne(ctx, p)
		}(i, p)
	}
	wg.Wait()

	return views
}

// aggregateOne issues the vitals and alerts lookups for one patient
// concurrently and merges whatever came back.
func (a *ViewAggregator) aggregateOne(ctx context.Context, p domain.Patient) domain.PatientView {
	var (
		wg       sync.WaitGroup
		reading  domain.VitalReading
		recorded bool
		alerts   []domain.Alert
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		r, ok, err := a.vitals.Latest(ctx, p.ID)
		if err != nil {
			a.logger.Warn("Failed to get latest vitals",
				zap.String("patient_id", p.ID),
				zap.Error(err),
			)
			return
		}
		reading, recorded = r, ok
	}()
	go func() {
		defer wg.Done()
		list, err := a.alerts.Alerts(ctx, p.ID)
		if err != nil {
			a.logger.Warn("Failed to get alerts",
				zap.String("patient_id", p.ID),
				zap.Error(err),
			)
			return
		}
		alerts = list
	}()
	wg.Wait()

	if alerts == nil {
		alerts = []domain.Alert{}
	}

	return domain.PatientView{
		Patient:        p,
		Vitals:         reading,
		VitalsRecorded: recorded,
		Alerts:         alerts,
	}
}
