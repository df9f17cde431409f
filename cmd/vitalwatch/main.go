package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"vitalwatch/internal/aggregator"
	"vitalwatch/internal/audit"
	"vitalwatch/internal/config"
	"vitalwatch/internal/evaluator"
	httpapi "vitalwatch/internal/http"
	"vitalwatch/internal/logging"
	"vitalwatch/internal/repository"
	"vitalwatch/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format, "vitalwatch")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting vitalwatch service")

	sink, err := newAuditSink(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize audit sink", zap.Error(err))
	}
	recorder := audit.NewRecorder(sink, cfg.Audit.BufferSize, logger)

	// stores
	patientsRepo := repository.NewMemoryPatientsRepo()
	vitalsRepo := repository.NewMemoryVitalsRepo()
	alertsRepo := repository.NewMemoryAlertsRepo()

	// services
	alerts := service.NewAlertService(evaluator.NewEvaluator(logger), alertsRepo, recorder, logger)
	vitals := service.NewVitalService(vitalsRepo, alerts, recorder, logger)
	patients := service.NewPatientService(patientsRepo, vitalsRepo, alertsRepo, recorder, logger)
	views := aggregator.NewViewAggregator(vitals, alerts, logger)

	// HTTP API
	router := httpapi.NewRouter(logger)
	router.RegisterRoutes(
		httpapi.NewPatientHandler(patients, logger),
		httpapi.NewVitalHandler(vitals, logger),
		httpapi.NewAlertHandler(alerts, logger),
		httpapi.NewDashboardHandler(patients, views, logger),
	)

	server := service.NewServer(cfg.HTTP.Addr, router, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.Error("Server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Error("Error stopping server", zap.Error(err))
	}
	if err := recorder.Close(); err != nil {
		logger.Error("Error closing audit recorder", zap.Error(err))
	}

	logger.Info("Service stopped")
}

// newAuditSink builds the configured audit sink. The redis sink is verified
// with a ping at startup so misconfiguration fails fast instead of dropping
// every event later.
func newAuditSink(cfg *config.Config, logger *zap.Logger) (audit.Sink, error) {
	switch cfg.Audit.Mode {
	case "file":
		return audit.NewFileSink(
			cfg.Audit.File.Path,
			cfg.Audit.File.MaxSizeMB,
			cfg.Audit.File.MaxBackups,
			cfg.Audit.File.MaxAgeDays,
		), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		logger.Info("Audit events publishing to Redis Stream", zap.String("stream", cfg.Audit.Stream))
		return audit.NewStreamSink(client, cfg.Audit.Stream), nil
	case "none":
		return audit.NopSink{}, nil
	default:
		return nil, fmt.Errorf("unsupported audit mode: %s", cfg.Audit.Mode)
	}
}
