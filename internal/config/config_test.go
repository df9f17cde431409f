package config

import (
	"os"
	"testing"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("Expected HTTP_ADDR default ':8080', got '%s'", cfg.HTTP.Addr)
	}

	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Expected REDIS_ADDR default 'localhost:6379', got '%s'", cfg.Redis.Addr)
	}

	if cfg.Audit.Mode != "file" {
		t.Errorf("Expected AUDIT_MODE default 'file', got '%s'", cfg.Audit.Mode)
	}

	if cfg.Audit.Stream != "vitalwatch:audit" {
		t.Errorf("Expected AUDIT_STREAM default 'vitalwatch:audit', got '%s'", cfg.Audit.Stream)
	}

	if cfg.Audit.File.MaxSizeMB != 50 {
		t.Errorf("Expected AUDIT_FILE_MAX_SIZE_MB default 50, got %d", cfg.Audit.File.MaxSizeMB)
	}

	if cfg.Audit.BufferSize != 256 {
		t.Errorf("Expected AUDIT_BUFFER_SIZE default 256, got %d", cfg.Audit.BufferSize)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Expected LOG_LEVEL default 'info', got '%s'", cfg.Log.Level)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Expected LOG_FORMAT default 'json', got '%s'", cfg.Log.Format)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("REDIS_ADDR", "redis-test:6379")
	os.Setenv("AUDIT_MODE", "redis")
	os.Setenv("AUDIT_BUFFER_SIZE", "64")
	os.Setenv("LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("REDIS_ADDR")
		os.Unsetenv("AUDIT_MODE")
		os.Unsetenv("AUDIT_BUFFER_SIZE")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("Expected HTTP_ADDR ':9090', got '%s'", cfg.HTTP.Addr)
	}

	if cfg.Redis.Addr != "redis-test:6379" {
		t.Errorf("Expected REDIS_ADDR 'redis-test:6379', got '%s'", cfg.Redis.Addr)
	}

	if cfg.Audit.Mode != "redis" {
		t.Errorf("Expected AUDIT_MODE 'redis', got '%s'", cfg.Audit.Mode)
	}

	if cfg.Audit.BufferSize != 64 {
		t.Errorf("Expected AUDIT_BUFFER_SIZE 64, got %d", cfg.Audit.BufferSize)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Expected LOG_LEVEL 'debug', got '%s'", cfg.Log.Level)
	}
}

func TestGetEnvInt_InvalidValue(t *testing.T) {
	os.Setenv("AUDIT_BUFFER_SIZE", "not-a-number")
	defer os.Unsetenv("AUDIT_BUFFER_SIZE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Audit.BufferSize != 256 {
		t.Errorf("Expected fallback to default 256, got %d", cfg.Audit.BufferSize)
	}
}
