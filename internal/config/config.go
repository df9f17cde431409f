package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 监护服务配置
type Config struct {
	HTTP struct {
		Addr string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	// Audit event sink configuration.
	// Mode options: "file" (rotating log file), "redis" (Redis Streams), "none"
	Audit struct {
		Mode   string
		Stream string // Redis Streams key, e.g. "vitalwatch:audit"

		File struct {
			Path       string
			MaxSizeMB  int // rotate after this size
			MaxBackups int
			MaxAgeDays int
		}

		BufferSize int // async recorder queue; events are dropped (with a warn) when full
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present (local development).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.Audit.Mode = getEnv("AUDIT_MODE", "file")
	cfg.Audit.Stream = getEnv("AUDIT_STREAM", "vitalwatch:audit")
	cfg.Audit.File.Path = getEnv("AUDIT_FILE_PATH", "logs/audit.log")
	cfg.Audit.File.MaxSizeMB = getEnvInt("AUDIT_FILE_MAX_SIZE_MB", 50)
	cfg.Audit.File.MaxBackups = getEnvInt("AUDIT_FILE_MAX_BACKUPS", 5)
	cfg.Audit.File.MaxAgeDays = getEnvInt("AUDIT_FILE_MAX_AGE_DAYS", 30)
	cfg.Audit.BufferSize = getEnvInt("AUDIT_BUFFER_SIZE", 256)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}
