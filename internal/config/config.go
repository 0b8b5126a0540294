// internal/config/config.go
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database struct {
		URL        string `json:"url"`
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
		LogSQL     bool   `json:"log_sql"`
	} `json:"database"`
	JWT struct {
		Secret        string        `json:"secret"`
		AccessTTL     time.Duration `json:"access_ttl"`
		RefreshTTL    time.Duration `json:"refresh_ttl"`
		SecureCookies bool          `json:"secure_cookies"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	} `json:"server"`
	Scheduler struct {
		Enabled   bool          `json:"enabled"`
		Interval  time.Duration `json:"interval"`
		BatchSize int           `json:"batch_size"`
	} `json:"scheduler"`
	Email struct {
		Provider string `json:"provider"`
		FromName string `json:"from_name"`
	} `json:"email"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	Storage struct {
		Bucket     string        `json:"bucket"`
		Region     string        `json:"region"`
		Endpoint   string        `json:"endpoint"`
		AccessKey  string        `json:"access_key"`
		SecretKey  string        `json:"secret_key"`
		Prefix     string        `json:"prefix"`
		PresignTTL time.Duration `json:"presign_ttl"`
	} `json:"storage"`
	BaseURL string `json:"base_url"`
	DevMode bool   `json:"dev_mode"`
}

// devJWTSecret signs tokens only when DEV_MODE is on and no secret is set.
const devJWTSecret = "sarpa-dev-only-secret"

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set (or DEV_MODE=true for local development)")

func Load() *Config {
	// A missing .env file is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg := &Config{}

	// Database configuration
	cfg.Database.URL = getEnv("DATABASE_URL", "")
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "sarpa")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")
	cfg.Database.LogSQL = getEnvBool("DB_LOG_SQL", false)

	cfg.DevMode = getEnvBool("DEV_MODE", false)

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "")
	if cfg.JWT.Secret == "" && cfg.DevMode {
		slog.Warn("JWT_SECRET not set, using the development secret")
		cfg.JWT.Secret = devJWTSecret
	}
	cfg.JWT.AccessTTL = getEnvDuration("JWT_ACCESS_TTL", 15*time.Minute)
	cfg.JWT.RefreshTTL = getEnvDuration("JWT_REFRESH_TTL", 7*24*time.Hour)
	cfg.JWT.SecureCookies = getEnvBool("JWT_SECURE_COOKIES", false)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	cfg.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)

	// Preventive maintenance scheduler
	cfg.Scheduler.Enabled = getEnvBool("SCHEDULER_ENABLED", true)
	cfg.Scheduler.Interval = getEnvDuration("SCHEDULER_INTERVAL", time.Hour)
	cfg.Scheduler.BatchSize = getEnvInt("SCHEDULER_BATCH_SIZE", 100)

	// Email configuration
	cfg.Email.Provider = getEnv("EMAIL_PROVIDER", "none")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Sarpa CMMS")

	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")

	cfg.SMTP.Host = getEnv("SMTP_HOST", "localhost")
	cfg.SMTP.Port = getEnvInt("SMTP_PORT", 587)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "")

	// Object storage (S3 or MinIO)
	cfg.Storage.Bucket = getEnv("S3_BUCKET", "")
	cfg.Storage.Region = getEnv("S3_REGION", "us-east-1")
	cfg.Storage.Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.Storage.AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.Storage.SecretKey = getEnv("S3_SECRET_KEY", "")
	cfg.Storage.Prefix = getEnv("S3_PREFIX", "sarpa-cmms/")
	cfg.Storage.PresignTTL = getEnvDuration("S3_PRESIGN_TTL", time.Hour)

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:3000")

	return cfg
}

// Validate reports settings the API server cannot run without.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// DSN builds the libpq style connection string shared by gorm and the migrator.
// DATABASE_URL, when set, wins over the individual DB_* variables.
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return "host=" + c.Database.Host +
		" port=" + c.Database.Port +
		" user=" + c.Database.User +
		" password=" + c.Database.Password +
		" dbname=" + c.Database.Name +
		" sslmode=" + c.Database.SSLMode +
		" search_path=" + c.Database.SearchPath
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return d
}
