package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Storage  StorageConfig
	Ledger   LedgerConfig
	Lock     LockConfig
	Cron     CronConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AdminConfig holds the single back-office login. The password is stored as a
// bcrypt hash, never in plain text.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

// LedgerConfig holds payment ledger tuning.
//
// UpsertScanWindow bounds how many of the most recent ledger rows are scanned
// when saving a payment. A record older than the window is no longer eligible
// for update-in-place, so re-saving a very old period appends a duplicate row.
// That staleness limit is inherited from the spreadsheet backend this service
// replaced and stays a visible knob rather than hidden behavior.
type LedgerConfig struct {
	UpsertScanWindow int
}

// LockConfig holds write serialization settings.
type LockConfig struct {
	WriteTimeout time.Duration
}

type CronConfig struct {
	AttendanceAuditInterval time.Duration
}

func Load() (*Config, error) {
	// Running without a .env file is fine, real env vars win anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "workshop"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Admin login
	config.Admin = AdminConfig{
		Username:     getEnv("ADMIN_USERNAME", "admin"),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	// File storage
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Payment ledger tuning
	scanWindow, err := strconv.Atoi(getEnv("PAYMENT_UPSERT_SCAN_WINDOW", "200"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_UPSERT_SCAN_WINDOW: %w", err)
	}
	config.Ledger = LedgerConfig{UpsertScanWindow: scanWindow}

	// Write lock
	lockTimeout, err := time.ParseDuration(getEnv("WRITE_LOCK_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WRITE_LOCK_TIMEOUT: %w", err)
	}
	config.Lock = LockConfig{WriteTimeout: lockTimeout}

	auditInterval, err := time.ParseDuration(getEnv("ATTENDANCE_AUDIT_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_AUDIT_INTERVAL: %w", err)
	}
	config.Cron = CronConfig{AttendanceAuditInterval: auditInterval}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if c.Ledger.UpsertScanWindow <= 0 {
		return fmt.Errorf("PAYMENT_UPSERT_SCAN_WINDOW must be positive")
	}
	if c.Lock.WriteTimeout <= 0 {
		return fmt.Errorf("WRITE_LOCK_TIMEOUT must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
