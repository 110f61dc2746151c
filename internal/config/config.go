package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Workday  WorkdayConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// WorkdayConfig holds the attendance policy knobs. They come from the
// environment so the standard day length, late threshold and weekly rest day
// can be adjusted per deployment without code changes.
type WorkdayConfig struct {
	StandardWorkMinutes int
	WorkStart           string // "HH:MM", nominal start of the workday
	LateGraceMinutes    int
	WeeklyRestDay       time.Weekday
}

func Load() (*Config, error) {
	// Missing .env is fine; env vars may come from the runtime directly.
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
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Workday policy configuration
	standardMinutes, err := strconv.Atoi(getEnv("WORKDAY_STANDARD_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKDAY_STANDARD_MINUTES: %w", err)
	}

	graceMinutes, err := strconv.Atoi(getEnv("WORKDAY_LATE_GRACE_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKDAY_LATE_GRACE_MINUTES: %w", err)
	}

	restDay, err := parseWeekday(getEnv("WORKDAY_WEEKLY_REST_DAY", "Friday"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKDAY_WEEKLY_REST_DAY: %w", err)
	}

	config.Workday = WorkdayConfig{
		StandardWorkMinutes: standardMinutes,
		WorkStart:           getEnv("WORKDAY_START", "09:00"),
		LateGraceMinutes:    graceMinutes,
		WeeklyRestDay:       restDay,
	}

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
	if c.Workday.StandardWorkMinutes <= 0 {
		return fmt.Errorf("WORKDAY_STANDARD_MINUTES must be positive")
	}
	if c.Workday.LateGraceMinutes < 0 {
		return fmt.Errorf("WORKDAY_LATE_GRACE_MINUTES must not be negative")
	}
	if _, err := time.Parse("15:04", c.Workday.WorkStart); err != nil {
		return fmt.Errorf("WORKDAY_START must be HH:MM: %w", err)
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

// StartMinute returns WorkStart as minutes after midnight. Load validates the
// format, so parsing here cannot fail.
func (w WorkdayConfig) StartMinute() int {
	t, _ := time.Parse("15:04", w.WorkStart)
	return t.Hour()*60 + t.Minute()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
