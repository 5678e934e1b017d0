package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Dashboard guard policies.
const (
	GuardRedirect = "redirect"
	GuardBlank    = "blank"
)

const devSessionSecret = "oncampus-dev-session-secret"

// Provider exposes configuration to components that should not depend on the concrete struct.
type Provider interface {
	GetServerAddr() string
	GetSessionSecret() string
	GetAppEnv() string
	GetLogFormat() string
	GetLogLevel() string
	GetInitialScreen() string
	GetDashboardGuard() string
	GetMinSkills() int
	GetInviteCap() int
	GetInviteInterval() time.Duration
	GetInviteMaxStep() int
	GetInviteLink() string
	GetSeedDir() string
	GetSeedWatch() bool
	GetEventBuffer() int
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr     string
	SessionSecret  string
	AppEnv         string
	LogFormat      string
	LogLevel       string
	InitialScreen  string
	DashboardGuard string
	MinSkills      int
	InviteCap      int
	InviteInterval time.Duration
	InviteMaxStep  int
	InviteLink     string
	SeedDir        string
	SeedWatch      bool
	EventBuffer    int
}

// Compile-time interface compliance check
var _ Provider = (*Config)(nil)

// Defaults returns the configuration used when no environment is set.
func Defaults() *Config {
	return &Config{
		ServerAddr:     ":8080",
		SessionSecret:  devSessionSecret,
		AppEnv:         "development",
		LogFormat:      "text",
		LogLevel:       "debug",
		InitialScreen:  "student_landing",
		DashboardGuard: GuardRedirect,
		MinSkills:      1,
		InviteCap:      50,
		InviteInterval: 2 * time.Second,
		InviteMaxStep:  2,
		InviteLink:     "https://oncampus.app/join/iit-delhi-2026",
		EventBuffer:    100,
	}
}

// New loads configuration from a .env file, if any, and environment variables.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads the environment on top of Defaults and validates the result.
func FromEnv() (*Config, error) {
	cfg := Defaults()

	cfg.ServerAddr = stringEnv("SERVER_ADDR", cfg.ServerAddr)
	cfg.AppEnv = stringEnv("APP_ENV", cfg.AppEnv)
	cfg.SessionSecret = stringEnv("SESSION_SECRET", cfg.SessionSecret)
	cfg.LogFormat = stringEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.LogLevel = stringEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.InitialScreen = stringEnv("ONCAMPUS_INITIAL_SCREEN", cfg.InitialScreen)
	cfg.DashboardGuard = strings.ToLower(stringEnv("ONCAMPUS_DASHBOARD_GUARD", cfg.DashboardGuard))
	cfg.InviteLink = stringEnv("ONCAMPUS_INVITE_LINK", cfg.InviteLink)
	cfg.SeedDir = stringEnv("ONCAMPUS_SEED_DIR", cfg.SeedDir)

	var err error
	if cfg.MinSkills, err = intEnv("ONCAMPUS_MIN_SKILLS", cfg.MinSkills); err != nil {
		return nil, err
	}
	if cfg.InviteCap, err = intEnv("ONCAMPUS_INVITE_CAP", cfg.InviteCap); err != nil {
		return nil, err
	}
	if cfg.InviteMaxStep, err = intEnv("ONCAMPUS_INVITE_MAX_STEP", cfg.InviteMaxStep); err != nil {
		return nil, err
	}
	if cfg.EventBuffer, err = intEnv("ONCAMPUS_EVENT_BUFFER", cfg.EventBuffer); err != nil {
		return nil, err
	}
	if raw := os.Getenv("ONCAMPUS_INVITE_INTERVAL"); raw != "" {
		if cfg.InviteInterval, err = time.ParseDuration(raw); err != nil {
			return nil, fmt.Errorf("ONCAMPUS_INVITE_INTERVAL: %w", err)
		}
	}
	if raw := os.Getenv("ONCAMPUS_SEED_WATCH"); raw != "" {
		if cfg.SeedWatch, err = strconv.ParseBool(raw); err != nil {
			return nil, fmt.Errorf("ONCAMPUS_SEED_WATCH: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	if c.DashboardGuard != GuardRedirect && c.DashboardGuard != GuardBlank {
		return fmt.Errorf("ONCAMPUS_DASHBOARD_GUARD must be %q or %q, got %q", GuardRedirect, GuardBlank, c.DashboardGuard)
	}
	if c.MinSkills < 1 {
		return fmt.Errorf("ONCAMPUS_MIN_SKILLS must be at least 1, got %d", c.MinSkills)
	}
	if c.InviteCap < 0 || c.InviteMaxStep < 0 {
		return fmt.Errorf("invite cap and step must not be negative")
	}
	if c.InviteInterval <= 0 {
		return fmt.Errorf("ONCAMPUS_INVITE_INTERVAL must be positive")
	}
	if c.AppEnv == "production" && c.SessionSecret == devSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetAppEnv() string                { return c.AppEnv }
func (c *Config) GetLogFormat() string             { return c.LogFormat }
func (c *Config) GetLogLevel() string              { return c.LogLevel }
func (c *Config) GetInitialScreen() string         { return c.InitialScreen }
func (c *Config) GetDashboardGuard() string        { return c.DashboardGuard }
func (c *Config) GetMinSkills() int                { return c.MinSkills }
func (c *Config) GetInviteCap() int                { return c.InviteCap }
func (c *Config) GetInviteInterval() time.Duration { return c.InviteInterval }
func (c *Config) GetInviteMaxStep() int            { return c.InviteMaxStep }
func (c *Config) GetInviteLink() string            { return c.InviteLink }
func (c *Config) GetSeedDir() string               { return c.SeedDir }
func (c *Config) GetSeedWatch() bool               { return c.SeedWatch }
func (c *Config) GetEventBuffer() int              { return c.EventBuffer }
