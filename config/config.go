package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV" envDefault:"development"`
		Port        string `env:"PORT"    envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	}
	Backend struct {
		AuthURL     string `env:"BACKEND_AUTH_URL"`
		UserAuthURL string `env:"BACKEND_USER_AUTH_URL"`
		TeamsURL    string `env:"BACKEND_TEAMS_URL"`
		RegisterURL string `env:"BACKEND_REGISTER_URL"`
		SettingsURL string `env:"BACKEND_SETTINGS_URL"`
		ScheduleURL string `env:"BACKEND_SCHEDULE_URL"`
		// Outbound request timeout in seconds. The upstream functions are
		// serverless and can cold-start, so keep this generous.
		TimeoutSeconds int `env:"BACKEND_TIMEOUT_SECONDS" envDefault:"15"`
	}
	Session struct {
		Secret        string `env:"SESSION_SECRET"`
		ExpiryMinutes int    `env:"SESSION_EXPIRY_MINUTES" envDefault:"720"`
	}
	Admin struct {
		// Username of the one account that can never be deleted and always
		// gets the super_admin panel.
		SuperAdminUsername string `env:"SUPER_ADMIN_USERNAME" envDefault:"Xuna"`
	}
}

// Global AppConfig instance, accessible after LoadConfig() is called via Initialize.
var appConfig *Config
var once sync.Once // Used for singleton pattern to load config only once

// LoadConfig loads configuration from environment variables into the Config struct.
// It's designed to be called once.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	// --- Backend endpoints ---
	// Each upstream handler is deployed as its own function, so each one gets
	// its own URL rather than a shared base path.
	cfg.Backend.AuthURL = getEnv("BACKEND_AUTH_URL", "")
	cfg.Backend.UserAuthURL = getEnv("BACKEND_USER_AUTH_URL", "")
	cfg.Backend.TeamsURL = getEnv("BACKEND_TEAMS_URL", "")
	cfg.Backend.RegisterURL = getEnv("BACKEND_REGISTER_URL", "")
	cfg.Backend.SettingsURL = getEnv("BACKEND_SETTINGS_URL", "")
	cfg.Backend.ScheduleURL = getEnv("BACKEND_SCHEDULE_URL", "")

	var err error
	cfg.Backend.TimeoutSeconds, err = getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 15)
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT_SECONDS: %w", err)
	}

	// --- Session Configuration ---
	cfg.Session.Secret = getEnv("SESSION_SECRET", "your-very-strong-session-secret")
	cfg.Session.ExpiryMinutes, err = getEnvAsInt("SESSION_EXPIRY_MINUTES", 720)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_EXPIRY_MINUTES: %w", err)
	}

	// --- Admin Configuration ---
	cfg.Admin.SuperAdminUsername = getEnv("SUPER_ADMIN_USERNAME", "Xuna")

	// Basic validation for critical values
	if cfg.Session.Secret == "your-very-strong-session-secret" {
		log.Println("WARNING: Using default session secret. Please set SESSION_SECRET environment variable for production.")
	}
	for name, url := range map[string]string{
		"BACKEND_AUTH_URL":      cfg.Backend.AuthURL,
		"BACKEND_USER_AUTH_URL": cfg.Backend.UserAuthURL,
		"BACKEND_TEAMS_URL":     cfg.Backend.TeamsURL,
		"BACKEND_REGISTER_URL":  cfg.Backend.RegisterURL,
		"BACKEND_SETTINGS_URL":  cfg.Backend.SettingsURL,
		"BACKEND_SCHEDULE_URL":  cfg.Backend.ScheduleURL,
	} {
		if url == "" {
			log.Printf("WARNING: %s is not set; requests to that endpoint will fail.", name)
		}
	}

	appConfig = cfg // Set the global instance
	return cfg, nil
}

// Initialize loads all configurations.
// This should be called once at the start of your application (e.g., in main.go).
func Initialize() error {
	var loadErr error
	// Load configuration only once
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg // Ensure global appConfig is set
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It panics if the configuration has not been loaded yet,
// ensuring that configuration is always available when requested after Initialize().
func GetConfig() *Config {
	if appConfig == nil {
		// This should ideally not happen if Initialize() is called correctly in main.
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
