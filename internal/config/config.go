package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"roscripthub/internal/hub"
)

// Config contains the runtime settings of the hub UI.
// Use DefaultConfig() to get sensible defaults, then override as needed.
type Config struct {
	// Startup
	StartPage hub.Page // Page shown first (default: home)

	// Terminal
	MouseEnabled bool // Capture mouse clicks on controls (default: true)
	AltScreen    bool // Run in the alternate screen buffer (default: true)

	// Logging
	LogFile string // Debug log path; empty disables logging (default: "")

	// Community ranking
	ReputationSeed uint64 // Seed for reputation draws; 0 is random (default: 0)

	// Navigation underline animation
	FPS             int     // Animation frames per second (default: 60)
	SpringFrequency float64 // Angular frequency of the spring (default: 12)
	SpringDamping   float64 // Damping ratio of the spring (default: 0.9)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		StartPage:       hub.PageHome,
		MouseEnabled:    true,
		AltScreen:       true,
		FPS:             60,
		SpringFrequency: 12.0,
		SpringDamping:   0.9,
	}
}

// Load reads HUB_* variables, after loading a .env file if one exists, on top
// of DefaultConfig. The result is validated.
func Load() (Config, error) {
	_ = godotenv.Load() // a missing .env is fine

	cfg := DefaultConfig()

	if v := getEnv("HUB_START_PAGE", ""); v != "" {
		p, err := hub.ParsePage(v)
		if err != nil {
			return cfg, &ConfigError{Field: "HUB_START_PAGE", Message: err.Error()}
		}
		cfg.StartPage = p
	}

	var err error
	if cfg.MouseEnabled, err = getEnvAsBool("HUB_MOUSE", cfg.MouseEnabled); err != nil {
		return cfg, err
	}
	if cfg.AltScreen, err = getEnvAsBool("HUB_ALT_SCREEN", cfg.AltScreen); err != nil {
		return cfg, err
	}
	cfg.LogFile = getEnv("HUB_LOG_FILE", cfg.LogFile)
	if cfg.FPS, err = getEnvAsInt("HUB_FPS", cfg.FPS); err != nil {
		return cfg, err
	}
	if cfg.SpringFrequency, err = getEnvAsFloat("HUB_SPRING_FREQUENCY", cfg.SpringFrequency); err != nil {
		return cfg, err
	}
	if cfg.SpringDamping, err = getEnvAsFloat("HUB_SPRING_DAMPING", cfg.SpringDamping); err != nil {
		return cfg, err
	}

	if v := getEnv("HUB_REPUTATION_SEED", ""); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, &ConfigError{Field: "HUB_REPUTATION_SEED", Message: "must be an unsigned integer"}
		}
		cfg.ReputationSeed = seed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WithStartPage returns a copy of the config with a different start page.
func (c Config) WithStartPage(p hub.Page) Config {
	c.StartPage = p
	return c
}

// WithMouse returns a copy of the config with mouse capture enabled/disabled.
func (c Config) WithMouse(enabled bool) Config {
	c.MouseEnabled = enabled
	return c
}

// WithAltScreen returns a copy of the config with the alternate screen enabled/disabled.
func (c Config) WithAltScreen(enabled bool) Config {
	c.AltScreen = enabled
	return c
}

// WithLogFile returns a copy of the config logging to path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// WithReputationSeed returns a copy of the config with a fixed reputation seed.
func (c Config) WithReputationSeed(seed uint64) Config {
	c.ReputationSeed = seed
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if !c.StartPage.Valid() {
		return &ConfigError{Field: "StartPage", Message: "must be a known page"}
	}
	if c.FPS <= 0 {
		return &ConfigError{Field: "FPS", Message: "must be positive"}
	}
	if c.SpringFrequency <= 0 {
		return &ConfigError{Field: "SpringFrequency", Message: "must be positive"}
	}
	if c.SpringDamping < 0 {
		return &ConfigError{Field: "SpringDamping", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return fallback
}

// The getEnvAs helpers return fallback when key is unset or blank, and a
// *ConfigError naming key when the value does not parse.

func getEnvAsInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, &ConfigError{Field: key, Message: "must be an integer"}
	}
	return n, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback, &ConfigError{Field: key, Message: "must be a number"}
	}
	return f, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, &ConfigError{Field: key, Message: "must be a boolean"}
	}
	return b, nil
}
