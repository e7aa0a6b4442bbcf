package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultMaxSteps    = 10000
	DefaultStepDelayMS = 100
	DefaultWindow      = 64
	DefaultLogLevel    = LogLevelWarn
	DefaultEditor      = "vi"

	// HomeEnv overrides the data directory.
	HomeEnv = "TUR_HOME"

	configFile = "config.yaml"
)

// DefaultRun returns run settings with sensible default values.
func DefaultRun() Run {
	return Run{
		MaxSteps:    DefaultMaxSteps,
		StepDelayMS: DefaultStepDelayMS,
		Window:      DefaultWindow,
	}
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Run: DefaultRun(),
		Log: Log{Level: DefaultLogLevel},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Home resolves the data directory: flag, then $TUR_HOME, then the user
// config directory.
func Home(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(HomeEnv); env != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find a home directory (set %s): %w", HomeEnv, err)
	}
	return filepath.Join(dir, "tur"), nil
}

// Path returns the config file path under home.
func Path(home string) string {
	return filepath.Join(home, configFile)
}

// LoadConfig reads and parses config.yaml from home.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields.
func LoadConfig(home string) (*Config, error) {
	data, err := os.ReadFile(Path(home))
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveConfig writes cfg to config.yaml under home.
func SaveConfig(home string, cfg *Config) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(home, 0o755); err != nil {
		return fmt.Errorf("failed to create home directory: %w", err)
	}
	if err := os.WriteFile(Path(home), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Run.MaxSteps == 0 {
		return ValidationError{Field: "run.max_steps", Message: "must be positive"}
	}
	if cfg.Run.StepDelayMS < 0 {
		return ValidationError{Field: "run.step_delay_ms", Message: "must not be negative"}
	}
	if cfg.Run.Window < 16 || cfg.Run.Window%16 != 0 {
		return ValidationError{Field: "run.window", Message: "must be a multiple of 16, at least 16"}
	}
	switch cfg.Log.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return ValidationError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", cfg.Log.Level)}
	}
	return nil
}

// ResolveEditor returns the editor command: config, then $VISUAL, then
// $EDITOR, then vi.
func (c *Config) ResolveEditor() string {
	for _, e := range []string{c.Editor, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if e != "" {
			return e
		}
	}
	return DefaultEditor
}
