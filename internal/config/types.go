package config

// Run holds the limits and pacing used by `tur run`.
type Run struct {
	MaxSteps    uint64 `yaml:"max_steps"`
	StepDelayMS int    `yaml:"step_delay_ms"`
	Window      int    `yaml:"window"`
}

// Log configures logging.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// Config represents the <home>/config.yaml file.
type Config struct {
	Run    Run    `yaml:"run"`
	Editor string `yaml:"editor,omitempty"`
	Log    Log    `yaml:"log"`
}

// Log level values.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
