package config

import (
	"fmt"
	"time"
)

// EngineConfig holds configuration for the mood signal engine.
//
// The artifact secret is passed through here into the classifier
// constructor; no package reads it from the environment on its own.
type EngineConfig struct {
	// ModelPath is the on-disk location of the trained classifier artifact.
	ModelPath string `yaml:"model_path" json:"model_path" env:"MODEL_PATH"`

	// ModelVersion is the version tag the loaded artifact must carry.
	// An artifact with a different tag is discarded and retrained.
	ModelVersion string `yaml:"model_version" json:"model_version" env:"MODEL_VERSION"`

	// ArtifactSecret keys the HMAC signature over persisted model artifacts.
	ArtifactSecret string `yaml:"artifact_secret" json:"artifact_secret" env:"ARTIFACT_SECRET"`

	// MockAudioFeatures selects the deterministic audio feature generator
	// instead of decoding real audio. Intended for tests.
	MockAudioFeatures bool `yaml:"mock_audio_features" json:"mock_audio_features" env:"MOCK_AUDIO_FEATURES"`

	// MaintenanceSchedule is a cron expression for periodic artifact
	// integrity checks. Empty disables the maintenance job.
	MaintenanceSchedule string `yaml:"maintenance_schedule" json:"maintenance_schedule" env:"MAINTENANCE_SCHEDULE"`

	// MaxTextLength caps accepted input text, matching the application's
	// request size policy.
	MaxTextLength int `yaml:"max_text_length" json:"max_text_length" env:"MAX_TEXT_LENGTH"`

	// LogLevel controls engine logging (debug, info, warn, error).
	LogLevel string `yaml:"log_level" json:"log_level" env:"LOG_LEVEL"`

	// ShutdownTimeout bounds maintenance job teardown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// DefaultEngineConfig returns the default engine configuration
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		ModelPath:       "data/sentiment_model.bin",
		ModelVersion:    "1.0.0",
		MaxTextLength:   10000,
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration for missing or inconsistent values
func (c *EngineConfig) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("model_path is required")
	}
	if c.ModelVersion == "" {
		return fmt.Errorf("model_version is required")
	}
	if c.ArtifactSecret == "" {
		return fmt.Errorf("artifact_secret is required")
	}
	if c.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be positive, got %d", c.MaxTextLength)
	}
	return nil
}

// LoadEngineConfig loads engine configuration from an optional file path,
// with environment variables (prefix MOODENGINE) taking precedence.
func LoadEngineConfig(configPath string) (*EngineConfig, error) {
	cfg := DefaultEngineConfig()

	loader := NewLoader("MOODENGINE")
	if err := loader.Load(configPath, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	return cfg, nil
}
