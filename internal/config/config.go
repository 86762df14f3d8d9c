// Package config provides configuration loading and validation for the
// service. Values come from an optional JSON file merged with environment
// variables; flags win over both.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds the service configuration. All fields are optional;
// missing values use defaults.
type Config struct {
	Port         int    `json:"port,omitempty"`           // HTTP listen port
	UploadDir    string `json:"upload_dir,omitempty"`     // Directory for stored resume files
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Enables the cosmetic LLM rewrite when set
	GeminiModel  string `json:"gemini_model,omitempty"`   // Override the rewrite model
	SessionTTL   string `json:"session_ttl,omitempty"`    // Lifetime of stored signal bundles, e.g. "1h"
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Port:       8000,
		UploadDir:  "uploads",
		SessionTTL: "1h",
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv fills unset fields from environment variables. The .env file is
// loaded by main before this runs.
func (c *Config) FromEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.GeminiModel == "" {
		c.GeminiModel = os.Getenv("GEMINI_MODEL")
	}
	if c.UploadDir == "" {
		c.UploadDir = os.Getenv("UPLOAD_DIR")
	}
	if c.SessionTTL == "" {
		c.SessionTTL = os.Getenv("SESSION_TTL")
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.SessionTTL == "" {
		result.SessionTTL = defaults.SessionTTL
	}
	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if c.SessionTTL != "" {
		if _, err := time.ParseDuration(c.SessionTTL); err != nil {
			return fmt.Errorf("config error: 'session_ttl' is not a valid duration: %w", err)
		}
	}
	return nil
}

// SessionTTLDuration parses the session TTL, falling back to one hour for
// empty or invalid values.
func (c *Config) SessionTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}
