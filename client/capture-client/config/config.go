package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/yeti47/cryosnap/client/capture-client/common"
)

const (
	DefaultServerURL            = "http://localhost:8000/camera"
	DefaultSendIntervalSeconds  = 10
	DefaultJpegQuality          = 95
	DefaultServerTimeoutSeconds = 30
	DefaultLogDir               = "logs"
)

// Config holds the application configuration
type Config struct {
	ServerURL            string `json:"server_url"`
	CameraDevice         string `json:"camera_device"`          // Device index; empty means ask on startup
	SendIntervalSeconds  int    `json:"send_interval_seconds"`  // How often a frame is uploaded
	Extension            string `json:"extension"`              // Container of uploaded frames, e.g. ".jpg"
	JpegQuality          int    `json:"jpeg_quality"`           // 1..100
	ServerTimeoutSeconds int    `json:"server_timeout_seconds"` // HTTP timeout for uploads; 0 keeps the transport default
	LogDir               string `json:"log_dir"`
	ShowPreview          *bool  `json:"show_preview"` // Open a preview window; defaults to true
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	showPreview := true
	return &Config{
		ServerURL:            DefaultServerURL,
		CameraDevice:         "",
		SendIntervalSeconds:  DefaultSendIntervalSeconds,
		Extension:            common.DefaultExtension,
		JpegQuality:          DefaultJpegQuality,
		ServerTimeoutSeconds: DefaultServerTimeoutSeconds,
		LogDir:               DefaultLogDir,
		ShowPreview:          &showPreview,
	}
}

// LoadConfig loads configuration from a JSON file, creating it with defaults if missing
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			defaultConfig := DefaultConfig()
			if err := saveConfig(filename, defaultConfig); err != nil {
				return nil, fmt.Errorf("failed to create default config file: %w", err)
			}
			fmt.Printf("Default config file created at %s\n", filename)
			return defaultConfig, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills in missing values
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.ServerURL == "" {
		c.ServerURL = defaults.ServerURL
	}
	if c.SendIntervalSeconds <= 0 {
		c.SendIntervalSeconds = defaults.SendIntervalSeconds
	}
	c.Extension = common.NormalizeExtension(c.Extension)
	if c.JpegQuality <= 0 || c.JpegQuality > 100 {
		c.JpegQuality = defaults.JpegQuality
	}
	if c.ServerTimeoutSeconds < 0 {
		c.ServerTimeoutSeconds = defaults.ServerTimeoutSeconds
	}
	if c.ShowPreview == nil {
		c.ShowPreview = defaults.ShowPreview
	}
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server url must not be empty")
	}
	if !common.IsSupportedExtension(c.Extension) {
		return fmt.Errorf("unsupported extension: %s", c.Extension)
	}
	if c.SendIntervalSeconds <= 0 {
		return fmt.Errorf("invalid send interval: %d", c.SendIntervalSeconds)
	}
	return nil
}

// SendInterval returns the send period as a time.Duration
func (c *Config) SendInterval() time.Duration {
	return time.Duration(c.SendIntervalSeconds) * time.Second
}

// ServerTimeout returns the upload timeout as a time.Duration
func (c *Config) ServerTimeout() time.Duration {
	return time.Duration(c.ServerTimeoutSeconds) * time.Second
}

// PreviewEnabled reports whether the preview window should be shown
func (c *Config) PreviewEnabled() bool {
	return c.ShowPreview == nil || *c.ShowPreview
}

// ConfigOverrides holds potential override values for configuration
type ConfigOverrides struct {
	ServerURL            *string
	CameraDevice         *string
	SendIntervalSeconds  *int
	Extension            *string
	JpegQuality          *int
	ServerTimeoutSeconds *int
	NoPreview            *bool
}

// Override allows overriding specific configuration values using ConfigOverrides struct
func (c *Config) Override(overrides ConfigOverrides) {
	if overrides.ServerURL != nil && *overrides.ServerURL != "" {
		c.ServerURL = *overrides.ServerURL
	}
	if overrides.CameraDevice != nil && *overrides.CameraDevice != "" {
		c.CameraDevice = *overrides.CameraDevice
	}
	if overrides.SendIntervalSeconds != nil && *overrides.SendIntervalSeconds > 0 {
		c.SendIntervalSeconds = *overrides.SendIntervalSeconds
	}
	if overrides.Extension != nil && *overrides.Extension != "" {
		c.Extension = common.NormalizeExtension(*overrides.Extension)
	}
	if overrides.JpegQuality != nil && *overrides.JpegQuality > 0 && *overrides.JpegQuality <= 100 {
		c.JpegQuality = *overrides.JpegQuality
	}
	if overrides.ServerTimeoutSeconds != nil && *overrides.ServerTimeoutSeconds > 0 {
		c.ServerTimeoutSeconds = *overrides.ServerTimeoutSeconds
	}
	if overrides.NoPreview != nil && *overrides.NoPreview {
		showPreview := false
		c.ShowPreview = &showPreview
	}
}

// saveConfig saves a configuration to a JSON file
func saveConfig(filename string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
