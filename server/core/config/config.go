package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
)

// DefaultConfigPath is used when no path is given
const DefaultConfigPath = "capture-server.json"

// Config holds the configuration for the capture server
type Config struct {
	ListenAddr         string   `json:"listen_addr"`
	CapturePort        int      `json:"capture_port"`
	LogPath            string   `json:"log_path"`
	LogLevel           string   `json:"log_level"`
	MaxUploadMegabytes int      `json:"max_upload_megabytes"`
	MaxSnapshotPixels  int64    `json:"max_snapshot_pixels"` // Upper bound for width*height of an upload
	TrustedProxies     []string `json:"trusted_proxies,omitempty"` // Only honored in release builds
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:         "0.0.0.0",
		CapturePort:        8000,
		LogPath:            "logs",
		LogLevel:           "info",
		MaxUploadMegabytes: 10,
		MaxSnapshotPixels:  40_000_000,
	}
}

// LoadConfig loads the configuration from a JSON file.
// A missing file yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.CapturePort <= 0 || c.CapturePort > 65535 {
		return fmt.Errorf("invalid capture port: %d", c.CapturePort)
	}
	if c.ListenAddr != "" && net.ParseIP(c.ListenAddr) == nil && c.ListenAddr != "localhost" {
		return fmt.Errorf("invalid listen address: %s", c.ListenAddr)
	}
	if c.MaxUploadMegabytes <= 0 {
		return fmt.Errorf("invalid max upload size: %d MB", c.MaxUploadMegabytes)
	}
	if c.MaxSnapshotPixels <= 0 {
		return fmt.Errorf("invalid max snapshot pixels: %d", c.MaxSnapshotPixels)
	}
	return nil
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return net.JoinHostPort(c.ListenAddr, fmt.Sprintf("%d", c.CapturePort))
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMegabytes) << 20
}

// SaveConfig saves the configuration to a JSON file
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config file: %w", err)
	}

	return nil
}
