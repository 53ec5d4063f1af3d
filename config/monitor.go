package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// MonitorConfig is the YAML configuration of the monitor agent.
type MonitorConfig struct {
	// APIURL is the backend base URL including the /api prefix.
	APIURL    string `yaml:"api_url"`
	TokenPath string `yaml:"token_path"`

	// Intervals are Go duration strings ("30s", "1m").
	ReadingsInterval      string `yaml:"readings_interval"`
	NotificationsInterval string `yaml:"notifications_interval"`
}

// LoadMonitor reads the monitor configuration, filling defaults for
// anything the file leaves out. A missing file yields the defaults.
func LoadMonitor(path string) (MonitorConfig, error) {
	cfg := MonitorConfig{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if cfg.APIURL == "" {
		cfg.APIURL = GetEnv("API_URL", "http://localhost:8000/api")
	}
	if cfg.TokenPath == "" {
		home, _ := os.UserHomeDir()
		cfg.TokenPath = filepath.Join(home, ".et-mobile", "token")
	}
	if cfg.ReadingsInterval == "" {
		cfg.ReadingsInterval = "30s"
	}
	if cfg.NotificationsInterval == "" {
		cfg.NotificationsInterval = "60s"
	}
	return cfg, nil
}

// ReadingsEvery parses the readings polling interval.
func (c MonitorConfig) ReadingsEvery() (time.Duration, error) {
	return time.ParseDuration(c.ReadingsInterval)
}

// NotificationsEvery parses the notifications polling interval.
func (c MonitorConfig) NotificationsEvery() (time.Duration, error) {
	return time.ParseDuration(c.NotificationsInterval)
}
