// Package config handles configuration management for SyncTime.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "config.yaml"
	DataDirName    = ".synctime"
	LogFileName    = "synctime.log"
	HistoryDirName = "history"
)

// Config represents the main configuration structure.
type Config struct {
	mu sync.RWMutex `yaml:"-"`

	// SNTP server settings
	Server ServerConfig `yaml:"server"`

	// Sync scheduling
	Sync SyncConfig `yaml:"sync"`

	// Timezone settings
	Timezone TimezoneConfig `yaml:"timezone"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds the SNTP server to query.
type ServerConfig struct {
	// Server address (hostname or IP)
	Address string `yaml:"address"`

	// Port (default: 123)
	Port int `yaml:"port"`

	// Timeout for a single exchange in seconds
	Timeout int `yaml:"timeout"`
}

// SyncConfig holds scheduling settings.
type SyncConfig struct {
	// Interval between syncs in minutes once synchronized
	IntervalMins int `yaml:"interval_mins"`

	// Retry interval in seconds until the first success
	RetrySecs int `yaml:"retry_secs"`

	// Apply the result to the system clock
	SetClock bool `yaml:"set_clock"`

	// Cross-check each result against a reference NTP library query
	Verify bool `yaml:"verify"`
}

// TimezoneConfig holds the configured zone.
type TimezoneConfig struct {
	// Full zone identifier, e.g. "Europe/Berlin". Empty means UTC.
	Zone string `yaml:"zone"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Log level (debug, info, warn, error)
	Level string `yaml:"level"`

	// Log to file
	LogToFile bool `yaml:"log_to_file"`

	// Record sync history to the history directory
	RecordHistory bool `yaml:"record_history"`

	// Maximum log entries to keep in memory
	MaxLogEntries int `yaml:"max_log_entries"`
}

// DefaultConfig returns a new Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: "pool.ntp.org",
			Port:    123,
			Timeout: 5,
		},
		Sync: SyncConfig{
			IntervalMins: 60,
			RetrySecs:    30,
			SetClock:     false,
			Verify:       false,
		},
		Timezone: TimezoneConfig{
			Zone: "",
		},
		Logging: LoggingConfig{
			Level:         "info",
			LogToFile:     true,
			RecordHistory: true,
			MaxLogEntries: 500,
		},
	}
}

// GetDataDir returns the data directory path.
func GetDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DataDirName), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(dataDir, HistoryDirName), 0755); err != nil {
		return "", fmt.Errorf("failed to create history directory: %w", err)
	}

	return dataDir, nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ConfigFileName), nil
}

// Load loads configuration from the default path, creating a default
// config on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from an explicit path.
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig() // start with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to file.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, err := EnsureDataDir(); err != nil {
		return err
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# SyncTime Configuration File\n# Edit with care - invalid YAML will prevent startup\n\n")
	data = append(header, data...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetZone updates the configured timezone identifier.
func (c *Config) SetZone(zone string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Timezone.Zone = zone
}

// GetZone returns the configured timezone identifier.
func (c *Config) GetZone() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Timezone.Zone
}

// ServerAddr returns the configured server as "host:port".
func (c *Config) ServerAddr() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	port := c.Server.Port
	if port == 0 {
		port = 123
	}
	return fmt.Sprintf("%s:%d", c.Server.Address, port)
}

// GetOSInfo returns OS-specific information.
func GetOSInfo() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
