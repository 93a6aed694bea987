// Package config handles configuration loading, saving, and defaults for the farpoint CLI
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config directories and files
var (
	ConfigDir  string
	ConfigFile string
)

func init() {
	homeDir, _ := os.UserHomeDir()
	ConfigDir = filepath.Join(homeDir, ".config", "farpoint")
	ConfigFile = filepath.Join(ConfigDir, "settings.json")
}

// Built-in defaults used when neither flags, environment, nor the
// settings file provide a value. The reference point is Bratislava.
const (
	DefaultArchive   = "routes.kmz"
	DefaultReference = "48.13978407641908,17.104469028329717"
)

// InputSettings contains default input sources
type InputSettings struct {
	Archive   string `json:"archive"`
	Reference string `json:"reference"`
}

// ReportSettings contains report rendering options
type ReportSettings struct {
	Verbose      bool   `json:"verbose"`
	CSVDirectory string `json:"csv_directory"`
}

// Config is the main configuration container
type Config struct {
	Input  InputSettings  `json:"input"`
	Report ReportSettings `json:"report"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Input: InputSettings{
			Archive:   DefaultArchive,
			Reference: DefaultReference,
		},
		Report: ReportSettings{
			Verbose:      false,
			CSVDirectory: "",
		},
	}
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	return os.MkdirAll(ConfigDir, 0755)
}

// Load loads configuration from file or returns defaults
func Load() (*Config, error) {
	if _, err := os.Stat(ConfigFile); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return DefaultConfig(), nil
	}

	return config, nil
}

// Save saves configuration to file
func Save(config *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigFile, data, 0644)
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	return ConfigFile
}
