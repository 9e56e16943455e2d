package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	IncomingDir string          `yaml:"incoming_dir,omitempty"` // default "data/incoming"
	OutputDir   string          `yaml:"output_dir,omitempty"`   // default "data/processed"
	Generator   GeneratorConfig `yaml:"generator,omitempty"`
	MQTT        MQTTConfig      `yaml:"mqtt,omitempty"`
}

// GeneratorConfig holds defaults for the synthetic data generator
type GeneratorConfig struct {
	Hours           int     `yaml:"hours,omitempty"`            // default 24
	IntervalMinutes int     `yaml:"interval_minutes,omitempty"` // default 5
	AnomalyRate     float64 `yaml:"anomaly_rate,omitempty"`     // default 0.02
}

// MQTTConfig holds MQTT broker configuration for result publishing
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"` // host:port
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // default "solarproc"
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetIncomingDir returns the directory scanned for input CSV files
func (c *Config) GetIncomingDir() string {
	if c.IncomingDir != "" {
		return c.IncomingDir
	}
	return filepath.Join("data", "incoming")
}

// GetOutputDir returns the directory result JSON files are written to
func (c *Config) GetOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return filepath.Join("data", "processed")
}

// GetHours returns the generator simulation length with a default of one day
func (c *Config) GetHours() int {
	if c.Generator.Hours > 0 {
		return c.Generator.Hours
	}
	return 24
}

// GetIntervalMinutes returns the generator sampling interval, default 5
func (c *Config) GetIntervalMinutes() int {
	if c.Generator.IntervalMinutes > 0 {
		return c.Generator.IntervalMinutes
	}
	return 5
}

// GetAnomalyRate returns the generator anomaly injection rate, default 2%
func (c *Config) GetAnomalyRate() float64 {
	if c.Generator.AnomalyRate > 0 {
		return c.Generator.AnomalyRate
	}
	return 0.02
}

// GetTopicPrefix returns the MQTT topic prefix for published results
func (c *Config) GetTopicPrefix() string {
	if c.MQTT.TopicPrefix != "" {
		return c.MQTT.TopicPrefix
	}
	return "solarproc"
}
