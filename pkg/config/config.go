package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Ollama  OllamaConfig  `mapstructure:"ollama"`
	Client  ClientConfig  `mapstructure:"client"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds relay server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// OllamaConfig holds model backend configuration
type OllamaConfig struct {
	URL     string `mapstructure:"url"`
	Model   string `mapstructure:"model"`
	Client  string `mapstructure:"client"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// ClientConfig holds terminal client configuration
type ClientConfig struct {
	ServerURL         string `mapstructure:"server_url"`
	ReconnectAttempts int    `mapstructure:"reconnect_attempts"`
	ReconnectDelay    int    `mapstructure:"reconnect_delay"` // milliseconds
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	Preserve bool   `mapstructure:"preserve"`
	Level    string `mapstructure:"level"`
}

// TimeoutDuration returns the inference timeout as a duration.
func (o OllamaConfig) TimeoutDuration() time.Duration {
	return time.Duration(o.Timeout) * time.Second
}

// ReconnectDelayDuration returns the client backoff as a duration.
func (c ClientConfig) ReconnectDelayDuration() time.Duration {
	return time.Duration(c.ReconnectDelay) * time.Millisecond
}

// Addr returns the host:port the relay listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

var current *Config

// Load unmarshals the viper state (defaults, config file, env) into a
// typed Config and caches it for Get.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	current = &cfg
	return current, nil
}

// Get returns the cached configuration, loading it on first use.
func Get() *Config {
	if current == nil {
		cfg, err := Load()
		if err != nil {
			// Defaults are registered before any Load call, so this only
			// happens on a malformed config file.
			panic(err)
		}
		return cfg
	}
	return current
}
