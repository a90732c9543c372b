package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Last.fm API key, required for every command
	APIKey string

	// Default username for user-scoped commands
	User string

	// Output format template for the now command
	// Default: "{{.Artist.Name}} - {{.Name}}"
	OutputFormat string

	// Fixed display width for the now command (0 disables padding)
	OutputWidth int

	// Per-request HTTP timeout in seconds
	RequestTimeout int

	// SendGrid credentials for the report command (optional)
	SendGrid SendGridConfig
}

// SendGridConfig holds report delivery configuration
type SendGridConfig struct {
	APIKey string
	From   string
}

// Timeout returns the request timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("output_format", "{{.Artist.Name}} - {{.Name}}")
	v.SetDefault("output_width", 0)
	v.SetDefault("request_timeout", 15)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("LASTFM")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		APIKey:         v.GetString("api_key"),
		User:           v.GetString("user"),
		OutputFormat:   v.GetString("output_format"),
		OutputWidth:    v.GetInt("output_width"),
		RequestTimeout: v.GetInt("request_timeout"),
		SendGrid: SendGridConfig{
			APIKey: v.GetString("sendgrid.api_key"),
			From:   v.GetString("sendgrid.from"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "lastfm")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("api_key", c.APIKey)
	v.Set("user", c.User)
	v.Set("output_format", c.OutputFormat)
	v.Set("output_width", c.OutputWidth)
	v.Set("request_timeout", c.RequestTimeout)
	v.Set("sendgrid.api_key", c.SendGrid.APIKey)
	v.Set("sendgrid.from", c.SendGrid.From)

	// Write to file
	return v.WriteConfigAs(configFile)
}
