package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weathercli.app/pkg/errors"
)

// Config represents the application configuration structure
type Config struct {
	Weather WeatherConfig `split_words:"true"`
}

// WeatherConfig contains settings for the OpenWeatherMap client
type WeatherConfig struct {
	// APIKey is optional at load time: the --api-key flag may still
	// supply it, and its absence is reported when the query is built.
	APIKey         string `envconfig:"OPENWEATHER_API_KEY"`
	BaseURL        string `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	RequestTimeout int    `envconfig:"OPENWEATHER_REQUEST_TIMEOUT" default:"10"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return c.Weather.Validate()
}

// Validate checks weather API configuration
func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("OPENWEATHER_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHER_BASE_URL must start with http:// or https://", nil)
	}
	if w.RequestTimeout < 1 {
		return errors.NewConfigurationError(
			fmt.Sprintf("OPENWEATHER_REQUEST_TIMEOUT must be positive, got %d", w.RequestTimeout), nil)
	}
	return nil
}
