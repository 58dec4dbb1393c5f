package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

const (
	DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastBaseURL  = "https://api.open-meteo.com/v1/forecast"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	UpstreamTimeout  time.Duration
	GeocodingBaseURL string
	ForecastBaseURL  string

	CORSAllowedOrigin string

	// NotFoundAs404 maps an unknown city to 404 instead of the generic 500.
	NotFoundAs404 bool
}

func LoadConfig() (*Config, error) {
	return loadConfig(".")
}

func loadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-api")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8000")
	v.SetDefault("ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("GEOCODING_BASE_URL", DefaultGeocodingBaseURL)
	v.SetDefault("FORECAST_BASE_URL", DefaultForecastBaseURL)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "http://localhost:3000")
	v.SetDefault("NOT_FOUND_AS_404", false)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:       v.GetString("SERVICE_NAME"),
		ServerAddress:     v.GetString("SERVER_ADDRESS"),
		Env:               v.GetString("ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		HTTPTimeout:       v.GetInt32("HTTP_TIMEOUT"),
		UpstreamTimeout:   v.GetDuration("UPSTREAM_TIMEOUT"),
		GeocodingBaseURL:  v.GetString("GEOCODING_BASE_URL"),
		ForecastBaseURL:   v.GetString("FORECAST_BASE_URL"),
		CORSAllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		NotFoundAs404:     v.GetBool("NOT_FOUND_AS_404"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", c.HTTPTimeout)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", c.UpstreamTimeout)
	}
	if c.GeocodingBaseURL == "" || c.ForecastBaseURL == "" {
		return fmt.Errorf("upstream base URLs must not be empty")
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
