package service

import (
	"context"

	"canac/weather-api/internal/providers"
	"canac/weather-api/internal/validation"

	"github.com/rs/zerolog"
)

// WeatherResult is the flattened body returned for a weather lookup.
type WeatherResult struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	WeatherCode int     `json:"weather_code"`
	FeelsLike   float64 `json:"feels_like"`
	Pressure    float64 `json:"pressure"`
	Visibility  float64 `json:"visibility"`
	UVIndex     float64 `json:"uv_index"`
}

// NewWeatherResult combines the geocoder's name for the city with the
// current readings.
func NewWeatherResult(cityName string, reading providers.WeatherReading) WeatherResult {
	return WeatherResult{
		City:        cityName,
		Temperature: reading.Temperature,
		Humidity:    reading.Humidity,
		WindSpeed:   reading.WindSpeed,
		WeatherCode: reading.WeatherCode,
		FeelsLike:   reading.FeelsLike,
		Pressure:    reading.Pressure,
		Visibility:  reading.Visibility,
		UVIndex:     reading.UVIndex,
	}
}

type WeatherService interface {
	GetWeather(ctx context.Context, city string) (WeatherResult, error)
}

type weatherService struct {
	resolver providers.CoordinateResolver
	fetcher  providers.WeatherFetcher
}

func NewWeatherService(resolver providers.CoordinateResolver, fetcher providers.WeatherFetcher) WeatherService {
	return &weatherService{
		resolver: resolver,
		fetcher:  fetcher,
	}
}

// GetWeather validates the city, resolves it and fetches its current
// conditions. Errors are returned untouched so callers can tell a
// *validation.ValidationError from *providers.CityNotFoundError and
// *providers.UpstreamError.
func (s *weatherService) GetWeather(ctx context.Context, city string) (WeatherResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("city", city).Logger()

	if err := validation.ValidateCity(city); err != nil {
		logger.Debug().Err(err).Msg("city rejected")
		return WeatherResult{}, err
	}

	coordinate, err := s.resolver.ResolveCoordinates(ctx, city)
	if err != nil {
		return WeatherResult{}, err
	}
	logger.Debug().
		Float64("latitude", coordinate.Latitude).
		Float64("longitude", coordinate.Longitude).
		Str("resolved_name", coordinate.Name).
		Msg("city resolved")

	reading, err := s.fetcher.FetchCurrentWeather(ctx, coordinate)
	if err != nil {
		return WeatherResult{}, err
	}
	logger.Debug().Msg("current weather fetched")

	return NewWeatherResult(coordinate.Name, reading), nil
}
