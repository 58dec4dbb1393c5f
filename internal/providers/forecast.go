package providers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
)

// currentFields lists the variables requested from the forecast "current"
// block, in the order the upstream expects them.
var currentFields = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"weather_code",
	"wind_speed_10m",
	"apparent_temperature",
	"pressure_msl",
	"visibility",
	"uv_index",
}

// WeatherReading holds current conditions in the upstream's units:
// °C, %, km/h and hPa.
type WeatherReading struct {
	Temperature float64
	Humidity    float64
	WindSpeed   float64
	WeatherCode int
	FeelsLike   float64
	Pressure    float64
	Visibility  float64
	UVIndex     float64
}

type WeatherFetcher interface {
	FetchCurrentWeather(ctx context.Context, coordinate Coordinate) (WeatherReading, error)
}

type ForecastService struct {
	baseURL string
	client  *http.Client
}

func NewForecastService(baseURL string, client *http.Client) *ForecastService {
	return &ForecastService{
		baseURL: baseURL,
		client:  client,
	}
}

type forecastResponse struct {
	Current *struct {
		Temperature2m      *float64 `json:"temperature_2m"`
		RelativeHumidity2m *float64 `json:"relative_humidity_2m"`
		WeatherCode        *float64 `json:"weather_code"`
		WindSpeed10m       *float64 `json:"wind_speed_10m"`
		ApparentTemp       *float64 `json:"apparent_temperature"`
		PressureMSL        *float64 `json:"pressure_msl"`
		Visibility         *float64 `json:"visibility"`
		UVIndex            *float64 `json:"uv_index"`
	} `json:"current"`
}

func (s *ForecastService) FetchCurrentWeather(ctx context.Context, coordinate Coordinate) (WeatherReading, error) {
	params := url.Values{}
	params.Set("latitude", formatCoordinate(coordinate.Latitude))
	params.Set("longitude", formatCoordinate(coordinate.Longitude))
	params.Set("current", strings.Join(currentFields, ","))
	params.Set("timezone", "auto")

	var apiResp forecastResponse
	if err := getJSON(ctx, s.client, forecastServiceName, s.baseURL, params, &apiResp); err != nil {
		return WeatherReading{}, err
	}

	current := apiResp.Current
	if current == nil {
		return WeatherReading{}, newUpstreamError(forecastServiceName, "response has no current block")
	}

	fields := []struct {
		name  string
		value *float64
	}{
		{"temperature_2m", current.Temperature2m},
		{"relative_humidity_2m", current.RelativeHumidity2m},
		{"weather_code", current.WeatherCode},
		{"wind_speed_10m", current.WindSpeed10m},
		{"apparent_temperature", current.ApparentTemp},
		{"pressure_msl", current.PressureMSL},
		{"visibility", current.Visibility},
		{"uv_index", current.UVIndex},
	}

	var missing []string
	for _, f := range fields {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return WeatherReading{}, &UpstreamError{
			Service: forecastServiceName,
			Err:     fmt.Errorf("current block is missing fields: %s", strings.Join(missing, ", ")),
		}
	}

	code := *current.WeatherCode
	if math.Trunc(code) != code {
		return WeatherReading{}, newUpstreamError(forecastServiceName, "weather_code %v is not an integer", code)
	}

	return WeatherReading{
		Temperature: *current.Temperature2m,
		Humidity:    *current.RelativeHumidity2m,
		WindSpeed:   *current.WindSpeed10m,
		WeatherCode: int(code),
		FeelsLike:   *current.ApparentTemp,
		Pressure:    *current.PressureMSL,
		Visibility:  *current.Visibility,
		UVIndex:     *current.UVIndex,
	}, nil
}
