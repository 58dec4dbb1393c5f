package providers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

const geocodingLanguage = "pt"

// Coordinate is the position of the first geocoding match for a city, along
// with the name the geocoder gave it.
type Coordinate struct {
	Latitude  float64
	Longitude float64
	Name      string
}

type CoordinateResolver interface {
	ResolveCoordinates(ctx context.Context, city string) (Coordinate, error)
}

type GeocodingService struct {
	baseURL string
	client  *http.Client
}

func NewGeocodingService(baseURL string, client *http.Client) *GeocodingService {
	return &GeocodingService{
		baseURL: baseURL,
		client:  client,
	}
}

type geocodingResponse struct {
	Results []struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Name      *string  `json:"name"`
	} `json:"results"`
}

// ResolveCoordinates asks the geocoder for a single match and returns it.
// Ranking is left entirely to the upstream.
func (s *GeocodingService) ResolveCoordinates(ctx context.Context, city string) (Coordinate, error) {
	params := url.Values{}
	params.Set("name", city)
	params.Set("count", "1")
	params.Set("language", geocodingLanguage)

	var apiResp geocodingResponse
	if err := getJSON(ctx, s.client, geocodingServiceName, s.baseURL, params, &apiResp); err != nil {
		return Coordinate{}, err
	}

	if len(apiResp.Results) == 0 {
		return Coordinate{}, &CityNotFoundError{City: city}
	}

	first := apiResp.Results[0]
	if first.Latitude == nil || first.Longitude == nil || first.Name == nil {
		return Coordinate{}, &UpstreamError{
			Service: geocodingServiceName,
			Err:     errors.New("result is missing latitude, longitude or name"),
		}
	}

	return Coordinate{
		Latitude:  *first.Latitude,
		Longitude: *first.Longitude,
		Name:      *first.Name,
	}, nil
}
