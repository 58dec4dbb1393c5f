package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"canac/weather-api/internal/providers"
	"canac/weather-api/internal/service"
	"canac/weather-api/internal/validation"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
	notFoundStatus int
}

// NewWeatherHandler builds the weather endpoint. notFoundStatus is the status
// used when the geocoder has no match for the city.
func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration, notFoundStatus int) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
		notFoundStatus: notFoundStatus,
	}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["city"]

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.weatherService.GetWeather(ctx, city)
	if err != nil {
		status := h.statusFor(err)
		event := hlog.FromRequest(r).Warn()
		if status >= http.StatusInternalServerError {
			event = hlog.FromRequest(r).Error()
		}
		event.Err(err).Str("city", city).Int("status", status).Msg("failed to get weather data")

		respondWithError(w, status, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *WeatherHandler) statusFor(err error) int {
	var validationErr *validation.ValidationError
	var notFoundErr *providers.CityNotFoundError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return h.notFoundStatus
	default:
		return http.StatusInternalServerError
	}
}
