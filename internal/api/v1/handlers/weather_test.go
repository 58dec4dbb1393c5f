package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"canac/weather-api/internal/api/v1/handlers"
	"canac/weather-api/internal/mocks"
	"canac/weather-api/internal/providers"
	"canac/weather-api/internal/service"
	"canac/weather-api/internal/validation"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WeatherHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.MockWeatherService
	handler     *handlers.WeatherHandler
}

func (s *WeatherHandlerTestSuite) SetupTest() {
	s.mockService = mocks.NewMockWeatherService(s.T())
	s.handler = handlers.NewWeatherHandler(s.mockService, 5*time.Second, http.StatusInternalServerError)
}

func weatherRequest(city string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/city", nil)
	return mux.SetURLVars(req, map[string]string{"city": city})
}

func (s *WeatherHandlerTestSuite) decodeError(recorder *httptest.ResponseRecorder) handlers.ErrorResponse {
	var response handlers.ErrorResponse
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&response))
	return response
}

func (s *WeatherHandlerTestSuite) TestGetWeatherSuccess() {
	expected := service.WeatherResult{
		City:        "São Paulo",
		Temperature: 25.5,
		Humidity:    65.0,
		WindSpeed:   12.3,
		WeatherCode: 2,
		FeelsLike:   27.0,
		Pressure:    1013.0,
		Visibility:  10.0,
		UVIndex:     5.0,
	}
	s.mockService.On("GetWeather", mock.Anything, "São Paulo").Return(expected, nil)

	recorder := httptest.NewRecorder()
	s.handler.GetWeather(recorder, weatherRequest("São Paulo"))

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("application/json", recorder.Header().Get("Content-Type"))

	var body map[string]interface{}
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&body))
	s.Equal(map[string]interface{}{
		"city":         "São Paulo",
		"temperature":  25.5,
		"humidity":     65.0,
		"wind_speed":   12.3,
		"weather_code": 2.0,
		"feels_like":   27.0,
		"pressure":     1013.0,
		"visibility":   10.0,
		"uv_index":     5.0,
	}, body)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherValidationError() {
	s.mockService.On("GetWeather", mock.Anything, "X").
		Return(service.WeatherResult{}, &validation.ValidationError{Message: "Nome da cidade deve ter pelo menos 2 caracteres"})

	recorder := httptest.NewRecorder()
	s.handler.GetWeather(recorder, weatherRequest("X"))

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("Nome da cidade deve ter pelo menos 2 caracteres", s.decodeError(recorder).Detail)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherCityNotFound() {
	s.mockService.On("GetWeather", mock.Anything, "Atlantis").
		Return(service.WeatherResult{}, &providers.CityNotFoundError{City: "Atlantis"})

	recorder := httptest.NewRecorder()
	s.handler.GetWeather(recorder, weatherRequest("Atlantis"))

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.Equal("city 'Atlantis' not found", s.decodeError(recorder).Detail)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherCityNotFoundAs404() {
	s.handler = handlers.NewWeatherHandler(s.mockService, 5*time.Second, http.StatusNotFound)
	s.mockService.On("GetWeather", mock.Anything, "Atlantis").
		Return(service.WeatherResult{}, &providers.CityNotFoundError{City: "Atlantis"})

	recorder := httptest.NewRecorder()
	s.handler.GetWeather(recorder, weatherRequest("Atlantis"))

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Contains(s.decodeError(recorder).Detail, "not found")
}

func (s *WeatherHandlerTestSuite) TestGetWeatherUpstreamError() {
	upstreamErr := &providers.UpstreamError{Service: "forecast", Err: errors.New("returned status code: 503")}
	s.mockService.On("GetWeather", mock.Anything, "Lisboa").Return(service.WeatherResult{}, upstreamErr)

	recorder := httptest.NewRecorder()
	s.handler.GetWeather(recorder, weatherRequest("Lisboa"))

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.Equal("forecast API request failed: returned status code: 503", s.decodeError(recorder).Detail)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherUpstreamErrorIgnoresNotFoundStatus() {
	s.handler = handlers.NewWeatherHandler(s.mockService, 5*time.Second, http.StatusNotFound)
	upstreamErr := &providers.UpstreamError{Service: "geocoding", Err: errors.New("connection refused")}
	s.mockService.On("GetWeather", mock.Anything, "Lisboa").Return(service.WeatherResult{}, upstreamErr)

	recorder := httptest.NewRecorder()
	s.handler.GetWeather(recorder, weatherRequest("Lisboa"))

	s.Equal(http.StatusInternalServerError, recorder.Code)
}

func (s *WeatherHandlerTestSuite) TestGetWeatherContextTimeout() {
	city := "Manaus"

	s.mockService.On("GetWeather", mock.Anything, city).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(service.WeatherResult{}, &providers.UpstreamError{Service: "geocoding", Err: context.DeadlineExceeded})

	s.handler = handlers.NewWeatherHandler(s.mockService, 50*time.Millisecond, http.StatusInternalServerError)

	recorder := httptest.NewRecorder()
	s.handler.GetWeather(recorder, weatherRequest(city))

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.Contains(s.decodeError(recorder).Detail, "context deadline exceeded")
}

func TestWeatherHandlerSuite(t *testing.T) {
	suite.Run(t, new(WeatherHandlerTestSuite))
}
