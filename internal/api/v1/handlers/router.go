package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

const (
	requestIDHeader = "X-Request-Id"
	apiPrefix       = "/api/v1"
)

// NewRouter wires every route behind CORS and per-request logging.
// allowedOrigin is the single origin browsers may call the API from.
func NewRouter(weatherHandler *WeatherHandler, allowedOrigin string, logger zerolog.Logger) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	// Routes live on the root router so a method mismatch reaches
	// MethodNotAllowedHandler; a mux subrouter reports it as not found.
	router.HandleFunc("/health", HealthCheck).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/weather/{city}", weatherHandler.GetWeather).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/weather-codes", ListWeatherCodes).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/weather-codes/{code}", GetWeatherCode).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return withRequestLogging(logger, corsHandler.Handler(router))
}

func withRequestLogging(logger zerolog.Logger, next http.Handler) http.Handler {
	h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request handled")
	})(next)
	h = hlog.RequestIDHandler("request_id", requestIDHeader)(h)

	return hlog.NewHandler(logger)(h)
}
