package main

import (
	"canac/weather-api/config"
	"canac/weather-api/internal/api/v1/handlers"
	"canac/weather-api/internal/providers"
	"canac/weather-api/internal/service"
	"context"
	"errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := newLogger(conf)
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	// One client for the whole process; both upstreams share its connection pool.
	httpClient := providers.NewHTTPClient(conf.UpstreamTimeout)

	geocodingService := providers.NewGeocodingService(conf.GeocodingBaseURL, httpClient)
	forecastService := providers.NewForecastService(conf.ForecastBaseURL, httpClient)

	weatherService := service.NewWeatherService(geocodingService, forecastService)

	notFoundStatus := http.StatusInternalServerError
	if conf.NotFoundAs404 {
		notFoundStatus = http.StatusNotFound
	}
	weatherHandler := handlers.NewWeatherHandler(weatherService, conf.HTTPTimeoutDuration(), notFoundStatus)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handlers.NewRouter(weatherHandler, conf.CORSAllowedOrigin, logger),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		shutdownErr := httpServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().
		Str("geocoding_url", conf.GeocodingBaseURL).
		Str("forecast_url", conf.ForecastBaseURL).
		Str("cors_origin", conf.CORSAllowedOrigin).
		Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func newLogger(conf *config.Config) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if conf.IsDevelopment() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback(shutdownCtx)

		cancel()
		cancelCtx()
	}()
}
