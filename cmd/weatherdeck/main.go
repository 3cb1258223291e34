package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lunamark/weatherdeck/internal/adapter/geoip"
	"github.com/lunamark/weatherdeck/internal/adapter/httpapi"
	kafkaadapter "github.com/lunamark/weatherdeck/internal/adapter/kafka"
	"github.com/lunamark/weatherdeck/internal/adapter/nominatim"
	"github.com/lunamark/weatherdeck/internal/adapter/openmeteo"
	"github.com/lunamark/weatherdeck/internal/config"
	"github.com/lunamark/weatherdeck/internal/kvstore"
	"github.com/lunamark/weatherdeck/internal/observability"
	"github.com/lunamark/weatherdeck/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Persistence: Redis when configured, in-memory otherwise.
	var kv kvstore.Store
	var redisStore *kvstore.Redis
	if cfg.RedisAddr != "" {
		redisStore, err = kvstore.NewRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Error("redis connection failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		kv = redisStore
		logger.Info("using redis store", "addr", cfg.RedisAddr)
	} else {
		kv = kvstore.NewMemory()
		logger.Info("using in-memory store")
	}

	forecaster := openmeteo.NewClient(cfg.OpenMeteoBaseURL, cfg.OpenMeteoTimeout, logger)
	geocoder := nominatim.NewCachedGeocoder(
		nominatim.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderTimeout, logger, metrics),
		cfg.GeocoderCacheSize,
		metrics,
	)
	locator := geoip.NewClient(cfg.GeoIPBaseURL, cfg.GeoIPTimeout)

	// Snapshot publishing (feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS).
	var publisher service.Publisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg.KafkaBrokers, cfg.KafkaSnapshotTopic, logger)
		publisher = kafkaPublisher
		logger.Info("snapshot publishing enabled", "topic", cfg.KafkaSnapshotTopic)
	} else {
		logger.Info("snapshot publishing disabled")
	}

	svc := service.New(forecaster, geocoder, locator, kv, publisher, logger, metrics, cfg.StaleAfter)
	prefs := service.NewPreferences(kv, logger)

	srv := httpapi.NewServer(cfg.HTTPAddr, svc, prefs, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Warm the state before the first client asks.
	go svc.FetchWeather(ctx)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}
	if redisStore != nil {
		if err := redisStore.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
