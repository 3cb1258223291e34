// Package service implements the weather acquisition state machine: a
// cached-location fetch for a fast first paint, device positioning, a
// conditional re-fetch when the device has moved, and staleness-driven
// refresh. The exposed state is a Loading/Success/Error union that never
// regresses from Success to Error within a single acquisition.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/lunamark/weatherdeck/internal/domain"
	"github.com/lunamark/weatherdeck/internal/kvstore"
	"github.com/lunamark/weatherdeck/internal/observability"
)

const cachedLocationKey = "cached_location"

// Publisher emits a weather snapshot to an external sink. Implementations
// must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, data domain.WeatherData) error
}

// Service owns the weather state and coordinates forecast, geocoding, and
// positioning collaborators.
type Service struct {
	forecaster domain.Forecaster
	geocoder   domain.ReverseGeocoder
	locator    domain.Locator
	kv         kvstore.Store
	publisher  Publisher // nil when snapshot publishing is disabled
	logger     *slog.Logger
	metrics    *observability.Metrics
	staleAfter time.Duration

	mu         sync.Mutex
	state      WeatherState
	refreshing bool
}

// New builds a Service in the Loading state. publisher may be nil.
func New(
	forecaster domain.Forecaster,
	geocoder domain.ReverseGeocoder,
	locator domain.Locator,
	kv kvstore.Store,
	publisher Publisher,
	logger *slog.Logger,
	metrics *observability.Metrics,
	staleAfter time.Duration,
) *Service {
	return &Service{
		forecaster: forecaster,
		geocoder:   geocoder,
		locator:    locator,
		kv:         kv,
		publisher:  publisher,
		logger:     logger,
		metrics:    metrics,
		staleAfter: staleAfter,
		state:      loadingState(),
	}
}

// State returns the current weather state.
func (s *Service) State() WeatherState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsRefreshing reports whether an acquisition is running behind an existing
// Success state.
func (s *Service) IsRefreshing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshing
}

// FetchWeather runs one full acquisition cycle. When the current state is
// Success the existing data stays visible and only the refreshing flag is
// raised; otherwise the state drops to Loading first. Concurrent calls are
// permitted; the later writer wins.
func (s *Service) FetchWeather(ctx context.Context) {
	timer := time.Now()

	s.mu.Lock()
	if s.state.Kind == StateSuccess {
		s.refreshing = true
		s.metrics.Refreshing.Set(1)
	} else {
		s.setStateLocked(loadingState())
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
		s.metrics.Refreshing.Set(0)
		s.metrics.FetchDuration.Observe(time.Since(timer).Seconds())
	}()

	if err := s.acquire(ctx); err != nil {
		s.settleError(err)
	}
}

// RefreshIfStale triggers an acquisition only when the displayed snapshot is
// older than the configured staleness window. Loading and Error states never
// count as stale; a fetch is already underway or imminent for those.
func (s *Service) RefreshIfStale(ctx context.Context) {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	if state.Kind != StateSuccess {
		return
	}
	age := time.Duration(domain.Now()-state.Data.Timestamp) * time.Millisecond
	if age < s.staleAfter {
		return
	}

	s.metrics.StaleRefreshes.Inc()
	s.logger.Info("weather data stale, refreshing", "age", age.String())
	s.FetchWeather(ctx)
}

// acquire performs the cached-first fetch sequence. It returns an error only
// when no Success state could be produced this cycle.
func (s *Service) acquire(ctx context.Context) error {
	cached, haveCached := s.cachedLocation(ctx)

	if haveCached {
		data, err := s.fetchAndMap(ctx, cached.Lat, cached.Lon, "cached")
		if err != nil {
			return err
		}
		s.settleSuccess(data)
	}

	pos, err := s.locator.Position(ctx)
	if err != nil {
		if s.hasSuccess() {
			s.logger.Warn("positioning failed, keeping cached weather", "error", err)
			return nil
		}
		return &domain.LocationError{Err: err}
	}

	s.saveLocation(ctx, pos)

	// The cached fetch already covers this position unless the device moved.
	if haveCached && !domain.MovedSignificantly(cached.Lat, cached.Lon, pos.Lat, pos.Lon) {
		return nil
	}

	data, err := s.fetchAndMap(ctx, pos.Lat, pos.Lon, "fresh")
	if err != nil {
		if s.hasSuccess() {
			s.logger.Warn("fresh fetch failed, keeping cached weather", "error", err)
			return nil
		}
		return err
	}
	s.settleSuccess(data)
	return nil
}

// fetchAndMap fetches the forecast and resolves the location name
// concurrently, then maps them into a snapshot.
func (s *Service) fetchAndMap(ctx context.Context, lat, lon float64, phase string) (domain.WeatherData, error) {
	var (
		wg       sync.WaitGroup
		payload  domain.ForecastPayload
		fetchErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		payload, fetchErr = s.forecaster.Forecast(ctx, lat, lon)
	}()

	name := domain.ResolveLocationName(ctx, s.geocoder, lat, lon, s.logger)
	wg.Wait()

	if fetchErr != nil {
		s.metrics.FetchAttempts.WithLabelValues(phase, "error").Inc()
		return domain.WeatherData{}, &domain.FetchError{Err: fetchErr}
	}
	s.metrics.FetchAttempts.WithLabelValues(phase, "success").Inc()

	return domain.MapForecast(payload, name), nil
}

func (s *Service) settleSuccess(data domain.WeatherData) {
	s.mu.Lock()
	s.setStateLocked(successState(data))
	s.mu.Unlock()

	if s.publisher != nil {
		if err := s.publisher.Publish(context.Background(), data); err != nil {
			s.metrics.PublishErrors.Inc()
			s.logger.Warn("snapshot publish failed", "error", err)
		} else {
			s.metrics.SnapshotsPublished.Inc()
		}
	}
}

// settleError transitions to Error unless a Success was produced earlier in
// the cycle; stale data beats an error banner.
func (s *Service) settleError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Kind == StateSuccess {
		return
	}

	key := errKeyFetchWeather
	var locErr *domain.LocationError
	if errors.As(err, &locErr) {
		key = errKeyGetLocation
	}
	s.logger.Error("weather acquisition failed", "error", err, "messageKey", key)
	s.setStateLocked(errorState(key))
}

func (s *Service) setStateLocked(state WeatherState) {
	s.state = state
	s.metrics.StateTransitions.WithLabelValues(string(state.Kind)).Inc()
}

func (s *Service) hasSuccess() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Kind == StateSuccess
}

// cachedLocation reads the persisted position. A missing or corrupt entry is
// treated as absent.
func (s *Service) cachedLocation(ctx context.Context) (domain.Coordinates, bool) {
	raw, err := s.kv.Get(ctx, cachedLocationKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.Warn("cached location read failed", "error", err)
		}
		return domain.Coordinates{}, false
	}

	var pos domain.Coordinates
	if err := json.Unmarshal([]byte(raw), &pos); err != nil {
		s.logger.Warn("cached location corrupt, ignoring", "error", err)
		return domain.Coordinates{}, false
	}
	return pos, true
}

func (s *Service) saveLocation(ctx context.Context, pos domain.Coordinates) {
	raw, err := json.Marshal(pos)
	if err != nil {
		return
	}
	if err := s.kv.Set(ctx, cachedLocationKey, string(raw)); err != nil {
		s.logger.Warn("cached location write failed", "error", err)
	}
}

// CheckReadiness verifies the persistence layer is reachable.
func (s *Service) CheckReadiness(ctx context.Context) error {
	_, err := s.kv.Get(ctx, cachedLocationKey)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return err
	}
	return nil
}
