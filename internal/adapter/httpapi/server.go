// Package httpapi exposes the weather state, preference commands, and
// operational endpoints over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lunamark/weatherdeck/internal/domain"
	"github.com/lunamark/weatherdeck/internal/service"
)

// WeatherService is the state-machine surface the API serves.
type WeatherService interface {
	State() service.WeatherState
	IsRefreshing() bool
	FetchWeather(ctx context.Context)
	RefreshIfStale(ctx context.Context)
	CheckReadiness(ctx context.Context) error
}

// PreferenceStore is the preference surface the API serves.
type PreferenceStore interface {
	Load(ctx context.Context) service.PreferenceValues
	Locale(ctx context.Context) domain.SupportedLocale
	ToggleUnits(ctx context.Context) service.PreferenceValues
	CycleFont(ctx context.Context) service.PreferenceValues
	CycleLocale(ctx context.Context) service.PreferenceValues
}

// Server exposes the weather API plus health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	weather    WeatherService
	prefs      PreferenceStore
	logger     *slog.Logger
}

// NewServer creates the HTTP server and wires all routes.
func NewServer(addr string, weather WeatherService, prefs PreferenceStore, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		weather: weather,
		prefs:   prefs,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/v1/weather", s.handleWeather)
	mux.HandleFunc("POST /api/v1/weather/refresh", s.handleRefresh)
	mux.HandleFunc("POST /api/v1/weather/refresh-if-stale", s.handleRefreshIfStale)

	mux.HandleFunc("GET /api/v1/preferences", s.handlePreferences)
	mux.HandleFunc("POST /api/v1/preferences/toggle-units", s.handleToggleUnits)
	mux.HandleFunc("POST /api/v1/preferences/cycle-font", s.handleCycleFont)
	mux.HandleFunc("POST /api/v1/preferences/cycle-locale", s.handleCycleLocale)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.weather.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// weatherResponse is the full client-facing view: the raw state plus
// ready-to-render display strings in the active locale and unit order.
type weatherResponse struct {
	State        service.WeatherState `json:"state"`
	IsRefreshing bool                 `json:"isRefreshing"`
	Display      *displayBlock        `json:"display,omitempty"`
}

type displayBlock struct {
	Temperature [2]string `json:"temperature"`
	FeelsLike   [2]string `json:"feelsLike"`
	TempMin     [2]string `json:"tempMin"`
	TempMax     [2]string `json:"tempMax"`
	Pressure    [2]string `json:"pressure"`
	WindSpeed   [2]string `json:"windSpeed"`
	Emoji       string    `json:"emoji"`
	Description string    `json:"descriptionKey"`
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	state := s.weather.State()
	resp := weatherResponse{
		State:        state,
		IsRefreshing: s.weather.IsRefreshing(),
	}

	if state.Kind == service.StateSuccess {
		prefs := s.prefs.Load(r.Context())
		locale := s.prefs.Locale(r.Context())
		resp.Display = buildDisplay(*state.Data, prefs.MetricPrimary, locale)
	}

	writeJSON(w, http.StatusOK, resp)
}

// buildDisplay renders the hero strings: primary temperature with one
// decimal, converted integer-rounded, digits localized.
func buildDisplay(data domain.WeatherData, metricPrimary bool, locale domain.SupportedLocale) *displayBlock {
	d := &displayBlock{
		Temperature: data.Temperature.DisplayDualMixed(metricPrimary, 1),
		FeelsLike:   data.FeelsLike.DisplayDualMixed(metricPrimary, 1),
		TempMin:     data.TempMin.DisplayDual(metricPrimary, 0),
		TempMax:     data.TempMax.DisplayDual(metricPrimary, 0),
		Pressure:    data.Pressure.DisplayDual(metricPrimary),
		WindSpeed:   data.WindSpeed.DisplayDual(metricPrimary),
		Emoji:       domain.WMOEmoji(data.WeatherCode, isNight(data)),
		Description: domain.WMODescriptionKey(data.WeatherCode),
	}
	for _, pair := range []*[2]string{&d.Temperature, &d.FeelsLike, &d.TempMin, &d.TempMax, &d.Pressure, &d.WindSpeed} {
		pair[0] = domain.LocalizeDigits(pair[0], locale)
		pair[1] = domain.LocalizeDigits(pair[1], locale)
	}
	return d
}

// isNight derives the night flag from the snapshot's sun times.
func isNight(data domain.WeatherData) bool {
	if data.Sunrise == 0 || data.Sunset == 0 {
		return false
	}
	nowSec := domain.Now() / 1000
	return nowSec < data.Sunrise || nowSec > data.Sunset
}

func (s *Server) handleRefresh(w http.ResponseWriter, _ *http.Request) {
	// The acquisition outlives the request; clients poll GET /api/v1/weather.
	go s.weather.FetchWeather(context.Background())
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refresh started"})
}

func (s *Server) handleRefreshIfStale(w http.ResponseWriter, _ *http.Request) {
	go s.weather.RefreshIfStale(context.Background())
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refresh-if-stale started"})
}

func (s *Server) handlePreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.prefs.Load(r.Context()))
}

func (s *Server) handleToggleUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.prefs.ToggleUnits(r.Context()))
}

func (s *Server) handleCycleFont(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.prefs.CycleFont(r.Context()))
}

func (s *Server) handleCycleLocale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.prefs.CycleLocale(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
