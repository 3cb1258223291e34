package httpapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunamark/weatherdeck/internal/adapter/httpapi"
	"github.com/lunamark/weatherdeck/internal/domain"
	"github.com/lunamark/weatherdeck/internal/kvstore"
	"github.com/lunamark/weatherdeck/internal/service"
)

type mockWeather struct {
	state        service.WeatherState
	refreshing   bool
	readyErr     error
	fetchCalls   atomic.Int32
	staleFetches atomic.Int32
}

func (m *mockWeather) State() service.WeatherState            { return m.state }
func (m *mockWeather) IsRefreshing() bool                     { return m.refreshing }
func (m *mockWeather) FetchWeather(_ context.Context)         { m.fetchCalls.Add(1) }
func (m *mockWeather) RefreshIfStale(_ context.Context)       { m.staleFetches.Add(1) }
func (m *mockWeather) CheckReadiness(_ context.Context) error { return m.readyErr }

func successData() domain.WeatherData {
	return domain.WeatherData{
		Temperature:  domain.TemperatureFromCelsius(21.67),
		FeelsLike:    domain.TemperatureFromCelsius(23.1),
		TempMin:      domain.TemperatureFromCelsius(12),
		TempMax:      domain.TemperatureFromCelsius(25),
		Pressure:     domain.PressureFromHPa(1013.25),
		WindSpeed:    domain.WindSpeedFromMetersPerSecond(5.2),
		WeatherCode:  2,
		LocationName: "Antananarivo",
	}
}

func newTestServer(weather *mockWeather) *httpapi.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	prefs := service.NewPreferences(kvstore.NewMemory(), logger)
	return httpapi.NewServer(":0", weather, prefs, logger)
}

func do(t *testing.T, srv *httpapi.Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := do(t, newTestServer(&mockWeather{}), http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(&mockWeather{readyErr: fmt.Errorf("redis down")})
	rec := do(t, srv, http.MethodGet, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "redis down", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := do(t, newTestServer(&mockWeather{}), http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetWeather_Loading(t *testing.T) {
	weather := &mockWeather{state: service.WeatherState{Kind: service.StateLoading}}
	rec := do(t, newTestServer(weather), http.MethodGet, "/api/v1/weather")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `{"kind":"loading"}`, string(body["state"]))
	assert.NotContains(t, body, "display")
}

func TestGetWeather_Error(t *testing.T) {
	weather := &mockWeather{state: service.WeatherState{
		Kind:       service.StateError,
		MessageKey: "error_get_location",
	}}
	rec := do(t, newTestServer(weather), http.MethodGet, "/api/v1/weather")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error_get_location"`)
}

func TestGetWeather_SuccessWithDisplay(t *testing.T) {
	data := successData()
	weather := &mockWeather{
		state:      service.WeatherState{Kind: service.StateSuccess, Data: &data},
		refreshing: true,
	}
	rec := do(t, newTestServer(weather), http.MethodGet, "/api/v1/weather")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		IsRefreshing bool `json:"isRefreshing"`
		Display      struct {
			Temperature [2]string `json:"temperature"`
			Pressure    [2]string `json:"pressure"`
			Emoji       string    `json:"emoji"`
			Description string    `json:"descriptionKey"`
		} `json:"display"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.IsRefreshing)
	// Default preferences: metric-first, first locale (western digits).
	assert.Equal(t, [2]string{"21.7°C", "71°F"}, body.Display.Temperature)
	assert.Equal(t, [2]string{"1013 hPa", "29.92 inHg"}, body.Display.Pressure)
	assert.Equal(t, "wmo_partly_cloudy", body.Display.Description)
	assert.NotEmpty(t, body.Display.Emoji)
}

func TestPostRefresh_Accepted(t *testing.T) {
	weather := &mockWeather{}
	srv := newTestServer(weather)

	rec := do(t, srv, http.MethodPost, "/api/v1/weather/refresh")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	// The fetch runs on its own goroutine.
	require.Eventually(t, func() bool {
		return weather.fetchCalls.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestPostRefreshIfStale_Accepted(t *testing.T) {
	weather := &mockWeather{}
	srv := newTestServer(weather)

	rec := do(t, srv, http.MethodPost, "/api/v1/weather/refresh-if-stale")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	require.Eventually(t, func() bool {
		return weather.staleFetches.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestPreferences_DefaultsAndMutations(t *testing.T) {
	srv := newTestServer(&mockWeather{})

	rec := do(t, srv, http.MethodGet, "/api/v1/preferences")
	assert.Equal(t, http.StatusOK, rec.Code)

	var prefs service.PreferenceValues
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	assert.True(t, prefs.MetricPrimary)
	assert.Zero(t, prefs.FontIndex)

	rec = do(t, srv, http.MethodPost, "/api/v1/preferences/toggle-units")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	assert.False(t, prefs.MetricPrimary)

	rec = do(t, srv, http.MethodPost, "/api/v1/preferences/cycle-font")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	assert.Equal(t, 1, prefs.FontIndex)

	rec = do(t, srv, http.MethodPost, "/api/v1/preferences/cycle-locale")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	assert.Equal(t, 1, prefs.LocaleIndex)
}

func TestGetWeather_MethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(&mockWeather{}), http.MethodDelete, "/api/v1/weather")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
