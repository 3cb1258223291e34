// Package openmeteo implements domain.Forecaster against the Open-Meteo
// forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/lunamark/weatherdeck/internal/domain"
)

// The parameter sets are fixed; every field the mapper reads is requested on
// every call. Wind speeds come back in m/s, the horizon is ten days, and the
// provider resolves the timezone from the coordinates.
var (
	currentParams = strings.Join([]string{
		"temperature_2m", "apparent_temperature", "relative_humidity_2m", "dew_point_2m",
		"wind_speed_10m", "wind_direction_10m", "wind_gusts_10m", "pressure_msl",
		"precipitation", "rain", "snowfall", "visibility", "weather_code", "is_day",
		"uv_index", "cloud_cover",
	}, ",")
	hourlyParams = "temperature_2m,weather_code,precipitation_probability"
	dailyParams  = strings.Join([]string{
		"temperature_2m_max", "temperature_2m_min", "weather_code",
		"precipitation_probability_max", "sunrise", "sunset",
	}, ",")
)

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
)

// Client fetches forecasts with retry, exponential backoff, and a circuit
// breaker in front of the upstream.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	breaker    *gobreaker.CircuitBreaker

	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// NewClient creates an Open-Meteo forecast client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openmeteo",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
		maxRetries:      3,
		initialInterval: 500 * time.Millisecond,
		maxInterval:     5 * time.Second,
	}
}

// Forecast fetches the current, hourly, and daily blocks for a coordinate
// pair. Any non-2xx response is a failure; 429 and 5xx are retried with
// backoff, other statuses fail immediately.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (domain.ForecastPayload, error) {
	params := url.Values{
		"latitude":        {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude":       {strconv.FormatFloat(lon, 'f', -1, 64)},
		"current":         {currentParams},
		"hourly":          {hourlyParams},
		"daily":           {dailyParams},
		"forecast_days":   {"10"},
		"timezone":        {"auto"},
		"wind_speed_unit": {"ms"},
	}
	fullURL := c.baseURL + "?" + params.Encode()

	resp, err := c.doWithResilience(ctx, fullURL)
	if err != nil {
		return domain.ForecastPayload{}, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	var payload domain.ForecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.ForecastPayload{}, fmt.Errorf("decode forecast response: %w", err)
	}
	return payload, nil
}

func (c *Client) doWithResilience(ctx context.Context, fullURL string) (*http.Response, error) {
	var attempt int
	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		result, err := c.breaker.Execute(func() (interface{}, error) {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
			if reqErr != nil {
				return nil, reqErr
			}
			resp, doErr := c.httpClient.Do(req)
			if doErr != nil {
				return nil, doErr
			}

			switch {
			case resp.StatusCode == http.StatusTooManyRequests:
				drain(resp)
				return nil, errRateLimited
			case resp.StatusCode >= 500:
				drain(resp)
				return nil, errServerError
			case resp.StatusCode != http.StatusOK:
				body, _ := io.ReadAll(resp.Body)
				resp.Body.Close()
				return nil, fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)
			}
			return resp, nil
		})
		if err == nil {
			return result.(*http.Response), nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("circuit breaker open: %w", err)
		}
		if !retryable(err) || attempt >= c.maxRetries {
			return nil, err
		}

		delay := c.initialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > c.maxInterval {
			delay = c.maxInterval
		}
		c.logger.Debug("forecast request failed, retrying",
			"attempt", attempt+1,
			"delay", delay.String(),
			"error", err,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		attempt++
	}
}

// retryable reports whether an attempt error is transient: network failures,
// rate limiting, and server errors. A 4xx other than 429 is not.
func retryable(err error) bool {
	if errors.Is(err, errRateLimited) || errors.Is(err, errServerError) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
