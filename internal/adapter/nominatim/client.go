// Package nominatim implements domain.ReverseGeocoder against the OpenStreetMap
// Nominatim API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lunamark/weatherdeck/internal/observability"
)

// Nominatim's usage policy requires an identifying User-Agent.
const userAgent = "weatherdeck/1.0"

// Client resolves coordinates to a place name.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a Nominatim reverse-geocoding client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
		metrics: metrics,
	}
}

// ReverseGeocode resolves a coordinate pair to the most specific populated
// place Nominatim knows: city, then town, village, county, state. An empty
// string with a nil error means the position resolved to no known place;
// callers fall back to a coordinate label.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{
		"lat":    {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(lon, 'f', -1, 64)},
		"format": {"json"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return "", fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var nominatimResp response
	if err := json.NewDecoder(resp.Body).Decode(&nominatimResp); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return "", fmt.Errorf("decode response: %w", err)
	}

	name := nominatimResp.Address.placeName()
	if name == "" {
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		return "", nil
	}
	c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	return name, nil
}

// Nominatim API response types.

type response struct {
	Address address `json:"address"`
}

type address struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	County  string `json:"county"`
	State   string `json:"state"`
}

func (a address) placeName() string {
	for _, name := range []string{a.City, a.Town, a.Village, a.County, a.State} {
		if name != "" {
			return name
		}
	}
	return ""
}
