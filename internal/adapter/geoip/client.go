// Package geoip implements domain.Locator by geolocating the host's public IP
// address. It is a coarse substitute for a positioning device: city-level
// accuracy, which is all the movement threshold needs.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lunamark/weatherdeck/internal/domain"
)

// Client looks up the host position via the ip-api.com JSON endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an IP geolocation client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// Position performs a one-shot lookup of the host's position.
func (c *Client) Position(ctx context.Context) (domain.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json?fields=status,lat,lon", nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geolocation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("geolocation API error: status %d", resp.StatusCode)
	}

	var geoResp response
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode response: %w", err)
	}
	if geoResp.Status != "success" {
		return domain.Coordinates{}, fmt.Errorf("geolocation lookup failed: status %q", geoResp.Status)
	}

	return domain.Coordinates{Lat: geoResp.Lat, Lon: geoResp.Lon}, nil
}

type response struct {
	Status string  `json:"status"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}
