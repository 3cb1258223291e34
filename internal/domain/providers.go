package domain

import (
	"context"
	"log/slog"
)

// Forecaster fetches a raw forecast payload for a coordinate pair.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lon float64) (ForecastPayload, error)
}

// ReverseGeocoder resolves a display name for a coordinate pair.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// Locator obtains the device's current position. Implementations perform a
// one-shot lookup with their own timeout.
type Locator interface {
	Position(ctx context.Context) (Coordinates, error)
}

// ResolveLocationName resolves a display name via the geocoder, degrading to
// a formatted coordinate label on any failure or empty result. It never
// returns an error; geocoding is cosmetic and must not fail a fetch.
func ResolveLocationName(ctx context.Context, geocoder ReverseGeocoder, lat, lon float64, logger *slog.Logger) string {
	if geocoder == nil {
		return CoordinateLabel(lat, lon)
	}

	name, err := geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		logger.Warn("reverse geocoding failed, using coordinate label",
			"lat", lat,
			"lon", lon,
			"error", err,
		)
		return CoordinateLabel(lat, lon)
	}
	if name == "" {
		return CoordinateLabel(lat, lon)
	}
	return name
}
