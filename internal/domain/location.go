package domain

import (
	"fmt"
	"math"
)

// moveThresholdDegrees is roughly 5 km in degrees at the equator. The
// comparison is per-axis Euclidean, not great-circle; inaccurate near the
// poles but sufficient for "did the device move to another town".
const moveThresholdDegrees = 0.045

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MovedSignificantly reports whether two positions differ enough on either
// axis to warrant a fresh forecast fetch.
func MovedSignificantly(lat1, lon1, lat2, lon2 float64) bool {
	return math.Abs(lat1-lat2) > moveThresholdDegrees || math.Abs(lon1-lon2) > moveThresholdDegrees
}

// CoordinateLabel formats a position as a human-readable fallback location
// name, e.g. "48.85, 2.35".
func CoordinateLabel(lat, lon float64) string {
	return fmt.Sprintf("%.2f, %.2f", lat, lon)
}
