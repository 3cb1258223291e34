package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovedSignificantly(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   bool
	}{
		{"same position", 10, 10, 10, 10, false},
		{"latitude over threshold", 10, 10, 10.05, 10, true},
		{"longitude over threshold", 10, 10, 10, 10.05, true},
		{"just under threshold", 10, 10, 10.044, 10.044, false},
		{"just over threshold", 10, 10, 10.046, 10, true},
		{"negative coordinates", -33.9, 18.4, -33.8, 18.4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MovedSignificantly(tt.lat1, tt.lon1, tt.lat2, tt.lon2))
		})
	}
}

func TestCoordinateLabel(t *testing.T) {
	assert.Equal(t, "48.86, 2.35", CoordinateLabel(48.8566, 2.3522))
	assert.Equal(t, "-33.93, 18.42", CoordinateLabel(-33.9258, 18.4232))
}
