package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunamark/weatherdeck/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	captured := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	data := domain.WeatherData{
		Temperature:  domain.TemperatureFromCelsius(21.6),
		LocationName: "Antananarivo",
		WeatherCode:  2,
		Timestamp:    captured.UnixMilli(),
	}

	msg, err := serializeToMessage(data)
	require.NoError(t, err)

	assert.Equal(t, []byte("Antananarivo"), msg.Key)
	assert.Contains(t, string(msg.Value), `"locationName":"Antananarivo"`)
	assert.Contains(t, string(msg.Value), `"weatherCode":2`)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "captured_at", msg.Headers[0].Key)
	assert.Equal(t, []byte("2026-03-14T12:30:00Z"), msg.Headers[0].Value)
}

func TestSerializeToMessage_DualUnitsOnWire(t *testing.T) {
	data := domain.WeatherData{
		Temperature:  domain.TemperatureFromCelsius(0),
		WindSpeed:    domain.WindSpeedFromMetersPerSecond(10),
		LocationName: "x",
	}

	msg, err := serializeToMessage(data)
	require.NoError(t, err)

	// Consumers get both unit systems without converting themselves.
	assert.Contains(t, string(msg.Value), `"fahrenheit":32`)
	assert.Contains(t, string(msg.Value), `"mph":22.3694`)
}
