package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperature_Conversion(t *testing.T) {
	temp := TemperatureFromCelsius(100)
	assert.Equal(t, 100.0, temp.Celsius())
	assert.Equal(t, 212.0, temp.Fahrenheit())

	freezing := TemperatureFromCelsius(0)
	assert.Equal(t, 32.0, freezing.Fahrenheit())
}

func TestTemperature_RoundTrip(t *testing.T) {
	orig := TemperatureFromCelsius(21.7)
	back := TemperatureFromFahrenheit(orig.Fahrenheit())
	assert.InDelta(t, orig.Celsius(), back.Celsius(), 1e-9)
}

func TestTemperature_DisplayDefaults(t *testing.T) {
	temp := TemperatureFromCelsius(21.67)
	assert.Equal(t, "22°C", temp.DisplayCelsius(0))
	assert.Equal(t, "21.7°C", temp.DisplayCelsius(1))
	assert.Equal(t, "71°F", temp.DisplayFahrenheit(0))
}

func TestTemperature_DisplayDualOrdering(t *testing.T) {
	temp := TemperatureFromCelsius(20)

	metric := temp.DisplayDual(true, 0)
	imperial := temp.DisplayDual(false, 0)

	assert.Equal(t, "20°C", metric[0])
	assert.Equal(t, "68°F", metric[1])

	// The imperial-first pair is the metric pair reversed.
	assert.Equal(t, metric[1], imperial[0])
	assert.Equal(t, metric[0], imperial[1])
}

func TestTemperature_DisplayDualMixed(t *testing.T) {
	temp := TemperatureFromCelsius(21.67)

	pair := temp.DisplayDualMixed(true, 1)
	assert.Equal(t, "21.7°C", pair[0], "primary keeps decimals")
	assert.Equal(t, "71°F", pair[1], "converted unit is integer-rounded")

	flipped := temp.DisplayDualMixed(false, 1)
	assert.Equal(t, "71°F", flipped[0])
	assert.Equal(t, "21.7°C", flipped[1])
}

func TestTemperature_NegativeValues(t *testing.T) {
	temp := TemperatureFromCelsius(-40)
	// -40 is the crossover point of both scales.
	assert.Equal(t, -40.0, temp.Fahrenheit())
	assert.Equal(t, "-40°C", temp.DisplayCelsius(0))
}
