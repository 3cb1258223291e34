package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressure_Conversion(t *testing.T) {
	p := PressureFromHPa(1013.25)
	assert.InDelta(t, 29.92, p.InHg(), 0.005)

	back := PressureFromInHg(p.InHg())
	assert.InDelta(t, 1013.25, back.HPa(), 1e-9)
}

func TestPressure_Display(t *testing.T) {
	p := PressureFromHPa(1013.25)
	assert.Equal(t, "1013 hPa", p.DisplayHPa())
	assert.Equal(t, "29.92 inHg", p.DisplayInHg())

	pair := p.DisplayDual(true)
	assert.Equal(t, [2]string{"1013 hPa", "29.92 inHg"}, pair)

	flipped := p.DisplayDual(false)
	assert.Equal(t, [2]string{pair[1], pair[0]}, flipped)
}

func TestWindSpeed_Conversion(t *testing.T) {
	w := WindSpeedFromMetersPerSecond(10)
	assert.InDelta(t, 22.3694, w.Mph(), 1e-9)

	back := WindSpeedFromMph(w.Mph())
	assert.InDelta(t, 10, back.MetersPerSecond(), 1e-9)
}

func TestWindSpeed_Display(t *testing.T) {
	w := WindSpeedFromMetersPerSecond(5.25)
	assert.Equal(t, "5.2 m/s", w.DisplayMetric())
	assert.Equal(t, "11.7 mph", w.DisplayImperial())

	pair := w.DisplayDual(false)
	assert.Equal(t, "11.7 mph", pair[0])
	assert.Equal(t, "5.2 m/s", pair[1])
}

func TestPrecipitation_Conversion(t *testing.T) {
	p := PrecipitationFromMm(25.4)
	assert.InDelta(t, 0.9999, p.Inches(), 0.001)

	back := PrecipitationFromInches(p.Inches())
	assert.InDelta(t, 25.4, back.Mm(), 1e-9)
}

func TestPrecipitation_Display(t *testing.T) {
	p := PrecipitationFromMm(2.5)
	assert.Equal(t, "2.5 mm", p.DisplayMetric())
	assert.Equal(t, "0.10 in", p.DisplayImperial())

	pair := p.DisplayDual(true)
	assert.Equal(t, "2.5 mm", pair[0])
	assert.Equal(t, "0.10 in", pair[1])
}
