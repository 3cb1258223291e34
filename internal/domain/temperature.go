package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Temperature is an immutable temperature value stored canonically in Celsius.
// Construct only through TemperatureFromCelsius or TemperatureFromFahrenheit.
type Temperature struct {
	celsius float64
}

// TemperatureFromCelsius wraps a Celsius value. Any finite number is accepted;
// the upstream provider is trusted.
func TemperatureFromCelsius(c float64) Temperature {
	return Temperature{celsius: c}
}

// TemperatureFromFahrenheit converts a Fahrenheit value to the canonical unit.
func TemperatureFromFahrenheit(f float64) Temperature {
	return Temperature{celsius: (f - 32) * 5 / 9}
}

// Celsius returns the canonical value.
func (t Temperature) Celsius() float64 { return t.celsius }

// Fahrenheit returns the derived imperial value (°F = °C×9/5+32).
func (t Temperature) Fahrenheit() float64 { return t.celsius*9/5 + 32 }

// DisplayCelsius renders the Celsius value; zero decimals means integer rounding.
func (t Temperature) DisplayCelsius(decimals int) string {
	if decimals > 0 {
		return fmt.Sprintf("%.*f°C", decimals, t.celsius)
	}
	return fmt.Sprintf("%d°C", int(math.Round(t.celsius)))
}

// DisplayFahrenheit renders the Fahrenheit value; zero decimals means integer rounding.
func (t Temperature) DisplayFahrenheit(decimals int) string {
	if decimals > 0 {
		return fmt.Sprintf("%.*f°F", decimals, t.Fahrenheit())
	}
	return fmt.Sprintf("%d°F", int(math.Round(t.Fahrenheit())))
}

// DisplayDual returns the [primary, secondary] pair; ordering is governed
// solely by metricPrimary.
func (t Temperature) DisplayDual(metricPrimary bool, decimals int) [2]string {
	if metricPrimary {
		return [2]string{t.DisplayCelsius(decimals), t.DisplayFahrenheit(decimals)}
	}
	return [2]string{t.DisplayFahrenheit(decimals), t.DisplayCelsius(decimals)}
}

// DisplayDualMixed renders the primary unit with cDecimals decimals and the
// converted unit integer-rounded. Used for the hero display.
func (t Temperature) DisplayDualMixed(metricPrimary bool, cDecimals int) [2]string {
	if metricPrimary {
		return [2]string{t.DisplayCelsius(cDecimals), t.DisplayFahrenheit(0)}
	}
	return [2]string{t.DisplayFahrenheit(0), t.DisplayCelsius(cDecimals)}
}

type temperatureJSON struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

// MarshalJSON emits both units so downstream consumers need no conversion.
func (t Temperature) MarshalJSON() ([]byte, error) {
	return json.Marshal(temperatureJSON{Celsius: t.celsius, Fahrenheit: t.Fahrenheit()})
}

// UnmarshalJSON restores the canonical value; the derived unit is ignored.
func (t *Temperature) UnmarshalJSON(data []byte) error {
	var v temperatureJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	t.celsius = v.Celsius
	return nil
}
