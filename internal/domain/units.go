package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Fixed conversion factors. Numeric compatibility with the reference display
// values depends on these exact constants.
const (
	inHgPerHPa  = 0.02953
	mphPerMS    = 2.23694
	inchesPerMM = 0.03937
)

// Pressure is an immutable atmospheric pressure stored canonically in hectopascals.
type Pressure struct {
	hPa float64
}

func PressureFromHPa(hPa float64) Pressure   { return Pressure{hPa: hPa} }
func PressureFromInHg(inHg float64) Pressure { return Pressure{hPa: inHg / inHgPerHPa} }

func (p Pressure) HPa() float64  { return p.hPa }
func (p Pressure) InHg() float64 { return p.hPa * inHgPerHPa }

// DisplayHPa renders the metric value integer-rounded.
func (p Pressure) DisplayHPa() string {
	return fmt.Sprintf("%d hPa", int(math.Round(p.hPa)))
}

// DisplayInHg renders the imperial value with two decimals.
func (p Pressure) DisplayInHg() string {
	return fmt.Sprintf("%.2f inHg", p.InHg())
}

func (p Pressure) DisplayDual(metricPrimary bool) [2]string {
	if metricPrimary {
		return [2]string{p.DisplayHPa(), p.DisplayInHg()}
	}
	return [2]string{p.DisplayInHg(), p.DisplayHPa()}
}

type pressureJSON struct {
	HPa  float64 `json:"hPa"`
	InHg float64 `json:"inHg"`
}

func (p Pressure) MarshalJSON() ([]byte, error) {
	return json.Marshal(pressureJSON{HPa: p.hPa, InHg: p.InHg()})
}

func (p *Pressure) UnmarshalJSON(data []byte) error {
	var v pressureJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.hPa = v.HPa
	return nil
}

// WindSpeed is an immutable wind speed stored canonically in meters per second.
type WindSpeed struct {
	metersPerSecond float64
}

func WindSpeedFromMetersPerSecond(ms float64) WindSpeed { return WindSpeed{metersPerSecond: ms} }
func WindSpeedFromMph(mph float64) WindSpeed            { return WindSpeed{metersPerSecond: mph / mphPerMS} }

func (w WindSpeed) MetersPerSecond() float64 { return w.metersPerSecond }
func (w WindSpeed) Mph() float64             { return w.metersPerSecond * mphPerMS }

func (w WindSpeed) DisplayMetric() string {
	return fmt.Sprintf("%.1f m/s", w.metersPerSecond)
}

func (w WindSpeed) DisplayImperial() string {
	return fmt.Sprintf("%.1f mph", w.Mph())
}

func (w WindSpeed) DisplayDual(metricPrimary bool) [2]string {
	if metricPrimary {
		return [2]string{w.DisplayMetric(), w.DisplayImperial()}
	}
	return [2]string{w.DisplayImperial(), w.DisplayMetric()}
}

type windSpeedJSON struct {
	MetersPerSecond float64 `json:"metersPerSecond"`
	Mph             float64 `json:"mph"`
}

func (w WindSpeed) MarshalJSON() ([]byte, error) {
	return json.Marshal(windSpeedJSON{MetersPerSecond: w.metersPerSecond, Mph: w.Mph()})
}

func (w *WindSpeed) UnmarshalJSON(data []byte) error {
	var v windSpeedJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	w.metersPerSecond = v.MetersPerSecond
	return nil
}

// Precipitation is an immutable precipitation amount stored canonically in millimeters.
type Precipitation struct {
	mm float64
}

func PrecipitationFromMm(mm float64) Precipitation { return Precipitation{mm: mm} }
func PrecipitationFromInches(in float64) Precipitation {
	return Precipitation{mm: in / inchesPerMM}
}

func (p Precipitation) Mm() float64     { return p.mm }
func (p Precipitation) Inches() float64 { return p.mm * inchesPerMM }

func (p Precipitation) DisplayMetric() string {
	return fmt.Sprintf("%.1f mm", p.mm)
}

func (p Precipitation) DisplayImperial() string {
	return fmt.Sprintf("%.2f in", p.Inches())
}

func (p Precipitation) DisplayDual(metricPrimary bool) [2]string {
	if metricPrimary {
		return [2]string{p.DisplayMetric(), p.DisplayImperial()}
	}
	return [2]string{p.DisplayImperial(), p.DisplayMetric()}
}

type precipitationJSON struct {
	Mm     float64 `json:"mm"`
	Inches float64 `json:"inches"`
}

func (p Precipitation) MarshalJSON() ([]byte, error) {
	return json.Marshal(precipitationJSON{Mm: p.mm, Inches: p.Inches()})
}

func (p *Precipitation) UnmarshalJSON(data []byte) error {
	var v precipitationJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.mm = v.Mm
	return nil
}
