// Package domain models the weather snapshot and the value types used to
// display it.
//
// # Unit Value Types
//
// Temperature, Pressure, WindSpeed, and Precipitation are immutable wrappers
// around a single canonical metric value (Celsius, hectopascals, meters per
// second, millimeters). They are constructed only through their factory
// functions and trust the upstream provider completely: no physical
// plausibility checks, so a negative visibility or an absurd wind speed is
// representable.
//
// Conversion factors are fixed constants:
//
//	°F   = °C × 9/5 + 32
//	mph  = m/s × 2.23694
//	inHg = hPa × 0.02953
//	in   = mm × 0.03937
//
// Display defaults: temperature integer-rounded (0 decimals) unless
// overridden, wind 1 decimal, precipitation 1 decimal (mm) / 2 (in),
// pressure integer (hPa) / 2 decimals (inHg). DisplayDual returns the
// [primary, secondary] pair ordered solely by the metricPrimary preference;
// the hero display uses Temperature.DisplayDualMixed, which keeps decimals on
// the primary unit and integer-rounds the converted one.
//
// # Locale Digits
//
// LocalizeDigits rewrites an already-formatted string for a SupportedLocale:
// first the decimal separator is substituted, then each ASCII digit 0-9 is
// shifted into the locale's native digit block (Arabic-Indic U+0660…,
// Devanagari U+0966…). Grouping separators and RTL shaping are out of scope.
// The locale list order is significant: the persisted locale index cycles
// through it modulo its length.
//
// # Forecast Mapping
//
// MapForecast turns a raw provider payload into a WeatherData snapshot:
//
//   - gust/rain/snow fields are pointers, present only when the raw value is
//     strictly positive, so the UI can tell "no precipitation" from "0 mm"
//   - today's sunrise/sunset come from the first daily entries, truncated to
//     epoch seconds; the per-day arrays keep epoch millis for hourly
//     day/night emoji selection
//   - hourly entries strictly before "now" are dropped and the rest capped
//     at 24, yielding "the next 24 hours", not "today's 24 hours"
//   - the snapshot timestamp is the mapping wall clock from the package
//     clock, which tests freeze via SetClock
//
// # Movement Threshold
//
// MovedSignificantly compares positions per axis against 0.045° (~5 km at the
// equator). This deliberately stays a crude Euclidean check.
package domain
