package domain

import (
	"math"
	"time"
)

const maxHourlyEntries = 24

// Provider timestamps are ISO strings localized to the requested coordinates
// (the provider resolves the timezone server-side). They are parsed in the
// process's local zone; the hourly filter is correct insofar as the local
// clock and the provider timezone agree.
const (
	providerDateTimeLayout = "2006-01-02T15:04"
	providerDateLayout     = "2006-01-02"
)

// MapForecast transforms a raw provider payload and a resolved location name
// into a WeatherData snapshot. The snapshot timestamp is the mapping wall
// clock, not a provider-supplied time.
func MapForecast(payload ForecastPayload, locationName string) WeatherData {
	c := payload.Current
	d := payload.Daily
	h := payload.Hourly

	nowMillis := Now()

	dailySunrise := make([]int64, len(d.Sunrise))
	for i, s := range d.Sunrise {
		dailySunrise[i] = parseProviderDateTime(s)
	}
	dailySunset := make([]int64, len(d.Sunset))
	for i, s := range d.Sunset {
		dailySunset[i] = parseProviderDateTime(s)
	}

	var sunriseSec, sunsetSec int64
	if len(dailySunrise) > 0 {
		sunriseSec = dailySunrise[0] / 1000
	}
	if len(dailySunset) > 0 {
		sunsetSec = dailySunset[0] / 1000
	}

	hourly := make([]HourlyForecast, 0, maxHourlyEntries)
	for i, ts := range h.Time {
		millis := parseProviderDateTime(ts)
		if millis < nowMillis {
			continue
		}
		if len(hourly) == maxHourlyEntries {
			break
		}
		hourly = append(hourly, HourlyForecast{
			Time:              millis,
			Temperature:       TemperatureFromCelsius(floatAt(h.Temperature2m, i)),
			WeatherCode:       intAt(h.WeatherCode, i),
			PrecipProbability: intAt(h.PrecipitationProbability, i),
		})
	}

	daily := make([]DailyForecast, 0, len(d.Time))
	for i, ts := range d.Time {
		daily = append(daily, DailyForecast{
			Date:              parseProviderDate(ts),
			TempMax:           TemperatureFromCelsius(floatAt(d.Temperature2mMax, i)),
			TempMin:           TemperatureFromCelsius(floatAt(d.Temperature2mMin, i)),
			WeatherCode:       intAt(d.WeatherCode, i),
			PrecipProbability: intAt(d.PrecipitationProbabilityMax, i),
		})
	}

	tempMin := c.Temperature2m
	if len(d.Temperature2mMin) > 0 {
		tempMin = d.Temperature2mMin[0]
	}
	tempMax := c.Temperature2m
	if len(d.Temperature2mMax) > 0 {
		tempMax = d.Temperature2mMax[0]
	}

	data := WeatherData{
		Temperature:  TemperatureFromCelsius(c.Temperature2m),
		FeelsLike:    TemperatureFromCelsius(c.ApparentTemperature),
		TempMin:      TemperatureFromCelsius(tempMin),
		TempMax:      TemperatureFromCelsius(tempMax),
		WeatherCode:  c.WeatherCode,
		LocationName: locationName,

		Pressure:   PressureFromHPa(c.PressureMsl),
		Humidity:   c.RelativeHumidity2m,
		DewPoint:   TemperatureFromCelsius(c.DewPoint2m),
		WindSpeed:  WindSpeedFromMetersPerSecond(c.WindSpeed10m),
		WindDeg:    c.WindDirection10m,
		UVIndex:    c.UVIndex,
		CloudCover: c.CloudCover,
		Visibility: int(math.Round(c.Visibility)),

		Sunrise:      sunriseSec,
		Sunset:       sunsetSec,
		DailySunrise: dailySunrise,
		DailySunset:  dailySunset,

		HourlyForecast: hourly,
		DailyForecast:  daily,

		Timestamp: nowMillis,
	}

	// Gusts and precipitation are absent, not zero, when the raw value is not
	// strictly positive so the UI can distinguish "none" from "0mm".
	if c.WindGusts10m > 0 {
		gust := WindSpeedFromMetersPerSecond(c.WindGusts10m)
		data.WindGust = &gust
	}
	if c.Rain > 0 {
		rain := PrecipitationFromMm(c.Rain)
		data.Rain = &rain
	}
	if c.Snowfall > 0 {
		snow := PrecipitationFromMm(c.Snowfall)
		data.Snow = &snow
	}

	return data
}

// parseProviderDateTime parses a provider-local ISO date-time into epoch
// millis, returning 0 on malformed input.
func parseProviderDateTime(s string) int64 {
	t, err := time.ParseInLocation(providerDateTimeLayout, s, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(time.RFC3339, s, time.Local)
		if err != nil {
			return 0
		}
	}
	return t.UnixMilli()
}

// parseProviderDate parses an ISO date into epoch millis at local midnight.
func parseProviderDate(s string) int64 {
	t, err := time.ParseInLocation(providerDateLayout, s, time.Local)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

func floatAt(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

func intAt(values []int, i int) int {
	if i < len(values) {
		return values[i]
	}
	return 0
}
