package domain

// ForecastPayload mirrors the raw forecast provider response. Field names
// follow the provider's wire format; all temperatures are Celsius, wind speeds
// m/s, pressure hPa, precipitation mm, visibility meters.
type ForecastPayload struct {
	Current CurrentConditions `json:"current"`
	Hourly  HourlySeries      `json:"hourly"`
	Daily   DailySeries       `json:"daily"`
}

// CurrentConditions is the instantaneous block of a forecast payload.
type CurrentConditions struct {
	Temperature2m       float64 `json:"temperature_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	RelativeHumidity2m  float64 `json:"relative_humidity_2m"`
	DewPoint2m          float64 `json:"dew_point_2m"`
	WindSpeed10m        float64 `json:"wind_speed_10m"`
	WindDirection10m    float64 `json:"wind_direction_10m"`
	WindGusts10m        float64 `json:"wind_gusts_10m"`
	PressureMsl         float64 `json:"pressure_msl"`
	Precipitation       float64 `json:"precipitation"`
	Rain                float64 `json:"rain"`
	Snowfall            float64 `json:"snowfall"`
	Visibility          float64 `json:"visibility"`
	WeatherCode         int     `json:"weather_code"`
	IsDay               int     `json:"is_day"`
	UVIndex             float64 `json:"uv_index"`
	CloudCover          float64 `json:"cloud_cover"`
}

// HourlySeries holds parallel per-hour arrays. Times are provider-local ISO
// strings ("2006-01-02T15:04").
type HourlySeries struct {
	Time                     []string  `json:"time"`
	Temperature2m            []float64 `json:"temperature_2m"`
	WeatherCode              []int     `json:"weather_code"`
	PrecipitationProbability []int     `json:"precipitation_probability"`
}

// DailySeries holds parallel per-day arrays. Time entries are ISO dates;
// sunrise/sunset are ISO date-times.
type DailySeries struct {
	Time                        []string  `json:"time"`
	Temperature2mMax            []float64 `json:"temperature_2m_max"`
	Temperature2mMin            []float64 `json:"temperature_2m_min"`
	WeatherCode                 []int     `json:"weather_code"`
	PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
	Sunrise                     []string  `json:"sunrise"`
	Sunset                      []string  `json:"sunset"`
}
