package domain

// HourlyForecast is one future hour of the forecast window.
type HourlyForecast struct {
	Time              int64       `json:"time"` // epoch millis
	Temperature       Temperature `json:"temperature"`
	WeatherCode       int         `json:"weatherCode"`
	PrecipProbability int         `json:"precipProbability"` // percent 0-100
}

// DailyForecast is one day of the forecast window.
type DailyForecast struct {
	Date              int64       `json:"date"` // epoch millis at local midnight
	TempMax           Temperature `json:"tempMax"`
	TempMin           Temperature `json:"tempMin"`
	WeatherCode       int         `json:"weatherCode"`
	PrecipProbability int         `json:"precipProbability"`
}

// WeatherData is a complete weather snapshot for one location. It is created
// only by MapForecast, never mutated, and superseded wholesale by the next
// successful fetch.
type WeatherData struct {
	Temperature  Temperature `json:"temperature"`
	FeelsLike    Temperature `json:"feelsLike"`
	TempMin      Temperature `json:"tempMin"`
	TempMax      Temperature `json:"tempMax"`
	WeatherCode  int         `json:"weatherCode"`
	LocationName string      `json:"locationName"`

	Pressure   Pressure       `json:"pressure"`
	Humidity   float64        `json:"humidity"` // percent 0-100
	DewPoint   Temperature    `json:"dewPoint"`
	WindSpeed  WindSpeed      `json:"windSpeed"`
	WindDeg    float64        `json:"windDeg"`
	WindGust   *WindSpeed     `json:"windGust,omitempty"` // absent when the provider reports no gusts
	Rain       *Precipitation `json:"rain,omitempty"`     // absent (not zero) when there is no rain
	Snow       *Precipitation `json:"snow,omitempty"`
	UVIndex    float64        `json:"uvIndex"`
	CloudCover float64        `json:"cloudCover"` // percent 0-100
	Visibility int            `json:"visibility"` // meters, rounded

	Sunrise      int64   `json:"sunrise"`      // today, epoch seconds
	Sunset       int64   `json:"sunset"`       // today, epoch seconds
	DailySunrise []int64 `json:"dailySunrise"` // epoch millis, parallel to DailyForecast
	DailySunset  []int64 `json:"dailySunset"`

	HourlyForecast []HourlyForecast `json:"hourlyForecast"`
	DailyForecast  []DailyForecast  `json:"dailyForecast"`

	Timestamp int64 `json:"timestamp"` // capture time, epoch millis
}
