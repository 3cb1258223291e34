package service

import "github.com/lunamark/weatherdeck/internal/domain"

// StateKind discriminates the weather state union.
type StateKind string

const (
	StateLoading StateKind = "loading"
	StateSuccess StateKind = "success"
	StateError   StateKind = "error"
)

// Message keys for the error state. Clients map these to localized copy.
const (
	errKeyGetLocation  = "error_get_location"
	errKeyFetchWeather = "error_fetch_weather"
)

// WeatherState is the tagged union the service exposes to clients. Exactly
// one of Data or MessageKey is meaningful, selected by Kind: Success carries
// Data, Error carries MessageKey, Loading carries neither.
type WeatherState struct {
	Kind       StateKind           `json:"kind"`
	Data       *domain.WeatherData `json:"data,omitempty"`
	MessageKey string              `json:"messageKey,omitempty"`
}

func loadingState() WeatherState {
	return WeatherState{Kind: StateLoading}
}

func successState(data domain.WeatherData) WeatherState {
	return WeatherState{Kind: StateSuccess, Data: &data}
}

func errorState(messageKey string) WeatherState {
	return WeatherState{Kind: StateError, MessageKey: messageKey}
}
