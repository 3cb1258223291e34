package domain

import "fmt"

// LocationError marks a failure to obtain the device position. The state
// machine maps it to a different user-facing message than forecast failures.
type LocationError struct {
	Err error
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("get device position: %v", e.Err)
}

func (e *LocationError) Unwrap() error { return e.Err }

// FetchError marks a failure to acquire or decode a forecast.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch weather: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
