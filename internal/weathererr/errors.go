package weathererr

import (
	"errors"
	"fmt"
)

// Code identifies an error class independent of any locale. The orchestrator
// maps a code to one sentence of the active locale.
type Code string

const (
	CodeNoNetwork     Code = "no_network_error"
	CodeAPI           Code = "api_error"
	CodeAPITimeout    Code = "api_timeout_error"
	CodeLocation      Code = "location_error"
	CodePastWeather   Code = "past_weather_error"
	CodeNoWeather     Code = "no_weather_for_day_error"
	CodeFutureWeather Code = "future_weather_error"
	CodeNotImplement  Code = "not_implemented_error"
	CodeDate          Code = "date_error"
	CodeTime          Code = "time_error"
	CodeConfig        Code = "config_error"
	CodeOutput        Code = "output_error"
	CodeGeneral       Code = "general_error"
)

// Codes lists every code in a stable order.
var Codes = []Code{
	CodeNoNetwork, CodeAPI, CodeAPITimeout, CodeLocation, CodePastWeather,
	CodeNoWeather, CodeFutureWeather, CodeNotImplement, CodeDate, CodeTime,
	CodeConfig, CodeOutput, CodeGeneral,
}

var (
	ErrNoData           = errors.New("no forecast data for window")
	ErrAPIKey           = errors.New("weather provider rejected api key")
	ErrRateLimited      = errors.New("weather provider rate limit exceeded")
	ErrLocationNotFound = errors.New("weather provider does not know location")
	ErrNoNetwork        = errors.New("weather provider unreachable")
	ErrProvider         = errors.New("weather provider error")
	ErrConfig           = errors.New("invalid configuration")
	ErrOutput           = errors.New("output delivery failed")
	ErrUnknownIntent    = errors.New("unknown intent")
)

// PastRequestError is returned when a request targets a date or time before now.
type PastRequestError struct {
	Date string
	Time string
}

func (e *PastRequestError) Error() string {
	if e.Time != "" {
		return fmt.Sprintf("requested time %s %s is in the past", e.Date, e.Time)
	}
	return fmt.Sprintf("requested date %s is in the past", e.Date)
}

// NoDataError carries the window that yielded no samples.
type NoDataError struct {
	Date  string
	Start string
	End   string
	// Future is set when the date lies beyond the forecast horizon.
	Future bool
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no forecast data for %s between %s and %s", e.Date, e.Start, e.End)
}

func (e *NoDataError) Is(target error) bool {
	return target == ErrNoData
}

type UnsupportedGrainError struct {
	Grain string
}

func (e *UnsupportedGrainError) Error() string {
	return fmt.Sprintf("unsupported grain %q", e.Grain)
}

// UnknownRequestedError reports a condition, temperature or item the locale
// does not know.
type UnknownRequestedError struct {
	Kind  string
	Value string
}

func (e *UnknownRequestedError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

type DateError struct {
	Input string
	Err   error
}

func (e *DateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid date %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid date %q", e.Input)
}

func (e *DateError) Unwrap() error { return e.Err }

type TimeError struct {
	Input string
	Err   error
}

func (e *TimeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid time %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid time %q", e.Input)
}

func (e *TimeError) Unwrap() error { return e.Err }

// CodeOf classifies err. Unknown errors map to CodeGeneral.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}

	var (
		past    *PastRequestError
		noData  *NoDataError
		grain   *UnsupportedGrainError
		dateErr *DateError
		timeErr *TimeError
	)

	switch {
	case errors.As(err, &past):
		return CodePastWeather
	case errors.As(err, &noData):
		if noData.Future {
			return CodeFutureWeather
		}
		return CodeNoWeather
	case errors.Is(err, ErrNoData):
		return CodeNoWeather
	case errors.As(err, &grain), errors.Is(err, ErrUnknownIntent):
		return CodeNotImplement
	case errors.As(err, &dateErr):
		return CodeDate
	case errors.As(err, &timeErr):
		return CodeTime
	case errors.Is(err, ErrAPIKey):
		return CodeAPI
	case errors.Is(err, ErrRateLimited):
		return CodeAPITimeout
	case errors.Is(err, ErrLocationNotFound):
		return CodeLocation
	case errors.Is(err, ErrNoNetwork):
		return CodeNoNetwork
	case errors.Is(err, ErrConfig):
		return CodeConfig
	case errors.Is(err, ErrOutput):
		return CodeOutput
	default:
		return CodeGeneral
	}
}
