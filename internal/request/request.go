package request

import (
	"strings"
	"time"

	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

// Kind is what the user asked for.
type Kind int

const (
	KindFull Kind = iota
	KindTemperature
	KindCondition
	KindItem
)

var kindNames = map[Kind]string{
	KindFull:        "full",
	KindTemperature: "temperature",
	KindCondition:   "condition",
	KindItem:        "item",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind accepts the names returned by Kind.String. Empty means full.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindFull, true
	}
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return KindFull, false
}

// Intent names used by the voice assistant front ends.
const (
	IntentForecast            = "GetWeatherForecast"
	IntentForecastCondition   = "GetWeatherForecastCondition"
	IntentForecastItem        = "GetWeatherForecastItem"
	IntentForecastTemperature = "GetWeatherForecastTemperature"
)

var intentKinds = map[string]Kind{
	IntentForecast:            KindFull,
	IntentForecastCondition:   KindCondition,
	IntentForecastItem:        KindItem,
	IntentForecastTemperature: KindTemperature,
}

func KindForIntent(name string) (Kind, bool) {
	k, ok := intentKinds[name]
	return k, ok
}

// IntentFor is the inverse of KindForIntent.
func IntentFor(k Kind) string {
	for name, kind := range intentKinds {
		if kind == k {
			return name
		}
	}
	return IntentForecast
}

type DateType int

const (
	DateFixed DateType = iota
	DateInterval
)

func (d DateType) String() string {
	if d == DateInterval {
		return "interval"
	}
	return "fixed"
}

// Grain is the temporal resolution of an answer.
type Grain int

const (
	GrainDay Grain = iota
	GrainHour
)

func (g Grain) String() string {
	switch g {
	case GrainDay:
		return "day"
	case GrainHour:
		return "hour"
	default:
		return "unsupported"
	}
}

// Requested is the condition, temperature class or item a question is about.
// Raw keeps the user input; the resolved field matching the request kind is
// set only when the locale knows the value.
type Requested struct {
	Raw         string
	Category    forecast.Category
	Temperature forecast.TemperatureClass
	Item        *locale.Item
}

// Request is a normalized weather question.
type Request struct {
	Kind     Kind
	DateType DateType
	Grain    Grain

	Date  forecast.Date
	Start *forecast.TimeOfDay
	End   *forecast.TimeOfDay

	// Today is the reference day the request was built against.
	Today forecast.Date

	Requested         Requested
	Location          forecast.Location
	LocationSpecified bool
	Detail            bool

	// DateSpecified and TimeSpecified are the user's own wording, already
	// formatted for output. Empty means the formatter renders Date/Start.
	DateSpecified string
	TimeSpecified string
}

// Validate rejects requests for the past and requests whose time fields do not
// fit their grain and date type.
func (r *Request) Validate(now time.Time) error {
	today := forecast.DateOf(now)
	clock := forecast.ClockOf(now)

	if r.Date.Before(today) {
		return &weathererr.PastRequestError{Date: r.Date.String()}
	}

	if r.Grain != GrainDay && r.Grain != GrainHour {
		return &weathererr.UnsupportedGrainError{Grain: r.Grain.String()}
	}
	if r.Grain == GrainHour && r.Start == nil {
		return &weathererr.TimeError{Input: "", Err: errMissingStart}
	}
	if r.DateType == DateInterval && (r.Start == nil || r.End == nil) {
		return &weathererr.TimeError{Input: "", Err: errMissingInterval}
	}
	if r.Date != today || r.Grain != GrainHour {
		return nil
	}

	switch r.DateType {
	case DateFixed:
		if r.Start.Hour() < clock.Hour() {
			return &weathererr.PastRequestError{Date: r.Date.String(), Time: r.Start.String()}
		}
	case DateInterval:
		if *r.End >= *r.Start && *r.End < clock {
			return &weathererr.PastRequestError{Date: r.Date.String(), Time: r.End.String()}
		}
	}
	return nil
}

// RequestedError reports an UnknownRequestedError when the value the request
// kind asks about is missing or unknown to the locale.
func (r *Request) RequestedError() error {
	switch r.Kind {
	case KindCondition:
		if r.Requested.Category == forecast.Unknown {
			return &weathererr.UnknownRequestedError{Kind: "condition", Value: r.Requested.Raw}
		}
	case KindItem:
		if r.Requested.Item == nil {
			return &weathererr.UnknownRequestedError{Kind: "item", Value: r.Requested.Raw}
		}
	case KindTemperature:
		if r.Requested.Raw != "" && r.Requested.Temperature == forecast.TemperatureUnknown {
			return &weathererr.UnknownRequestedError{Kind: "temperature", Value: r.Requested.Raw}
		}
	}
	return nil
}
