package intent

import (
	"github.com/vzahanych/weather-answer/internal/request"
)

// Args are command line style inputs. Without an explicit intent the kind
// follows from the first of condition, item and temperature that is set.
type Args struct {
	Intent      string `json:"intent" form:"intent" validate:"omitempty,oneof=GetWeatherForecast GetWeatherForecastCondition GetWeatherForecastItem GetWeatherForecastTemperature"`
	Kind        string `json:"kind" form:"kind" validate:"omitempty,oneof=full temperature condition item"`
	Day         string `json:"day" form:"day" validate:"max=64,slottext"`
	Time        string `json:"time" form:"time" validate:"max=32,slottext"`
	Location    string `json:"location" form:"location" validate:"max=128,slottext"`
	Condition   string `json:"condition" form:"condition" validate:"max=64,slottext"`
	Item        string `json:"item" form:"item" validate:"max=64,slottext"`
	Temperature string `json:"temperature" form:"temperature" validate:"max=64,slottext"`
}

// Input resolves the intent and copies the slots.
func (a Args) Input() request.Input {
	return request.Input{
		Intent:      a.intent(),
		Day:         a.Day,
		Time:        a.Time,
		Location:    a.Location,
		Condition:   a.Condition,
		Item:        a.Item,
		Temperature: a.Temperature,
	}
}

func (a Args) intent() string {
	if a.Intent != "" {
		return a.Intent
	}
	if a.Kind != "" {
		if k, ok := request.ParseKind(a.Kind); ok {
			return request.IntentFor(k)
		}
	}
	switch {
	case a.Condition != "":
		return request.IntentForecastCondition
	case a.Item != "":
		return request.IntentForecastItem
	case a.Temperature != "":
		return request.IntentForecastTemperature
	}
	return request.IntentForecast
}

// Validate checks field lengths and names.
func (a Args) Validate() error {
	return validate.Struct(a)
}

// Console reads Args encoded as a JSON object.
type Console struct{}

func (Console) Name() string { return "console_args" }

func (Console) Decode(data []byte) (*Message, error) {
	var a Args
	if err := decode(data, &a); err != nil {
		return nil, err
	}
	return &Message{Input: a.Input()}, nil
}
