// Package intent decodes voice assistant messages into request input.
package intent

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/vzahanych/weather-answer/internal/request"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

// Slot names as configured in the assistant's sentences.
const (
	SlotDay         = "when_day"
	SlotTime        = "when_time"
	SlotLocation    = "location"
	SlotCondition   = "condition"
	SlotItem        = "item"
	SlotTemperature = "temperature"
)

// ErrMalformed is returned for messages that cannot be decoded at all.
var ErrMalformed = errors.New("malformed intent message")

// Message is a decoded question together with the session it came from.
type Message struct {
	Input     request.Input
	Text      string
	SiteID    string
	SessionID string
}

// Decoder turns one raw front end message into a Message.
type Decoder interface {
	Decode(data []byte) (*Message, error)
	Name() string
}

var decoders = map[string]func() Decoder{
	"rhasspy_intent": func() Decoder { return Rhasspy{} },
	"nlu_intent":     func() Decoder { return NLU{} },
	"console_args":   func() Decoder { return Console{} },
}

// New returns the decoder registered under name.
func New(name string) (Decoder, error) {
	f, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown parser %q", weathererr.ErrConfig, name)
	}
	return f(), nil
}

func Names() []string {
	out := make([]string, 0, len(decoders))
	for name := range decoders {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SlotValue is a slot value that may arrive as a JSON string, number or
// boolean. null and missing values are empty.
type SlotValue string

func (v *SlotValue) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = SlotValue(x)
	case float64:
		*v = SlotValue(strconv.FormatFloat(x, 'f', -1, 64))
	case bool:
		*v = SlotValue(strconv.FormatBool(x))
	default:
		return fmt.Errorf("unsupported slot value %s", b)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("slottext", SlotText)
	return v
}

// SlotText rejects braces and control characters in slot values.
func SlotText(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r == '{' || r == '}' || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func fromSlots(intent string, slot func(name string) string) request.Input {
	return request.Input{
		Intent:      intent,
		Day:         slot(SlotDay),
		Time:        slot(SlotTime),
		Location:    slot(SlotLocation),
		Condition:   slot(SlotCondition),
		Item:        slot(SlotItem),
		Temperature: slot(SlotTemperature),
	}
}
