package forecast

import "strings"

// Category is the kind of a weather condition.
type Category int

const (
	Unknown Category = iota
	Rain
	Snow
	Clouds
	Mist
	Thunderstorm
	Clear
	Wind
	Sun   // clear sky during daylight
	Stars // clear sky at night
)

var categoryNames = map[Category]string{
	Unknown:      "unknown",
	Rain:         "rain",
	Snow:         "snow",
	Clouds:       "clouds",
	Mist:         "mist",
	Thunderstorm: "thunderstorm",
	Clear:        "clear",
	Wind:         "wind",
	Sun:          "sun",
	Stars:        "stars",
}

// Categories lists every known category.
var Categories = []Category{Rain, Snow, Clouds, Mist, Thunderstorm, Clear, Wind, Sun, Stars}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "unknown"
}

func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, n := range categoryNames {
		if n == s {
			return c
		}
	}
	return Unknown
}

// Describer supplies the locale text for a category at a severity.
type Describer interface {
	Describe(c Category, severity int) string
}

// Condition is one observed weather condition. Severity 0 is the mildest.
type Condition struct {
	Category    Category
	Severity    int
	Description string
	// Direction is the cardinal wind direction, only set for Wind.
	Direction string
}

// NewCondition uses the provider description when present and falls back to
// the describer otherwise.
func NewCondition(c Category, severity int, description string, d Describer) Condition {
	if description == "" && d != nil {
		description = d.Describe(c, severity)
	}
	return Condition{Category: c, Severity: severity, Description: description}
}

// Equal compares by category and severity only.
func (c Condition) Equal(o Condition) bool {
	return c.Category == o.Category && c.Severity == o.Severity
}

var beaufortLimits = []float64{0.5, 1.6, 3.4, 5.5, 8.0, 10.8, 13.9, 17.2, 20.8, 24.5, 28.5, 32.7}

// Beaufort converts a wind speed in m/s to the Beaufort number.
func Beaufort(speed float64) int {
	for i, limit := range beaufortLimits {
		if speed < limit {
			return i
		}
	}
	return len(beaufortLimits)
}

var cardinals = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Cardinal maps degrees to one of 16 compass points, "" when out of range.
func Cardinal(degrees float64) string {
	if degrees < 0 || degrees >= 360 {
		return ""
	}
	return cardinals[int(degrees/22.5+.5)%16]
}

// NewWindCondition derives a Wind condition from speed (m/s) and direction (degrees).
func NewWindCondition(speed, degrees float64, d Describer) Condition {
	c := NewCondition(Wind, Beaufort(speed), "", d)
	c.Direction = Cardinal(degrees)
	return c
}
