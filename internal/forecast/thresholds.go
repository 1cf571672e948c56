package forecast

import "strings"

// TemperatureClass is a temperature category a user can ask about.
type TemperatureClass int

const (
	TemperatureUnknown TemperatureClass = iota
	Warm
	Cold
)

func (t TemperatureClass) String() string {
	switch t {
	case Warm:
		return "warm"
	case Cold:
		return "cold"
	default:
		return "unknown"
	}
}

func ParseTemperatureClass(s string) TemperatureClass {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warm":
		return Warm
	case "cold":
		return Cold
	default:
		return TemperatureUnknown
	}
}

// Thresholds are the numeric cutoffs used to answer yes/no questions.
type Thresholds struct {
	WarmFrom  float64 // warm when the maximum reaches this
	ColdTo    float64 // cold when the minimum drops to this
	WindyFrom int     // Beaufort number considered windy
}

func DefaultThresholds() Thresholds {
	return Thresholds{WarmFrom: 20, ColdTo: 5, WindyFrom: 5}
}

// Matches reports whether s falls into class t.
func (th Thresholds) Matches(s *Stats, t TemperatureClass) bool {
	if !s.HasData() {
		return false
	}
	switch t {
	case Warm:
		return s.MaxTemperature >= th.WarmFrom
	case Cold:
		return s.MinTemperature <= th.ColdTo
	default:
		return false
	}
}

// IsWindy reports whether the strongest wind in s reaches WindyFrom.
func (th Thresholds) IsWindy(s *Stats) bool {
	w, ok := s.Winner(Wind)
	return ok && w.Severity >= th.WindyFrom
}
