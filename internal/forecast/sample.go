package forecast

import "time"

// WindReading is the wind a provider reported for one bucket.
type WindReading struct {
	Speed   float64 // m/s
	Degrees float64
}

// Observation is one normalized provider reading before derivation.
type Observation struct {
	Date        Date
	Time        TimeOfDay
	Temperature float64
	Pressure    float64
	Humidity    float64
	Condition   Condition
	Wind        *WindReading
}

// Sample is an observation together with the conditions derived from it and
// the span of the day it covers.
type Sample struct {
	Date        Date
	Time        TimeOfDay
	End         TimeOfDay
	Temperature float64
	Pressure    float64
	Humidity    float64
	Primary     Condition
	Secondary   []Condition
}

// NewSample derives wind and sun/stars conditions from obs. width is the
// provider reporting granularity.
func NewSample(obs Observation, width time.Duration, loc Location, d Describer) Sample {
	s := Sample{
		Date:        obs.Date,
		Time:        obs.Time,
		End:         sampleEnd(obs.Time, width),
		Temperature: obs.Temperature,
		Pressure:    obs.Pressure,
		Humidity:    obs.Humidity,
		Primary:     obs.Condition,
	}

	if obs.Wind != nil {
		s.Secondary = append(s.Secondary, NewWindCondition(obs.Wind.Speed, obs.Wind.Degrees, d))
	}

	if obs.Condition.Category == Clear && loc.Sun != nil {
		if loc.Sun.IsDay(obs.Time) {
			s.Secondary = append(s.Secondary, NewCondition(Sun, 0, "", d))
		}
		if loc.Sun.IsNight(obs.Time) {
			s.Secondary = append(s.Secondary, NewCondition(Stars, 0, "", d))
		}
	}

	return s
}

func sampleEnd(start TimeOfDay, width time.Duration) TimeOfDay {
	if start.Add(width) >= TimeOfDay(24*time.Hour) {
		return EndOfDay
	}
	return start.Add(width - time.Microsecond)
}

// Conditions returns the primary condition followed by the secondary ones.
func (s Sample) Conditions() []Condition {
	out := make([]Condition, 0, 1+len(s.Secondary))
	out = append(out, s.Primary)
	return append(out, s.Secondary...)
}
