package forecast

// Stats summarizes the samples of one window. The zero value is an empty
// aggregate; use HasData to tell it apart from real readings.
type Stats struct {
	samples int

	MinTemperature float64
	MaxTemperature float64
	MinPressure    float64
	MaxPressure    float64
	MinHumidity    float64
	MaxHumidity    float64

	winners []Condition
	counts  map[Category]int
}

func NewStats(samples ...Sample) *Stats {
	s := &Stats{}
	s.Add(samples...)
	return s
}

// Add merges samples into the aggregate.
func (s *Stats) Add(samples ...Sample) {
	for _, sample := range samples {
		s.addSample(sample)
	}
}

func (s *Stats) addSample(sample Sample) {
	if s.samples == 0 {
		s.MinTemperature, s.MaxTemperature = sample.Temperature, sample.Temperature
		s.MinPressure, s.MaxPressure = sample.Pressure, sample.Pressure
		s.MinHumidity, s.MaxHumidity = sample.Humidity, sample.Humidity
	} else {
		s.MinTemperature = min(s.MinTemperature, sample.Temperature)
		s.MaxTemperature = max(s.MaxTemperature, sample.Temperature)
		s.MinPressure = min(s.MinPressure, sample.Pressure)
		s.MaxPressure = max(s.MaxPressure, sample.Pressure)
		s.MinHumidity = min(s.MinHumidity, sample.Humidity)
		s.MaxHumidity = max(s.MaxHumidity, sample.Humidity)
	}
	s.samples++

	if s.counts == nil {
		s.counts = make(map[Category]int)
	}
	for _, c := range sample.Conditions() {
		s.counts[c.Category]++
		s.addCondition(c)
	}
}

func (s *Stats) addCondition(c Condition) {
	for i, w := range s.winners {
		if w.Category == c.Category {
			if c.Severity > w.Severity {
				s.winners[i] = c
			}
			return
		}
	}
	s.winners = append(s.winners, c)
}

func (s *Stats) HasData() bool { return s != nil && s.samples > 0 }

func (s *Stats) Samples() int { return s.samples }

func (s *Stats) IsWeatherChance(c Category) bool { return s.counts[c] > 0 }

func (s *Stats) Count(c Category) int { return s.counts[c] }

// Winner returns the most severe condition seen for c.
func (s *Stats) Winner(c Category) (Condition, bool) {
	for _, w := range s.winners {
		if w.Category == c {
			return w, true
		}
	}
	return Condition{}, false
}

// WinningConditions returns one condition per category in first-seen order.
func (s *Stats) WinningConditions() []Condition {
	out := make([]Condition, len(s.winners))
	copy(out, s.winners)
	return out
}

// OutputConditions returns the descriptions to mention in an answer. With
// cloudsClearExclusive, Clouds is kept when seen at least as often as Clear
// and Clear only when seen more often. Empty descriptions are left out.
func (s *Stats) OutputConditions(cloudsClearExclusive bool) []string {
	if len(s.winners) == 1 {
		if s.winners[0].Description == "" {
			return nil
		}
		return []string{s.winners[0].Description}
	}

	var out []string
	for _, w := range s.winners {
		if cloudsClearExclusive {
			switch w.Category {
			case Clouds:
				if s.counts[Clouds] < s.counts[Clear] {
					continue
				}
			case Clear:
				if s.counts[Clear] <= s.counts[Clouds] {
					continue
				}
			}
		}
		if w.Description != "" {
			out = append(out, w.Description)
		}
	}
	return out
}
