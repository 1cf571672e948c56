package forecast

// Timeline holds the samples of one forecast fetch grouped by date. It is
// built once and only read afterwards.
type Timeline struct {
	location Location
	dates    []Date
	samples  map[Date][]Sample
}

func NewTimeline(loc Location) *Timeline {
	return &Timeline{
		location: loc,
		samples:  make(map[Date][]Sample),
	}
}

// Add appends s to the samples of date. Samples of a date are expected in
// non-decreasing time order.
func (t *Timeline) Add(date Date, s Sample) {
	if _, ok := t.samples[date]; !ok {
		t.dates = append(t.dates, date)
	}
	t.samples[date] = append(t.samples[date], s)
}

func (t *Timeline) Location() Location { return t.location }

// Dates returns the dates in the order they were first added.
func (t *Timeline) Dates() []Date {
	out := make([]Date, len(t.dates))
	copy(out, t.dates)
	return out
}

func (t *Timeline) HasDate(date Date) bool {
	return len(t.samples[date]) > 0
}

// Last returns the latest date with samples.
func (t *Timeline) Last() (Date, bool) {
	var last Date
	found := false
	for _, d := range t.dates {
		if !found || d.After(last) {
			last, found = d, true
		}
	}
	return last, found
}

func (t *Timeline) SamplesForDate(date Date) []Sample {
	return t.samples[date]
}

// SamplesInInterval returns the samples of date that either start inside
// [start, end) or whose own coverage contains start.
func (t *Timeline) SamplesInInterval(date Date, start, end TimeOfDay) []Sample {
	var out []Sample
	for _, s := range t.samples[date] {
		if (start <= s.Time && s.Time < end) || (s.Time <= start && start <= s.End) {
			out = append(out, s)
		}
	}
	return out
}
