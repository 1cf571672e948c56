package forecast

import (
	"time"

	"github.com/vzahanych/weather-answer/internal/weathererr"
)

// Period is a fixed clock range of a day. A period whose End is before its
// Start reaches into the following day.
type Period struct {
	Name  string
	Start TimeOfDay
	End   TimeOfDay
}

var (
	PeriodMorning = Period{Name: "morning", Start: Clock(6, 0, 0), End: Clock(11, 59, 0)}
	PeriodNoon    = Period{Name: "noon", Start: Clock(12, 0, 0), End: Clock(16, 59, 0)}
	PeriodEvening = Period{Name: "evening", Start: Clock(17, 0, 0), End: Clock(20, 59, 0)}
	PeriodNight   = Period{Name: "night", Start: Clock(21, 0, 0), End: Clock(5, 59, 0)}
)

// DayParts are the sub-periods used for detailed whole-day answers.
func DayParts() []Period {
	return []Period{PeriodMorning, PeriodNoon, PeriodEvening}
}

// Resolver turns windows into aggregated statistics over a timeline.
type Resolver struct {
	timeline *Timeline
	loc      *time.Location
	now      func() time.Time
}

type ResolverOption func(*Resolver)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) {
		r.now = now
	}
}

func NewResolver(tl *Timeline, loc *time.Location, opts ...ResolverOption) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	r := &Resolver{
		timeline: tl,
		loc:      loc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) Timeline() *Timeline { return r.timeline }

// ForInterval aggregates the samples of [start, end] on date. When end is
// before start the window continues on the next day.
func (r *Resolver) ForInterval(date Date, start, end TimeOfDay) (*Stats, error) {
	if end >= start {
		return r.collect(date, start, end, window{date, start, end})
	}
	return r.collect(date, start, end,
		window{date, start, EndOfDay},
		window{date.AddDays(1), StartOfDay, end},
	)
}

func (r *Resolver) ForDay(date Date) (*Stats, error) {
	return r.ForInterval(date, StartOfDay, EndOfDay)
}

// AtTime aggregates the samples covering t.
func (r *Resolver) AtTime(date Date, t TimeOfDay) (*Stats, error) {
	return r.ForInterval(date, t, t)
}

// ForPeriod aggregates p on date. Same-day periods that already ended today
// yield no data.
func (r *Resolver) ForPeriod(date Date, p Period) (*Stats, error) {
	if p.End >= p.Start {
		now := r.now().In(r.loc)
		if date == DateOf(now) && ClockOf(now) > p.End {
			return nil, r.noData(date, p.Start, p.End)
		}
	}
	return r.ForInterval(date, p.Start, p.End)
}

func (r *Resolver) Morning(date Date) (*Stats, error) { return r.ForPeriod(date, PeriodMorning) }

func (r *Resolver) Noon(date Date) (*Stats, error) { return r.ForPeriod(date, PeriodNoon) }

func (r *Resolver) Evening(date Date) (*Stats, error) { return r.ForPeriod(date, PeriodEvening) }

func (r *Resolver) Night(date Date) (*Stats, error) { return r.ForPeriod(date, PeriodNight) }

// DuringDaytime aggregates the part of the requested range that lies between
// sunrise and sunset. A nil start means the whole day; a nil end with a start
// means a point in time.
func (r *Resolver) DuringDaytime(date Date, start, end *TimeOfDay) (*Stats, error) {
	sun := r.timeline.Location().Sun
	if sun == nil {
		return nil, r.noData(date, StartOfDay, EndOfDay)
	}
	if start == nil {
		return r.ForInterval(date, sun.Sunrise, sun.Sunset)
	}
	day := func(Date) []window { return []window{{Start: sun.Sunrise, End: sun.Sunset}} }
	return r.clipped(date, *start, end, day)
}

// DuringNighttime is the counterpart of DuringDaytime for sunset to sunrise.
func (r *Resolver) DuringNighttime(date Date, start, end *TimeOfDay) (*Stats, error) {
	sun := r.timeline.Location().Sun
	if sun == nil {
		return nil, r.noData(date, StartOfDay, EndOfDay)
	}
	if start == nil {
		return r.ForInterval(date, sun.Sunset, sun.Sunrise)
	}
	night := func(Date) []window {
		return []window{{Start: StartOfDay, End: sun.Sunrise}, {Start: sun.Sunset, End: EndOfDay}}
	}
	return r.clipped(date, *start, end, night)
}

type window struct {
	Date  Date
	Start TimeOfDay
	End   TimeOfDay
}

func (r *Resolver) clipped(date Date, start TimeOfDay, end *TimeOfDay, allowed func(Date) []window) (*Stats, error) {
	var requested []window
	switch {
	case end == nil:
		requested = []window{{date, start, start}}
	case *end >= start:
		requested = []window{{date, start, *end}}
	default:
		requested = []window{{date, start, EndOfDay}, {date.AddDays(1), StartOfDay, *end}}
	}

	var windows []window
	for _, w := range requested {
		for _, a := range allowed(w.Date) {
			lo, hi := max(w.Start, a.Start), min(w.End, a.End)
			if lo <= hi {
				windows = append(windows, window{w.Date, lo, hi})
			}
		}
	}

	last := start
	if end != nil {
		last = *end
	}
	return r.collect(date, start, last, windows...)
}

func (r *Resolver) collect(date Date, start, end TimeOfDay, windows ...window) (*Stats, error) {
	stats := &Stats{}
	for _, w := range windows {
		stats.Add(r.timeline.SamplesInInterval(w.Date, w.Start, w.End)...)
	}
	if !stats.HasData() {
		return nil, r.noData(date, start, end)
	}
	return stats, nil
}

func (r *Resolver) noData(date Date, start, end TimeOfDay) error {
	last, ok := r.timeline.Last()
	return &weathererr.NoDataError{
		Date:   date.String(),
		Start:  start.String(),
		End:    end.String(),
		Future: ok && date.After(last),
	}
}
