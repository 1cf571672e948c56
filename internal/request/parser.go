package request

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

var (
	errMissingStart    = errors.New("hour grain needs a start time")
	errMissingInterval = errors.New("interval needs start and end")
	errUnknownFormat   = errors.New("unknown format")
	errOutOfRange      = errors.New("out of range")
)

// Input is the slot set a front end extracted from one question.
type Input struct {
	Intent      string `json:"intent"`
	Day         string `json:"day,omitempty"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Item        string `json:"item,omitempty"`
	Temperature string `json:"temperature,omitempty"`
}

// Parser builds requests from slot input against one locale and zone.
type Parser struct {
	locale   *locale.Locale
	zone     *time.Location
	now      func() time.Time
	location forecast.Location
	detail   bool
}

type Option func(*Parser)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// WithDefaultLocation is used when the input names no location.
func WithDefaultLocation(l forecast.Location) Option {
	return func(p *Parser) {
		p.location = l
	}
}

func WithDetail(detail bool) Option {
	return func(p *Parser) {
		p.detail = detail
	}
}

func NewParser(l *locale.Locale, zone *time.Location, opts ...Option) *Parser {
	if zone == nil {
		zone = time.UTC
	}
	p := &Parser{
		locale: l,
		zone:   zone,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse resolves in into a validated request.
func (p *Parser) Parse(in Input) (*Request, error) {
	kind, ok := KindForIntent(in.Intent)
	if !ok {
		return nil, fmt.Errorf("intent %q: %w", in.Intent, weathererr.ErrUnknownIntent)
	}

	now := p.now().In(p.zone)
	today := forecast.DateOf(now)

	req := &Request{
		Kind:     kind,
		DateType: DateFixed,
		Grain:    GrainDay,
		Date:     today,
		Today:    today,
		Location: p.location,
		Detail:   p.detail,
	}

	if day := strings.TrimSpace(in.Day); day != "" {
		date, specified, err := p.parseDay(day, today)
		if err != nil {
			return nil, err
		}
		req.Date, req.DateSpecified = date, specified
	}

	if t := strings.TrimSpace(in.Time); t != "" {
		if err := p.parseTime(req, t, now); err != nil {
			return nil, err
		}
	}

	if loc := strings.TrimSpace(in.Location); loc != "" {
		req.Location = forecast.Location{City: loc}
		req.LocationSpecified = true
	}

	p.resolveRequested(req, in)

	if err := req.Validate(now); err != nil {
		return nil, err
	}
	return req, nil
}

func (p *Parser) parseDay(s string, today forecast.Date) (forecast.Date, string, error) {
	if nd, ok := p.locale.NamedDay(s); ok {
		if nd.Fixed() {
			return withYear(nd.Day, nd.Month, today), s, nil
		}
		return today.AddDays(nd.Offset), s, nil
	}

	if wd, ok := p.locale.Weekday(s); ok {
		target := (int(wd) + 6) % 7
		current := (int(today.Weekday()) + 6) % 7
		offset := target - current
		if current >= target {
			offset += 7
		}
		return today.AddDays(offset), p.locale.Format.UserDate(p.locale.WeekdayName(wd)), nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return forecast.Date{}, "", &weathererr.DateError{Input: s, Err: errUnknownFormat}
	}
	day, err := strconv.Atoi(strings.TrimSuffix(fields[0], "."))
	if err != nil {
		return forecast.Date{}, "", &weathererr.DateError{Input: s, Err: err}
	}
	if day < 1 || day > 31 {
		return forecast.Date{}, "", &weathererr.DateError{Input: s, Err: errOutOfRange}
	}
	month, ok := p.locale.Month(fields[1])
	if !ok {
		return forecast.Date{}, "", &weathererr.DateError{Input: s, Err: errUnknownFormat}
	}

	specified := p.locale.Format.UserDate(fmt.Sprintf("%d. %s", day, p.locale.MonthName(month)))
	return withYear(day, month, today), specified, nil
}

// withYear places day and month in the current year, or the next one when the
// date already passed. Invalid days roll over into the following month.
func withYear(day int, month time.Month, today forecast.Date) forecast.Date {
	d := forecast.NewDate(today.Year, month, day)
	if d.Before(today) {
		d = forecast.NewDate(today.Year+1, month, day)
	}
	return d
}

func (p *Parser) parseTime(req *Request, s string, now time.Time) error {
	req.Grain = GrainHour

	if nt, ok := p.locale.NamedTime(s); ok {
		switch {
		case nt.Now:
			start := forecast.ClockOf(now.Truncate(time.Minute))
			req.Start = &start
		case nt.Interval:
			start, end := nt.Start, nt.End
			req.DateType = DateInterval
			req.Start, req.End = &start, &end
		default:
			setPoint(req, nt.Start)
		}
		req.TimeSpecified = s
		return nil
	}

	var hour, minute int
	hasMinute := strings.Contains(s, " ")
	if hasMinute {
		if _, err := fmt.Sscanf(s, "%d %d", &hour, &minute); err != nil {
			return &weathererr.TimeError{Input: s, Err: err}
		}
	} else {
		h, err := strconv.Atoi(s)
		if err != nil {
			return &weathererr.TimeError{Input: s, Err: errUnknownFormat}
		}
		hour = h
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return &weathererr.TimeError{Input: s, Err: errOutOfRange}
	}

	start := InferAfternoon(forecast.Clock(hour, minute, 0), req.Date, now)
	setPoint(req, start)
	req.TimeSpecified = p.locale.Format.UserTime(start.Hour(), start.Minute(), hasMinute)
	return nil
}

// InferAfternoon treats a morning time on date that already passed today as
// the same time after noon. Midnight is left alone.
func InferAfternoon(t forecast.TimeOfDay, date forecast.Date, now time.Time) forecast.TimeOfDay {
	noon := forecast.Clock(12, 0, 0)
	if date == forecast.DateOf(now) && forecast.ClockOf(now) > t && t < noon && t != forecast.StartOfDay {
		return t.Add(12 * time.Hour)
	}
	return t
}

// setPoint stores a point in time. Midnight belongs to the following day.
func setPoint(req *Request, t forecast.TimeOfDay) {
	if t == forecast.StartOfDay {
		req.Date = req.Date.AddDays(1)
	}
	req.Start = &t
}

func (p *Parser) resolveRequested(req *Request, in Input) {
	switch req.Kind {
	case KindCondition:
		req.Requested.Raw = strings.TrimSpace(in.Condition)
		if c, ok := p.locale.Condition(req.Requested.Raw); ok {
			req.Requested.Category = c
		}
	case KindTemperature:
		req.Requested.Raw = strings.TrimSpace(in.Temperature)
		if t, ok := p.locale.Temperature(req.Requested.Raw); ok {
			req.Requested.Temperature = t
		}
	case KindItem:
		req.Requested.Raw = strings.TrimSpace(in.Item)
		if it, ok := p.locale.Items.Lookup(req.Requested.Raw); ok {
			req.Requested.Item = &it
		}
	}
}
