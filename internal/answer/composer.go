package answer

import (
	"errors"
	"strings"

	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/request"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

// Composer renders answers from aggregated forecast windows.
type Composer struct {
	locale               *locale.Locale
	thresholds           forecast.Thresholds
	pick                 func(n int) int
	cloudsClearExclusive bool
}

type Option func(*Composer)

// WithPicker replaces the random phrase choice.
func WithPicker(pick func(n int) int) Option {
	return func(c *Composer) {
		c.pick = pick
	}
}

func WithCloudsClearExclusive(exclusive bool) Option {
	return func(c *Composer) {
		c.cloudsClearExclusive = exclusive
	}
}

func New(l *locale.Locale, th forecast.Thresholds, opts ...Option) *Composer {
	c := &Composer{
		locale:               l,
		thresholds:           th,
		cloudsClearExclusive: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// span is the part of a request one sentence talks about. A nil start is the
// whole day, a nil end a point in time.
type span struct {
	date  forecast.Date
	start *forecast.TimeOfDay
	end   *forecast.TimeOfDay
}

type fields struct {
	when        string
	where       string
	temperature string
	weather     string
	article     string
	noun        string
	verb        string
}

// Compose answers req from the forecast behind r. Window errors are returned
// unchanged so the caller can pick the matching error sentence.
func (c *Composer) Compose(req *request.Request, r *forecast.Resolver) (string, error) {
	if req.Grain != request.GrainDay && req.Grain != request.GrainHour {
		return "", &weathererr.UnsupportedGrainError{Grain: req.Grain.String()}
	}

	if req.Detail && req.Kind != request.KindItem && req.Grain == request.GrainDay && req.DateType == request.DateFixed {
		text, ok, err := c.composeDetail(req, r)
		if err != nil {
			return "", err
		}
		if ok {
			return normalize(text), nil
		}
	}

	stats, sp, err := c.window(req, r)
	if err != nil {
		return "", err
	}

	f := c.statsFields(stats)
	f.when, f.where = c.when(req), c.where(req)

	var text string
	switch req.Kind {
	case request.KindFull:
		text = c.full(stats, f)
	case request.KindTemperature:
		text = c.temperature(req, stats, f)
	case request.KindCondition:
		text = c.condition(req, r, stats, sp, f)
	case request.KindItem:
		text = c.item(req, stats, f)
	}
	return normalize(text), nil
}

func (c *Composer) window(req *request.Request, r *forecast.Resolver) (*forecast.Stats, span, error) {
	sp := span{date: req.Date, start: req.Start, end: req.End}

	var (
		stats *forecast.Stats
		err   error
	)
	switch {
	case req.DateType == request.DateInterval:
		stats, err = r.ForInterval(req.Date, *req.Start, *req.End)
	case req.Grain == request.GrainDay:
		sp.start, sp.end = nil, nil
		stats, err = r.ForDay(req.Date)
	default:
		sp.end = nil
		stats, err = r.AtTime(req.Date, *req.Start)
	}
	return stats, sp, err
}

// composeDetail answers a whole day as one sentence per day part with data.
// ok is false when no day part has data left.
func (c *Composer) composeDetail(req *request.Request, r *forecast.Resolver) (string, bool, error) {
	var parts []string
	for _, p := range forecast.DayParts() {
		stats, err := r.ForPeriod(req.Date, p)
		if errors.Is(err, weathererr.ErrNoData) {
			continue
		}
		if err != nil {
			return "", false, err
		}

		f := c.statsFields(stats)
		f.when = c.locale.DayParts[p.Name]
		start, end := p.Start, p.End
		sp := span{date: req.Date, start: &start, end: &end}

		switch req.Kind {
		case request.KindFull:
			parts = append(parts, c.full(stats, f))
		case request.KindTemperature:
			parts = append(parts, c.temperature(req, stats, f))
		case request.KindCondition:
			parts = append(parts, c.condition(req, r, stats, sp, f))
		}
	}
	if len(parts) == 0 {
		return "", false, nil
	}

	intro := c.locale.ConditionIntro
	if req.Kind == request.KindTemperature {
		intro = c.locale.TemperatureIntro
	}
	head := c.render(intro.Pick(c.pick), fields{when: c.when(req), where: c.where(req)})
	return head + strings.Join(parts, " "), true, nil
}

func (c *Composer) full(stats *forecast.Stats, f fields) string {
	weather := c.render(c.locale.ConditionGeneral.Pick(c.pick), f)
	f.when, f.where = "", ""
	return weather + " " + c.render(c.locale.TemperatureGeneral.Pick(c.pick), f)
}

func (c *Composer) temperature(req *request.Request, stats *forecast.Stats, f fields) string {
	answer, ok := c.locale.TemperatureAnswers[req.Requested.Temperature]
	if !ok {
		return c.render(c.locale.TemperatureGeneral.Pick(c.pick), f)
	}
	return c.render(c.yesNo(answer, c.thresholds.Matches(stats, req.Requested.Temperature)), f)
}

func (c *Composer) condition(req *request.Request, r *forecast.Resolver, stats *forecast.Stats, sp span, f fields) string {
	var unknown *weathererr.UnknownRequestedError
	if errors.As(req.RequestedError(), &unknown) {
		return c.render(c.locale.UnknownCondition.Pick(c.pick), f)
	}

	category := req.Requested.Category
	answer, ok := c.locale.ConditionAnswers[category]
	if !ok {
		return c.render(c.locale.UnknownCondition.Pick(c.pick), f)
	}

	switch category {
	case forecast.Sun:
		if r.Timeline().Location().Sun == nil {
			return c.render(c.yesNo(answer, stats.IsWeatherChance(forecast.Sun)), f)
		}
		day, err := r.DuringDaytime(sp.date, sp.start, sp.end)
		if err != nil {
			if len(answer.Night) > 0 {
				return c.render(answer.Night.Pick(c.pick), f)
			}
			return c.render(c.yesNo(answer, false), f)
		}
		return c.render(c.yesNo(answer, day.IsWeatherChance(forecast.Clear)), f)
	case forecast.Stars:
		if r.Timeline().Location().Sun == nil {
			return c.render(c.yesNo(answer, stats.IsWeatherChance(forecast.Stars)), f)
		}
		night, err := r.DuringNighttime(sp.date, sp.start, sp.end)
		return c.render(c.yesNo(answer, err == nil && night.IsWeatherChance(forecast.Clear)), f)
	case forecast.Wind:
		return c.render(c.yesNo(answer, c.thresholds.IsWindy(stats)), f)
	default:
		return c.render(c.yesNo(answer, stats.IsWeatherChance(category)), f)
	}
}

func (c *Composer) item(req *request.Request, stats *forecast.Stats, f fields) string {
	it := req.Requested.Item
	if it == nil {
		f.noun = req.Requested.Raw
		return c.render(c.locale.UnknownItem.Pick(c.pick), f)
	}

	f.article, f.noun, f.verb = it.Article, it.Name, c.locale.Verb(*it)

	var tpl string
	if c.needed(*it, stats) {
		tpl = c.locale.Affirmative.Pick(c.pick) + ", " + c.locale.ItemNeeded.Pick(c.pick)
	} else {
		tpl = c.locale.Negative.Pick(c.pick) + ", " + c.locale.ItemNotNeeded.Pick(c.pick)
	}
	tpl += ". " + c.locale.Weather.Pick(c.pick)
	return c.render(tpl, f)
}

// needed reports whether any category or temperature class of it shows up in
// stats.
func (c *Composer) needed(it locale.Item, stats *forecast.Stats) bool {
	for _, cat := range it.Conditions {
		if cat == forecast.Wind {
			if c.thresholds.IsWindy(stats) {
				return true
			}
			continue
		}
		if stats.IsWeatherChance(cat) {
			return true
		}
	}
	for _, t := range it.Temperatures {
		if c.thresholds.Matches(stats, t) {
			return true
		}
	}
	return false
}

func (c *Composer) yesNo(a locale.Answer, yes bool) string {
	if yes {
		return a.True.Pick(c.pick)
	}
	return a.False.Pick(c.pick)
}

func (c *Composer) statsFields(stats *forecast.Stats) fields {
	return fields{
		temperature: c.locale.Format.Temperature(stats.MinTemperature, stats.MaxTemperature),
		weather:     c.locale.Format.Combine(stats.OutputConditions(c.cloudsClearExclusive)),
	}
}

func (c *Composer) when(req *request.Request) string {
	date := req.DateSpecified
	if date == "" {
		date = c.locale.Format.Date(req.Date, req.Today)
	}
	if req.Grain != request.GrainHour || req.Start == nil {
		return date
	}
	t := req.TimeSpecified
	if t == "" {
		t = c.locale.Format.Time(*req.Start)
	}
	return date + " " + t
}

func (c *Composer) where(req *request.Request) string {
	if !req.LocationSpecified {
		return ""
	}
	return c.locale.Format.Location(req.Location.Name())
}

// render substitutes every placeholder in one pass, so values are never
// scanned for placeholders themselves.
func (c *Composer) render(tpl string, f fields) string {
	return strings.NewReplacer(
		"{when}", f.when,
		"{where}", f.where,
		"{temperature}", f.temperature,
		"{weather}", f.weather,
		"{article}", f.article,
		"{noun}", f.noun,
		"{item}", strings.TrimSpace(f.article+" "+f.noun),
		"{verb}", f.verb,
	).Replace(tpl)
}
