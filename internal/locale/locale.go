package locale

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

// Phrases are interchangeable variants of one sentence.
type Phrases []string

// Pick returns one variant. pick receives the number of variants and returns
// an index; nil picks at random.
func (p Phrases) Pick(pick func(n int) int) string {
	switch len(p) {
	case 0:
		return ""
	case 1:
		return p[0]
	}
	if pick == nil {
		return p[rand.IntN(len(p))]
	}
	i := pick(len(p))
	if i < 0 || i >= len(p) {
		i = 0
	}
	return p[i]
}

// Answer holds the phrases for a yes/no question. Night is only used for Sun.
type Answer struct {
	True  Phrases
	False Phrases
	Night Phrases
}

// NamedTime is a vocabulary entry resolving to a point or an interval.
type NamedTime struct {
	Start    forecast.TimeOfDay
	End      forecast.TimeOfDay
	Interval bool
	// Now resolves to the current clock time.
	Now bool
}

func Point(t forecast.TimeOfDay) NamedTime { return NamedTime{Start: t} }

func Span(start, end forecast.TimeOfDay) NamedTime {
	return NamedTime{Start: start, End: end, Interval: true}
}

// NamedDay resolves to an offset from today or to a fixed day of the year.
type NamedDay struct {
	Offset int
	Month  time.Month
	Day    int
}

func (n NamedDay) Fixed() bool { return n.Month != 0 }

// Formatter renders structured request parts as locale text.
type Formatter interface {
	Location(name string) string
	Date(date, today forecast.Date) string
	Time(t forecast.TimeOfDay) string
	UserDate(s string) string
	UserTime(hour, minute int, hasMinute bool) string
	Temperature(low, high float64) string
	Combine(parts []string) string
}

// Locale is an immutable bundle of vocabularies and phrase tables.
type Locale struct {
	Name     string
	Language string

	Weekdays [7]string // Monday first
	Months   [12]string

	NamedDays         map[string]NamedDay
	NamedDaySynonyms  map[string]string
	NamedTimes        map[string]NamedTime
	NamedTimeSynonyms map[string]string

	Conditions          map[string]forecast.Category
	ConditionSynonyms   map[string]string
	Temperatures        map[string]forecast.TemperatureClass
	TemperatureSynonyms map[string]string

	// Descriptions are indexed by severity.
	Descriptions map[forecast.Category][]string

	Errors map[weathererr.Code]Phrases

	// DayParts names the detail sub-periods by forecast.Period name.
	DayParts map[string]string

	TemperatureIntro   Phrases
	TemperatureGeneral Phrases
	TemperatureAnswers map[forecast.TemperatureClass]Answer

	ConditionIntro   Phrases
	ConditionGeneral Phrases
	ConditionAnswers map[forecast.Category]Answer
	UnknownCondition Phrases

	Affirmative   Phrases
	Negative      Phrases
	ItemNeeded    Phrases
	ItemNotNeeded Phrases
	UnknownItem   Phrases
	Weather       Phrases

	Singular string
	Plural   string

	Items  *ItemCatalog
	Format Formatter
}

// Describe implements forecast.Describer.
func (l *Locale) Describe(c forecast.Category, severity int) string {
	d := l.Descriptions[c]
	if severity < 0 || severity >= len(d) {
		return ""
	}
	return d[severity]
}

// Verb returns the verb agreeing with the item's number.
func (l *Locale) Verb(it Item) string {
	if it.Plural {
		return l.Plural
	}
	return l.Singular
}

// ErrorPhrase returns the sentence for code, falling back to the general error.
func (l *Locale) ErrorPhrase(code weathererr.Code, pick func(int) int) string {
	if p, ok := l.Errors[code]; ok && len(p) > 0 {
		return p.Pick(pick)
	}
	return l.Errors[weathererr.CodeGeneral].Pick(pick)
}

func lookup[V any](table map[string]V, synonyms map[string]string, s string) (V, string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for name, canonical := range synonyms {
		if strings.ToLower(name) == s {
			s = strings.ToLower(canonical)
			break
		}
	}
	for name, v := range table {
		if strings.ToLower(name) == s {
			return v, name, true
		}
	}
	var zero V
	return zero, "", false
}

func (l *Locale) NamedDay(s string) (NamedDay, bool) {
	v, _, ok := lookup(l.NamedDays, l.NamedDaySynonyms, s)
	return v, ok
}

func (l *Locale) NamedTime(s string) (NamedTime, bool) {
	v, _, ok := lookup(l.NamedTimes, l.NamedTimeSynonyms, s)
	return v, ok
}

func (l *Locale) Condition(s string) (forecast.Category, bool) {
	v, _, ok := lookup(l.Conditions, l.ConditionSynonyms, s)
	return v, ok
}

func (l *Locale) Temperature(s string) (forecast.TemperatureClass, bool) {
	v, _, ok := lookup(l.Temperatures, l.TemperatureSynonyms, s)
	return v, ok
}

func (l *Locale) Weekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range l.Weekdays {
		if strings.ToLower(name) == s {
			return time.Weekday((i + 1) % 7), true
		}
	}
	return 0, false
}

// Month accepts a month name or its number.
func (l *Locale) Month(s string) (time.Month, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range l.Months {
		if strings.ToLower(name) == s {
			return time.Month(i + 1), true
		}
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && n >= 1 && n <= 12 {
		return time.Month(n), true
	}
	return 0, false
}

func (l *Locale) WeekdayName(d time.Weekday) string {
	return l.Weekdays[(int(d)+6)%7]
}

func (l *Locale) MonthName(m time.Month) string {
	return l.Months[m-1]
}

// Slots returns the vocabularies a voice assistant needs, keyed by slot file name.
func (l *Locale) Slots() map[string][]string {
	return map[string][]string{
		"conditions":   keys(l.Conditions, l.ConditionSynonyms),
		"items":        l.Items.Names(),
		"named_days":   keys(l.NamedDays, l.NamedDaySynonyms),
		"named_times":  keys(l.NamedTimes, l.NamedTimeSynonyms),
		"temperatures": keys(l.Temperatures, l.TemperatureSynonyms),
	}
}

func keys[V any](table map[string]V, synonyms map[string]string) []string {
	out := make([]string, 0, len(table)+len(synonyms))
	for k := range table {
		out = append(out, k)
	}
	for k := range synonyms {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var registry = map[string]func() *Locale{
	"english": English,
	"en":      English,
	"german":  German,
	"de":      German,
}

// Lookup returns a fresh locale by name or language code.
func Lookup(name string) (*Locale, error) {
	factory, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown locale %q: %w", name, weathererr.ErrConfig)
	}
	return factory(), nil
}

func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
