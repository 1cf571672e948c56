package locale

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vzahanych/weather-answer/internal/forecast"
)

// RoundHalfUp rounds halves towards positive infinity.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func combine(parts []string, and string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + and + parts[len(parts)-1]
}

// weekdayOffset is the Monday-based weekday of today plus the day distance.
func weekdayOffset(date, today forecast.Date) int {
	return (int(today.Weekday())+6)%7 + date.DaysSince(today)
}

type englishFormat struct {
	weekdays [7]string
	months   [12]string
}

func (f englishFormat) Location(name string) string { return "in " + Capitalize(name) }

func (f englishFormat) Date(date, today forecast.Date) string {
	switch diff := date.DaysSince(today); {
	case diff == 0:
		return "today"
	case diff == 1:
		return "tomorrow"
	}
	weekday := f.weekdays[(int(date.Weekday())+6)%7]
	switch offset := weekdayOffset(date, today); {
	case offset < 7:
		return "on " + weekday
	case offset < 14:
		return weekday + " next week"
	}
	return fmt.Sprintf("on %d. %s", date.Day, f.months[date.Month-1])
}

func (f englishFormat) Time(t forecast.TimeOfDay) string {
	return fmt.Sprintf("at %02d:%02d o'clock", t.Hour(), t.Minute())
}

func (f englishFormat) UserDate(s string) string { return "on " + s }

func (f englishFormat) UserTime(hour, minute int, hasMinute bool) string {
	if !hasMinute {
		suffix := "am"
		if hour >= 12 {
			suffix = "pm"
		}
		h := hour % 12
		if h == 0 {
			h = 12
		}
		return fmt.Sprintf("at %d o'clock %s", h, suffix)
	}
	return fmt.Sprintf("at %d %02d", hour, minute)
}

func (f englishFormat) Temperature(low, high float64) string {
	lo, hi := RoundHalfUp(low), RoundHalfUp(high)
	if lo == hi {
		return fmt.Sprintf("%d degrees", lo)
	}
	return fmt.Sprintf("between %d and %d degrees", lo, hi)
}

func (f englishFormat) Combine(parts []string) string { return combine(parts, " and ") }

type germanFormat struct {
	weekdays [7]string
	months   [12]string
}

func (f germanFormat) Location(name string) string { return "in " + Capitalize(name) }

func (f germanFormat) Date(date, today forecast.Date) string {
	switch diff := date.DaysSince(today); {
	case diff == 0:
		return "heute"
	case diff == 1:
		return "morgen"
	}
	weekday := f.weekdays[(int(date.Weekday())+6)%7]
	switch offset := weekdayOffset(date, today); {
	case offset < 7:
		return "am " + weekday
	case offset < 14:
		return "nächste Woche " + weekday
	}
	return fmt.Sprintf("am %d. %s", date.Day, f.months[date.Month-1])
}

func (f germanFormat) Time(t forecast.TimeOfDay) string {
	return fmt.Sprintf("um %02d:%02d Uhr", t.Hour(), t.Minute())
}

func (f germanFormat) UserDate(s string) string { return "am " + s }

func (f germanFormat) UserTime(hour, minute int, hasMinute bool) string {
	if !hasMinute {
		return fmt.Sprintf("um %d Uhr", hour)
	}
	return fmt.Sprintf("um %d Uhr %d", hour, minute)
}

func (f germanFormat) Temperature(low, high float64) string {
	lo, hi := RoundHalfUp(low), RoundHalfUp(high)
	if lo == hi {
		return fmt.Sprintf("%d Grad", lo)
	}
	return fmt.Sprintf("zwischen %d und %d Grad", lo, hi)
}

func (f germanFormat) Combine(parts []string) string { return combine(parts, " und ") }
