package forecast

import (
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// SunTimes holds local sunrise and sunset clock times.
type SunTimes struct {
	Sunrise TimeOfDay
	Sunset  TimeOfDay
}

// NewSunTimes computes sunrise and sunset at c for day d, expressed in loc.
// It returns nil during polar day or night.
func NewSunTimes(c Coordinates, d Date, loc *time.Location) *SunTimes {
	rise, set := sunrise.SunriseSunset(c.Latitude, c.Longitude, d.Year, d.Month, d.Day)
	if rise.IsZero() || set.IsZero() {
		return nil
	}
	return &SunTimes{
		Sunrise: ClockOf(rise.In(loc)),
		Sunset:  ClockOf(set.In(loc)),
	}
}

// IsDay reports whether t lies between sunrise and sunset, inclusive.
func (s SunTimes) IsDay(t TimeOfDay) bool {
	return s.Sunrise <= t && t <= s.Sunset
}

// IsNight reports whether t lies after sunset or before sunrise, inclusive.
func (s SunTimes) IsNight(t TimeOfDay) bool {
	return t >= s.Sunset || t <= s.Sunrise
}

// Location is where a forecast applies. Coordinates and Sun are filled in by
// the provider adapter once known.
type Location struct {
	City        string
	Zipcode     string
	CountryCode string
	Coordinates *Coordinates
	Sun         *SunTimes
}

func (l Location) HasZip() bool {
	return l.Zipcode != "" && l.CountryCode != ""
}

// Name is the display name used in answers.
func (l Location) Name() string {
	if l.City != "" {
		return l.City
	}
	if l.Zipcode != "" {
		return strings.TrimSpace(l.Zipcode + " " + strings.ToUpper(l.CountryCode))
	}
	return ""
}
