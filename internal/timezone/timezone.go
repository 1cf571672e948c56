// Package timezone resolves the zone answers are computed in.
package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"

	"github.com/vzahanych/weather-answer/internal/weathererr"
)

// Auto selects the zone from the location coordinates.
const Auto = "auto"

// Finder looks up IANA zone names. tzf.F satisfies it.
type Finder interface {
	GetTimezoneName(lng, lat float64) string
}

var (
	finder  Finder
	initErr error
	once    sync.Once
)

// DefaultFinder returns the shared tzf finder. The finder holds the zone
// polygons in memory, so it is built once per process.
func DefaultFinder() (Finder, error) {
	once.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		finder = f
	})
	return finder, initErr
}

// Lookup returns the zone at the given coordinates.
func Lookup(f Finder, lat, lon float64) (*time.Location, error) {
	name := f.GetTimezoneName(lon, lat)
	if name == "" {
		return nil, fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", lat, lon)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// Resolve turns a configured zone name into a location. Auto uses the finder
// when coordinates are known and the process zone otherwise.
func Resolve(name string, f Finder, lat, lon float64, known bool) (*time.Location, error) {
	switch name {
	case "":
		return time.Local, nil
	case Auto:
		if !known || f == nil {
			return time.Local, nil
		}
		return Lookup(f, lat, lon)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", weathererr.ErrConfig, name, err)
	}
	return loc, nil
}
