package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

// statusCode accepts the "cod" field as a JSON string or number.
type statusCode string

func (c *statusCode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = statusCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("cod: %w", err)
	}
	*c = statusCode(n.String())
	return nil
}

type owmForecast struct {
	Cod     statusCode `json:"cod"`
	Message any        `json:"message"`
	List    []owmEntry `json:"list"`
	City    struct {
		Name    string `json:"name"`
		Country string `json:"country"`
		Coord   struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
	} `json:"city"`
}

type owmEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Pressure float64 `json:"pressure"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
}

type DecodeOptions struct {
	Zone      *time.Location
	Bucket    time.Duration
	Describer forecast.Describer
	// Now picks the day sunrise and sunset are computed for.
	Now time.Time
}

// DecodeForecast reads an OpenWeatherMap 5 day / 3 hour payload into a
// timeline for loc. Missing coordinates, city and country of loc are taken
// from the payload.
func DecodeForecast(r io.Reader, loc forecast.Location, opts DecodeOptions) (*forecast.Timeline, error) {
	var payload owmForecast
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode forecast: %v", weathererr.ErrNoNetwork, err)
	}

	if err := codeError(string(payload.Cod), payload.Message); err != nil {
		return nil, err
	}

	zone := opts.Zone
	if zone == nil {
		zone = time.UTC
	}
	bucket := opts.Bucket
	if bucket <= 0 {
		bucket = 3 * time.Hour
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	if loc.Coordinates == nil {
		loc.Coordinates = &forecast.Coordinates{
			Latitude:  payload.City.Coord.Lat,
			Longitude: payload.City.Coord.Lon,
		}
	}
	if loc.City == "" && !loc.HasZip() {
		loc.City = payload.City.Name
	}
	if loc.CountryCode == "" {
		loc.CountryCode = strings.ToLower(payload.City.Country)
	}
	loc.Sun = forecast.NewSunTimes(*loc.Coordinates, forecast.DateOf(now.In(zone)), zone)

	tl := forecast.NewTimeline(loc)
	for _, e := range payload.List {
		if len(e.Weather) == 0 {
			continue
		}
		w := e.Weather[0]
		at := time.Unix(e.Dt, 0).In(zone)

		obs := forecast.Observation{
			Date:        forecast.DateOf(at),
			Time:        forecast.ClockOf(at),
			Temperature: e.Main.Temp,
			Pressure:    e.Main.Pressure,
			Humidity:    e.Main.Humidity,
			Condition:   forecast.NewCondition(categoryOf(w.ID), severityOf(w.ID), w.Description, opts.Describer),
		}
		if e.Wind != nil {
			obs.Wind = &forecast.WindReading{Speed: e.Wind.Speed, Degrees: e.Wind.Deg}
		}
		tl.Add(obs.Date, forecast.NewSample(obs, bucket, loc, opts.Describer))
	}
	return tl, nil
}

func codeError(cod string, message any) error {
	switch cod {
	case "", "200":
		return nil
	case "401":
		return fmt.Errorf("%w: %v", weathererr.ErrAPIKey, message)
	case "404":
		return fmt.Errorf("%w: %v", weathererr.ErrLocationNotFound, message)
	case "429":
		return fmt.Errorf("%w: %v", weathererr.ErrRateLimited, message)
	}
	return fmt.Errorf("%w: cod %s: %v", weathererr.ErrProvider, cod, message)
}

func categoryOf(id int) forecast.Category {
	switch {
	case id == 800:
		return forecast.Clear
	case id/100 == 2:
		return forecast.Thunderstorm
	case id/100 == 3, id/100 == 5:
		return forecast.Rain
	case id/100 == 6:
		return forecast.Snow
	case id/100 == 7:
		return forecast.Mist
	case id/100 == 8:
		return forecast.Clouds
	}
	return forecast.Unknown
}

// severities orders provider codes from mild to strong within their
// category. Drizzle is reported as rain.
var severities = map[int]int{
	210: 0, 211: 1, 230: 3, 231: 4, 232: 5, 200: 6, 201: 7, 202: 8, 212: 9, 221: 10,
	300: 0, 301: 1, 321: 1, 302: 2, 310: 3, 311: 4, 312: 5, 313: 6, 314: 7,
	500: 0, 520: 0, 501: 1, 521: 1, 511: 1, 502: 2, 522: 2, 503: 3, 531: 3, 504: 4,
	600: 0, 620: 0, 612: 0, 615: 1, 601: 1, 621: 1, 611: 1, 613: 1, 616: 2, 602: 2, 622: 2,
	800: 0, 801: 1, 802: 2, 803: 3, 804: 4,
}

func severityOf(id int) int {
	return severities[id]
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
