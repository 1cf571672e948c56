package service

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

var fixtureNow = time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)

func decodeFixture(t *testing.T, loc forecast.Location, zone *time.Location) *forecast.Timeline {
	t.Helper()
	f, err := os.Open("testdata/forecast.json")
	require.NoError(t, err)
	defer f.Close()

	tl, err := DecodeForecast(f, loc, DecodeOptions{
		Zone:      zone,
		Bucket:    3 * time.Hour,
		Describer: locale.English(),
		Now:       fixtureNow,
	})
	require.NoError(t, err)
	return tl
}

func TestDecodeForecast(t *testing.T) {
	tl := decodeFixture(t, forecast.Location{}, time.UTC)

	assert.Equal(t, []forecast.Date{
		forecast.NewDate(2024, time.January, 1),
		forecast.NewDate(2024, time.January, 2),
		forecast.NewDate(2024, time.January, 3),
	}, tl.Dates())

	day := tl.SamplesForDate(forecast.NewDate(2024, time.January, 2))
	require.Len(t, day, 8)
	assert.Equal(t, forecast.Clock(0, 0, 0), day[0].Time)
	assert.Equal(t, forecast.Clock(3, 0, 0).Add(-time.Microsecond), day[0].End)

	noon := day[4]
	assert.Equal(t, forecast.Clock(12, 0, 0), noon.Time)
	assert.Equal(t, forecast.Rain, noon.Primary.Category)
	assert.Equal(t, 0, noon.Primary.Severity)
	assert.Equal(t, "light rain", noon.Primary.Description)
	assert.Equal(t, -0.5, noon.Temperature)

	evening := day[6]
	require.NotEmpty(t, evening.Secondary)
	wind := evening.Secondary[0]
	assert.Equal(t, forecast.Wind, wind.Category)
	assert.Equal(t, 5, wind.Severity)
	assert.Equal(t, "SE", wind.Direction)
}

func TestDecodeFillsLocation(t *testing.T) {
	tl := decodeFixture(t, forecast.Location{}, time.UTC)

	loc := tl.Location()
	assert.Equal(t, "Berlin", loc.City)
	assert.Equal(t, "de", loc.CountryCode)
	require.NotNil(t, loc.Coordinates)
	assert.InDelta(t, 52.5244, loc.Coordinates.Latitude, 1e-9)
	require.NotNil(t, loc.Sun)
	assert.True(t, loc.Sun.Sunrise > forecast.Clock(6, 30, 0) && loc.Sun.Sunrise < forecast.Clock(8, 0, 0),
		"sunrise %s", loc.Sun.Sunrise)
	assert.True(t, loc.Sun.Sunset > forecast.Clock(14, 30, 0) && loc.Sun.Sunset < forecast.Clock(15, 30, 0),
		"sunset %s", loc.Sun.Sunset)

	zipped := decodeFixture(t, forecast.Location{Zipcode: "10115", CountryCode: "de"}, time.UTC).Location()
	assert.Empty(t, zipped.City, "zip code locations keep their zip display name")
	assert.Equal(t, "10115 DE", zipped.Name())
}

func TestDecodeDerivesSunAndStars(t *testing.T) {
	tl := decodeFixture(t, forecast.Location{}, time.UTC)

	has := func(s forecast.Sample, c forecast.Category) bool {
		for _, cond := range s.Conditions() {
			if cond.Category == c {
				return true
			}
		}
		return false
	}

	day := tl.SamplesForDate(forecast.NewDate(2024, time.January, 2))
	assert.True(t, has(day[7], forecast.Stars), "clear sky at 21:00")
	assert.False(t, has(day[7], forecast.Sun))
}

func TestDecodeUsesZone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tl := decodeFixture(t, forecast.Location{City: "Berlin"}, berlin)
	first := tl.SamplesForDate(forecast.NewDate(2024, time.January, 1))
	require.NotEmpty(t, first)
	assert.Equal(t, forecast.Clock(10, 0, 0), first[0].Time)
}

func TestDecodeStatusCodes(t *testing.T) {
	tests := []struct {
		body string
		want error
	}{
		{`{"cod":401,"message":"Invalid API key"}`, weathererr.ErrAPIKey},
		{`{"cod":"401","message":"Invalid API key"}`, weathererr.ErrAPIKey},
		{`{"cod":"404","message":"city not found"}`, weathererr.ErrLocationNotFound},
		{`{"cod":429,"message":"too many"}`, weathererr.ErrRateLimited},
		{`{"cod":"500","message":"oops"}`, weathererr.ErrProvider},
		{`{"cod":`, weathererr.ErrNoNetwork},
	}

	for _, tt := range tests {
		_, err := DecodeForecast(strings.NewReader(tt.body), forecast.Location{City: "x"}, DecodeOptions{Now: fixtureNow})
		assert.ErrorIs(t, err, tt.want, tt.body)
	}
}

func TestDecodeSkipsEntriesWithoutWeather(t *testing.T) {
	body := `{"cod":"200","list":[{"dt":1704067200,"main":{"temp":1},"weather":[]}],"city":{"coord":{"lat":1,"lon":1}}}`
	tl, err := DecodeForecast(strings.NewReader(body), forecast.Location{City: "x"}, DecodeOptions{Now: fixtureNow})
	require.NoError(t, err)
	assert.Empty(t, tl.Dates())
}

func TestCategoryAndSeverity(t *testing.T) {
	tests := []struct {
		id       int
		category forecast.Category
		severity int
	}{
		{200, forecast.Thunderstorm, 6},
		{210, forecast.Thunderstorm, 0},
		{221, forecast.Thunderstorm, 10},
		{300, forecast.Rain, 0},
		{314, forecast.Rain, 7},
		{502, forecast.Rain, 2},
		{504, forecast.Rain, 4},
		{602, forecast.Snow, 2},
		{615, forecast.Snow, 1},
		{701, forecast.Mist, 0},
		{781, forecast.Mist, 0},
		{800, forecast.Clear, 0},
		{804, forecast.Clouds, 4},
		{999, forecast.Unknown, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.category, categoryOf(tt.id), "category of %d", tt.id)
		assert.Equal(t, tt.severity, severityOf(tt.id), "severity of %d", tt.id)
	}
}
