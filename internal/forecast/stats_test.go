package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vzahanych/weather-answer/internal/weathererr"
)

func roundTripTimeline() (*Timeline, Date) {
	d := NewDate(2024, time.January, 1)
	tl := NewTimeline(Location{City: "Berlin"})
	temps := []float64{2, 5, 8, 6, 3}
	conds := []Condition{cond(Snow, 1), cond(Snow, 1), cond(Clouds, 0), cond(Clear, 0), cond(Clear, 0)}
	for i := range temps {
		tl.Add(d, sampleAt(d, i*3, temps[i], conds[i]))
	}
	return tl, d
}

func TestForDayRoundTrip(t *testing.T) {
	tl, d := roundTripTimeline()
	r := NewResolver(tl, time.UTC, WithClock(func() time.Time { return time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC) }))

	stats, err := r.ForDay(d)
	require.NoError(t, err)

	assert.Equal(t, 2.0, stats.MinTemperature)
	assert.Equal(t, 8.0, stats.MaxTemperature)
	assert.Equal(t, 5, stats.Samples())

	winners := stats.WinningConditions()
	require.Len(t, winners, 3)
	assert.True(t, winners[0].Equal(Condition{Category: Snow, Severity: 1}))
	assert.True(t, winners[1].Equal(Condition{Category: Clouds, Severity: 0}))
	assert.True(t, winners[2].Equal(Condition{Category: Clear, Severity: 0}))

	assert.True(t, stats.IsWeatherChance(Snow))
	assert.False(t, stats.IsWeatherChance(Thunderstorm))
	assert.Equal(t, 2, stats.Count(Clear))
}

func TestAggregationOrderIndependence(t *testing.T) {
	d := NewDate(2024, time.January, 1)
	samples := []Sample{
		sampleAt(d, 0, 4, cond(Rain, 0)),
		sampleAt(d, 3, -1, cond(Rain, 2)),
		sampleAt(d, 6, 7, cond(Clouds, 3)),
		sampleAt(d, 9, 2, cond(Rain, 1)),
	}
	reversed := []Sample{samples[3], samples[2], samples[1], samples[0]}
	shuffled := []Sample{samples[2], samples[0], samples[3], samples[1]}

	base := NewStats(samples...)
	for _, order := range [][]Sample{reversed, shuffled} {
		other := NewStats(order...)
		assert.Equal(t, base.MinTemperature, other.MinTemperature)
		assert.Equal(t, base.MaxTemperature, other.MaxTemperature)
		assert.Equal(t, base.MinPressure, other.MinPressure)
		assert.Equal(t, base.MaxPressure, other.MaxPressure)
		assert.Equal(t, base.MinHumidity, other.MinHumidity)
		assert.Equal(t, base.MaxHumidity, other.MaxHumidity)
		assert.ElementsMatch(t, base.WinningConditions(), other.WinningConditions())
	}

	rain, ok := base.Winner(Rain)
	require.True(t, ok)
	assert.Equal(t, 2, rain.Severity)

	// first-seen order follows insertion
	assert.Equal(t, Rain, base.WinningConditions()[0].Category)
	assert.Equal(t, Clouds, NewStats(shuffled...).WinningConditions()[0].Category)
}

func TestStatsZeroDegreesHasData(t *testing.T) {
	d := NewDate(2024, time.January, 1)
	empty := &Stats{}
	assert.False(t, empty.HasData())

	zero := NewStats(sampleAt(d, 0, 0, cond(Snow, 0)))
	assert.True(t, zero.HasData())
	assert.Equal(t, 0.0, zero.MinTemperature)
}

func TestOutputConditionsCloudsClearTie(t *testing.T) {
	d := NewDate(2024, time.January, 1)
	stats := NewStats(
		sampleAt(d, 0, 1, cond(Clear, 0)),
		sampleAt(d, 3, 1, cond(Clouds, 1)),
	)

	assert.Equal(t, []string{"clouds"}, stats.OutputConditions(true))
	assert.Equal(t, []string{"clear", "clouds"}, stats.OutputConditions(false))

	moreClear := NewStats(
		sampleAt(d, 0, 1, cond(Clear, 0)),
		sampleAt(d, 3, 1, cond(Clouds, 1)),
		sampleAt(d, 6, 1, cond(Clear, 0)),
		sampleAt(d, 9, 1, cond(Rain, 0)),
	)
	assert.Equal(t, []string{"clear", "rain"}, moreClear.OutputConditions(true))
}

func TestOutputConditionsSingleWinner(t *testing.T) {
	d := NewDate(2024, time.January, 1)
	stats := NewStats(sampleAt(d, 0, 1, cond(Clear, 0)))
	assert.Equal(t, []string{"clear"}, stats.OutputConditions(true))
}

func TestNoDataForEmptyTimeline(t *testing.T) {
	r := NewResolver(NewTimeline(Location{}), time.UTC)
	stats, err := r.ForDay(NewDate(2024, time.January, 1))
	assert.Nil(t, stats)
	require.Error(t, err)
	assert.True(t, errors.Is(err, weathererr.ErrNoData))
}

func TestNoDataBeyondHorizonIsFuture(t *testing.T) {
	tl, d := roundTripTimeline()
	r := NewResolver(tl, time.UTC)
	_, err := r.ForDay(d.AddDays(10))

	var noData *weathererr.NoDataError
	require.ErrorAs(t, err, &noData)
	assert.True(t, noData.Future)
	assert.Equal(t, weathererr.CodeFutureWeather, weathererr.CodeOf(err))
}

func TestThresholds(t *testing.T) {
	d := NewDate(2024, time.January, 1)
	th := DefaultThresholds()

	warm := NewStats(sampleAt(d, 12, 21, cond(Clear, 0)), sampleAt(d, 15, 15, cond(Clear, 0)))
	assert.True(t, th.Matches(warm, Warm))
	assert.False(t, th.Matches(warm, Cold))

	cold := NewStats(sampleAt(d, 3, 5, cond(Snow, 0)))
	assert.True(t, th.Matches(cold, Cold))
	assert.False(t, th.Matches(&Stats{}, Cold))
}
