package answer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/locale"
	"github.com/vzahanych/weather-answer/internal/request"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

var (
	now      = time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	today    = forecast.DateOf(now)
	tomorrow = today.AddDays(1)
)

type row struct {
	hour     int
	temp     float64
	category forecast.Category
	severity int
}

// dayRows are three hour buckets with sunrise at 08:00 and sunset at 16:00.
var dayRows = []row{
	{0, -1, forecast.Clouds, 0},
	{3, -2, forecast.Clouds, 1},
	{6, 0, forecast.Clouds, 1},
	{9, 3, forecast.Rain, 0},
	{12, 6, forecast.Rain, 2},
	{15, 5, forecast.Clouds, 3},
	{18, 2, forecast.Clear, 0},
	{21, 1, forecast.Clear, 0},
}

func newTimeline(l *locale.Locale, date forecast.Date, rows []row) *forecast.Timeline {
	loc := forecast.Location{
		City: "Berlin",
		Sun:  &forecast.SunTimes{Sunrise: forecast.Clock(8, 0, 0), Sunset: forecast.Clock(16, 0, 0)},
	}
	tl := forecast.NewTimeline(loc)
	for _, r := range rows {
		tl.Add(date, forecast.NewSample(forecast.Observation{
			Date:        date,
			Time:        forecast.Clock(r.hour, 0, 0),
			Temperature: r.temp,
			Pressure:    1010,
			Humidity:    70,
			Condition:   forecast.NewCondition(r.category, r.severity, "", l),
		}, 3*time.Hour, loc, l))
	}
	return tl
}

func first(int) int { return 0 }

type fixture struct {
	locale   *locale.Locale
	parser   *request.Parser
	composer *Composer
	resolver *forecast.Resolver
	clock    time.Time
}

func newFixture(clock time.Time, date forecast.Date, opts ...request.Option) *fixture {
	en := locale.English()
	opts = append([]request.Option{request.WithClock(func() time.Time { return clock })}, opts...)
	return &fixture{
		locale:   en,
		parser:   request.NewParser(en, time.UTC, opts...),
		composer: New(en, forecast.DefaultThresholds(), WithPicker(first)),
		resolver: forecast.NewResolver(newTimeline(en, date, dayRows), time.UTC,
			forecast.WithClock(func() time.Time { return clock })),
		clock: clock,
	}
}

func (f *fixture) answer(t *testing.T, in request.Input) (string, error) {
	t.Helper()
	req, err := f.parser.Parse(in)
	require.NoError(t, err)
	return f.composer.Compose(req, f.resolver)
}

func (f *fixture) mustAnswer(t *testing.T, in request.Input) string {
	t.Helper()
	text, err := f.answer(t, in)
	require.NoError(t, err)
	return text
}

func TestComposeFull(t *testing.T) {
	f := newFixture(now, tomorrow)

	assert.Equal(t,
		"The weather tomorrow: broken clouds and heavy rain. The temperature is between -2 and 6 degrees.",
		f.mustAnswer(t, request.Input{Intent: request.IntentForecast, Day: "tomorrow"}))

	assert.Equal(t,
		"The weather tomorrow in Berlin: broken clouds and heavy rain. The temperature is between -2 and 6 degrees.",
		f.mustAnswer(t, request.Input{Intent: request.IntentForecast, Day: "tomorrow", Location: "berlin"}))

	assert.Equal(t,
		"The weather tomorrow night: clear sky. The temperature is 1 degrees.",
		f.mustAnswer(t, request.Input{Intent: request.IntentForecast, Day: "tomorrow", Time: "night"}))
}

func TestComposeCondition(t *testing.T) {
	f := newFixture(now, tomorrow)

	tests := []struct {
		name string
		in   request.Input
		want string
	}{
		{
			"rain yes",
			request.Input{Day: "tomorrow", Condition: "rainy"},
			"Yes, tomorrow could be rainy.",
		},
		{
			"snow no",
			request.Input{Day: "tomorrow", Condition: "snow"},
			"No, there will be no snow tomorrow. The weather will be: broken clouds and heavy rain.",
		},
		{
			"no sun during daylight",
			request.Input{Day: "tomorrow", Condition: "sunny"},
			"No, tomorrow won't be sunny. The weather will be: broken clouds and heavy rain.",
		},
		{
			"sun after sunset",
			request.Input{Day: "tomorrow", Time: "20", Condition: "sun"},
			"It is dark tomorrow at 8 o'clock pm, the sun can't shine.",
		},
		{
			"stars after sunset",
			request.Input{Day: "tomorrow", Condition: "stars"},
			"Yes, you can see the stars tomorrow.",
		},
		{
			"calm",
			request.Input{Day: "tomorrow", Condition: "windy"},
			"No, tomorrow will not be windy.",
		},
		{
			"unknown condition",
			request.Input{Day: "tomorrow", Condition: "hail"},
			"I don't know what you want to know. Here the general weather: broken clouds and heavy rain.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Intent = request.IntentForecastCondition
			assert.Equal(t, tt.want, f.mustAnswer(t, tt.in))
		})
	}
}

func TestComposeTemperature(t *testing.T) {
	f := newFixture(now, tomorrow)

	assert.Equal(t,
		"Yes, it will be cold tomorrow. The temperature will be between -2 and 6 degrees.",
		f.mustAnswer(t, request.Input{Intent: request.IntentForecastTemperature, Day: "tomorrow", Temperature: "cold"}))

	assert.Equal(t,
		"No, tomorrow will not be warm. The temperature will be between -2 and 6 degrees.",
		f.mustAnswer(t, request.Input{Intent: request.IntentForecastTemperature, Day: "tomorrow", Temperature: "hot"}))

	assert.Equal(t,
		"The temperature tomorrow at 10 30 is 3 degrees.",
		f.mustAnswer(t, request.Input{Intent: request.IntentForecastTemperature, Day: "tomorrow", Time: "10 30"}))
}

func TestComposeItem(t *testing.T) {
	f := newFixture(now, tomorrow)

	tests := []struct {
		item string
		want string
	}{
		{"umbrella", "Yes, an umbrella sounds useful. The weather will be: broken clouds and heavy rain."},
		{"scarf", "Yes, a scarf sounds useful. The weather will be: broken clouds and heavy rain."},
		{"sunglasses", "No, sunglasses are tomorrow useless. The weather will be: broken clouds and heavy rain."},
		{"snorkel", "I have no idea what snorkel is, I am sorry."},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			got := f.mustAnswer(t, request.Input{Intent: request.IntentForecastItem, Day: "tomorrow", Item: tt.item})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposeDetail(t *testing.T) {
	f := newFixture(now, tomorrow, request.WithDetail(true))

	text := f.mustAnswer(t, request.Input{Intent: request.IntentForecast, Day: "tomorrow"})
	assert.True(t, strings.HasPrefix(text, "The weather tomorrow:"), text)
	for _, part := range []string{"Morning: a few clouds and light rain", "Afternoon", "Evening"} {
		assert.Contains(t, text, part)
	}

	late := time.Date(2024, time.January, 1, 18, 0, 0, 0, time.UTC)
	f = newFixture(late, today, request.WithDetail(true))
	text = f.mustAnswer(t, request.Input{Intent: request.IntentForecastTemperature})
	assert.Contains(t, text, "Evening")
	assert.NotContains(t, text, "Morning", "elapsed day parts are skipped")
	assert.NotContains(t, text, "Afternoon")
}

func TestComposeErrors(t *testing.T) {
	f := newFixture(now, tomorrow)

	_, err := f.answer(t, request.Input{Intent: request.IntentForecast, Day: "the day after tomorrow"})
	require.Error(t, err)
	assert.Equal(t, weathererr.CodeFutureWeather, weathererr.CodeOf(err))

	_, err = f.answer(t, request.Input{Intent: request.IntentForecast})
	assert.ErrorIs(t, err, weathererr.ErrNoData)

	req := &request.Request{Kind: request.KindFull, Grain: request.Grain(9), Date: tomorrow}
	_, err = f.composer.Compose(req, f.resolver)
	var grain *weathererr.UnsupportedGrainError
	assert.ErrorAs(t, err, &grain)
}

func TestNoPlaceholderLeaks(t *testing.T) {
	inputs := []request.Input{
		{Intent: request.IntentForecast, Day: "tomorrow", Location: "Berlin"},
		{Intent: request.IntentForecastTemperature, Day: "tomorrow", Temperature: "cold"},
		{Intent: request.IntentForecastTemperature, Day: "tomorrow", Time: "15"},
		{Intent: request.IntentForecastCondition, Day: "tomorrow", Condition: "rain"},
		{Intent: request.IntentForecastCondition, Day: "tomorrow", Condition: "snow"},
		{Intent: request.IntentForecastCondition, Day: "tomorrow", Time: "22", Condition: "sun"},
		{Intent: request.IntentForecastCondition, Day: "tomorrow", Time: "evening", Condition: "stars"},
		{Intent: request.IntentForecastItem, Day: "tomorrow", Item: "boots"},
		{Intent: request.IntentForecastItem, Day: "tomorrow", Item: "parasol"},
	}

	for _, l := range []*locale.Locale{locale.English(), locale.German()} {
		for variant := 0; variant < 4; variant++ {
			pick := func(n int) int { return variant % n }
			parser := request.NewParser(l, time.UTC, request.WithClock(func() time.Time { return now }))
			composer := New(l, forecast.DefaultThresholds(), WithPicker(pick))
			resolver := forecast.NewResolver(newTimeline(l, tomorrow, dayRows), time.UTC)

			for _, in := range inputs {
				if l.Name == "german" {
					in = germanInput(in)
				}
				req, err := parser.Parse(in)
				require.NoError(t, err, "%s %+v", l.Name, in)
				text, err := composer.Compose(req, resolver)
				require.NoError(t, err)
				assert.NotContains(t, text, "{", "%s: %s", l.Name, text)
				assert.NotContains(t, text, "  ")
			}
		}
	}
}

var germanWords = map[string]string{
	"tomorrow": "morgen", "cold": "kalt", "rain": "regen", "snow": "schnee", "sun": "sonne",
	"stars": "sterne", "evening": "Abend", "boots": "Stiefel", "parasol": "Sonnenschirm",
}

func germanInput(in request.Input) request.Input {
	tr := func(s string) string {
		if w, ok := germanWords[s]; ok {
			return w
		}
		return s
	}
	in.Day, in.Time, in.Condition, in.Temperature, in.Item = tr(in.Day), tr(in.Time), tr(in.Condition), tr(in.Temperature), tr(in.Item)
	return in
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Hello world. and: x.", normalize("  hello   world . and :  x..  "))
	assert.Equal(t, "Yes, sunscreen.", normalize("yes,  sunscreen ."))
	assert.Equal(t, "", normalize("   "))
}

func TestRenderSinglePass(t *testing.T) {
	c := New(locale.English(), forecast.DefaultThresholds())
	got := c.render("{when} {weather}", fields{when: "{weather}", weather: "rain"})
	assert.Equal(t, "{weather} rain", got)
}
