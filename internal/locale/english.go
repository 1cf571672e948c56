package locale

import (
	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

func English() *Locale {
	weekdays := [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	months := [12]string{"January", "February", "March", "April", "May", "June", "July", "August",
		"September", "October", "November", "December"}

	return &Locale{
		Name:     "english",
		Language: "en",
		Weekdays: weekdays,
		Months:   months,

		NamedDays: map[string]NamedDay{
			"today":                  {Offset: 0},
			"tomorrow":               {Offset: 1},
			"the day after tomorrow": {Offset: 2},
		},
		NamedDaySynonyms: map[string]string{},
		NamedTimes: map[string]NamedTime{
			"morning":   Span(forecast.Clock(6, 0, 0), forecast.Clock(12, 0, 0)),
			"midday":    Point(forecast.Clock(12, 0, 0)),
			"afternoon": Span(forecast.Clock(12, 0, 0), forecast.Clock(18, 0, 0)),
			"evening":   Span(forecast.Clock(18, 0, 0), forecast.Clock(22, 0, 0)),
			"night":     Span(forecast.Clock(22, 0, 0), forecast.Clock(6, 0, 0)),
			"midnight":  Point(forecast.Clock(23, 59, 0)),
			"now":       {Now: true},
		},
		NamedTimeSynonyms: map[string]string{
			"noon":          "midday",
			"tonight":       "night",
			"currently":     "now",
			"right now":     "now",
			"at the moment": "now",
			"early morning": "morning",
		},

		Conditions: map[string]forecast.Category{
			"rain":         forecast.Rain,
			"snow":         forecast.Snow,
			"mist":         forecast.Mist,
			"fog":          forecast.Mist,
			"clouds":       forecast.Clouds,
			"thunderstorm": forecast.Thunderstorm,
			"sun":          forecast.Sun,
			"stars":        forecast.Stars,
			"clear":        forecast.Clear,
			"wind":         forecast.Wind,
		},
		ConditionSynonyms: map[string]string{
			"rainy":         "rain",
			"raining":       "rain",
			"snowy":         "snow",
			"snowing":       "snow",
			"foggy":         "fog",
			"misty":         "mist",
			"cloudy":        "clouds",
			"thunderstorms": "thunderstorm",
			"thunder":       "thunderstorm",
			"lightning":     "thunderstorm",
			"sun shine":     "sun",
			"sunny":         "sun",
			"windy":         "wind",
			"storming":      "wind",
			"stormy":        "wind",
			"clear sky":     "clear",
		},
		Temperatures: map[string]forecast.TemperatureClass{
			"warm": forecast.Warm,
			"cold": forecast.Cold,
		},
		TemperatureSynonyms: map[string]string{
			"freezing": "cold",
			"hot":      "warm",
			"cool":     "cold",
		},

		Descriptions: map[forecast.Category][]string{
			forecast.Wind: {"", "", "", "", "moderate breeze", "fresh breeze", "strong breeze", "high wind",
				"gale", "strong gale", "storm", "violent storm", "hurricane force"},
			forecast.Clouds:       {"clear sky", "a few clouds", "scattered clouds", "broken clouds", "overcast clouds"},
			forecast.Rain:         {"light rain", "moderate rain", "heavy rain", "very heavy rain", "extreme rain"},
			forecast.Snow:         {"light snow", "snow", "heavy snow"},
			forecast.Thunderstorm: {"light thunderstorm", "thunderstorm", "strong thunderstorm"},
			forecast.Clear:        {"clear sky"},
			forecast.Mist:         {"mist"},
		},

		Errors: map[weathererr.Code]Phrases{
			weathererr.CodeNoNetwork:     {"I don't have network.", "I seem not be connected to the internet."},
			weathererr.CodeAPI:           {"There is a problem with the API Key.", "The API key is invalid."},
			weathererr.CodeFutureWeather: {"I don't know the weather this far ahead.", "There is no prediction data for your requested date yet."},
			weathererr.CodeNotImplement:  {"This function is not implemented."},
			weathererr.CodeLocation:      {"I can't find the location."},
			weathererr.CodePastWeather:   {"I don't know the weather of the past.", "I am a forecasting service not a historian."},
			weathererr.CodeNoWeather:     {"There seems to be no weather for today."},
			weathererr.CodeDate:          {"Something is wrong with the date."},
			weathererr.CodeAPITimeout:    {"API Key was used too often, try again later."},
			weathererr.CodeConfig:        {"There seems to be something wrong with the configuration file."},
			weathererr.CodeTime:          {"Something is wrong with the time."},
			weathererr.CodeOutput:        {"I can't deliver the answer."},
			weathererr.CodeGeneral:       {"Something went wrong."},
		},

		DayParts: map[string]string{
			forecast.PeriodMorning.Name: "Morning",
			forecast.PeriodNoon.Name:    "Afternoon",
			forecast.PeriodEvening.Name: "Evening",
		},

		TemperatureIntro:   Phrases{"The temperature {when} {where}: "},
		TemperatureGeneral: Phrases{"The temperature {when} {where} is {temperature}."},
		TemperatureAnswers: map[forecast.TemperatureClass]Answer{
			forecast.Cold: {
				True:  Phrases{"Yes, it will be cold {where} {when}. The temperature will be {temperature}."},
				False: Phrases{"No, {when} {where} will not be cold. The temperature will be {temperature}."},
			},
			forecast.Warm: {
				True:  Phrases{"Yes, it will be warm {where} {when}. The temperature will be {temperature}."},
				False: Phrases{"No, {when} {where} will not be warm. The temperature will be {temperature}."},
			},
		},

		ConditionIntro:   Phrases{"The weather {when} {where}: ", "Weather for {when} {where}: "},
		ConditionGeneral: Phrases{"The weather {when} {where}: {weather}."},
		ConditionAnswers: map[forecast.Category]Answer{
			forecast.Rain: {
				True:  Phrases{"Yes, {when} could be rainy {where}."},
				False: Phrases{"No, it will not rain {when} {where}. The weather will be: {weather}."},
			},
			forecast.Snow: {
				True:  Phrases{"Yes, {when} {where} might have snow."},
				False: Phrases{"No, there will be no snow {when} {where}. The weather will be: {weather}."},
			},
			forecast.Thunderstorm: {
				True:  Phrases{"Yes, {when} could have a thunderstorm {where}."},
				False: Phrases{"I don't know about a thunderstorm {when} {where}. The weather will be: {weather}."},
			},
			forecast.Clouds: {
				True:  Phrases{"Yes, {when} {where} could be cloudy."},
				False: Phrases{"No, {when} {where} will not be cloudy. The weather will be: {weather}."},
			},
			forecast.Sun: {
				True:  Phrases{"Yes, {when} {where} will be sunny."},
				False: Phrases{"No, {when} {where} won't be sunny. The weather will be: {weather}."},
				Night: Phrases{"It is dark {when} {where}, the sun can't shine."},
			},
			forecast.Stars: {
				True:  Phrases{"Yes, you can see the stars {when} {where}."},
				False: Phrases{"No stars {when} {where}."},
			},
			forecast.Clear: {
				True:  Phrases{"Yes, the sky will be clear {when} {where}."},
				False: Phrases{"No clear skies {when} {where}. The weather will be: {weather}."},
			},
			forecast.Mist: {
				True:  Phrases{"Yes, {when} {where} might be foggy."},
				False: Phrases{"No, {when} {where} will have no fog."},
			},
			forecast.Wind: {
				True:  Phrases{"Yes, {when} {where} could be windy."},
				False: Phrases{"No, {when} {where} will not be windy."},
			},
		},
		UnknownCondition: Phrases{"I don't know what you want to know. Here the general weather: {weather}."},

		Affirmative:   Phrases{"Yes"},
		Negative:      Phrases{"No"},
		ItemNeeded:    Phrases{"{article} {noun} sounds useful", "{article} {noun} could help", "{article} {noun} {verb} a good idea"},
		ItemNotNeeded: Phrases{"{article} {noun} {verb} {when} {where} useless"},
		UnknownItem:   Phrases{"I have no idea what {noun} is, I am sorry."},
		Weather:       Phrases{"The weather will be: {weather}.", "The Weather: {weather}."},

		Singular: "is",
		Plural:   "are",

		Items: NewItemCatalog(
			singular("umbrella", "an", forecast.Rain, forecast.Snow),
			singular("raincoat", "a", forecast.Rain, forecast.Wind),
			singular("rain coat", "a", forecast.Rain, forecast.Wind),
			plural("rubber boots", forecast.Rain),
			singular("pair of rubber boots", "a", forecast.Rain),
			plural("sandals", forecast.Sun).withTemperature(forecast.Warm),
			plural("sunglasses", forecast.Sun),
			singular("sunscreen", "", forecast.Sun),
			plural("boots", forecast.Wind).withTemperature(forecast.Cold),
			singular("scarf", "a").withTemperature(forecast.Cold),
			plural("gloves").withTemperature(forecast.Cold),
			singular("hat", "a").withTemperature(forecast.Cold),
			singular("wool hat", "a").withTemperature(forecast.Cold),
			singular("hoodie", "a").withTemperature(forecast.Cold),
			singular("sun hat", "a", forecast.Sun),
			singular("cap", "a", forecast.Sun),
			singular("parasol", "a", forecast.Sun),
			plural("boots", forecast.Rain, forecast.Wind).withTemperature(forecast.Cold),
			singular("pair of boots", "a", forecast.Rain, forecast.Wind).withTemperature(forecast.Cold),
			singular("sun screen", "", forecast.Sun),
			singular("pair of gloves", "a").withTemperature(forecast.Cold),
			plural("sneakers", forecast.Wind).withTemperature(forecast.Cold),
			plural("winter boots", forecast.Snow).withTemperature(forecast.Cold),
			singular("pair of winter boots", "a", forecast.Snow).withTemperature(forecast.Cold),
			singular("winter coat", "a", forecast.Snow).withTemperature(forecast.Cold),
			plural("sandals", forecast.Sun).withTemperature(forecast.Warm),
			singular("pair of sandals", "a", forecast.Sun).withTemperature(forecast.Warm),
			singular("telescope", "a", forecast.Stars),
		),

		Format: englishFormat{weekdays: weekdays, months: months},
	}
}
