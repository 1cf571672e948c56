package locale

import (
	"time"

	"github.com/vzahanych/weather-answer/internal/forecast"
	"github.com/vzahanych/weather-answer/internal/weathererr"
)

func German() *Locale {
	weekdays := [7]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}
	months := [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August",
		"September", "Oktober", "November", "Dezember"}

	return &Locale{
		Name:     "german",
		Language: "de",
		Weekdays: weekdays,
		Months:   months,

		NamedDays: map[string]NamedDay{
			"heute":       {Offset: 0},
			"morgen":      {Offset: 1},
			"übermorgen":  {Offset: 2},
			"weihnachten": {Month: time.December, Day: 24},
		},
		NamedDaySynonyms: map[string]string{
			"heilig abend": "weihnachten",
		},
		NamedTimes: map[string]NamedTime{
			"Morgen":     Span(forecast.Clock(6, 0, 0), forecast.Clock(10, 0, 0)),
			"Vormittag":  Span(forecast.Clock(10, 0, 0), forecast.Clock(12, 0, 0)),
			"Mittag":     Span(forecast.Clock(12, 0, 0), forecast.Clock(14, 0, 0)),
			"Nachmittag": Span(forecast.Clock(14, 0, 0), forecast.Clock(18, 0, 0)),
			"Abend":      Span(forecast.Clock(18, 0, 0), forecast.Clock(22, 0, 0)),
			"Nacht":      Span(forecast.Clock(22, 0, 0), forecast.Clock(6, 0, 0)),
			"jetzt":      {Now: true},
		},
		NamedTimeSynonyms: map[string]string{
			"früh":    "Morgen",
			"gerade":  "jetzt",
			"aktuell": "jetzt",
		},

		Conditions: map[string]forecast.Category{
			"regen":    forecast.Rain,
			"schnee":   forecast.Snow,
			"nebel":    forecast.Mist,
			"wolken":   forecast.Clouds,
			"gewitter": forecast.Thunderstorm,
			"sonne":    forecast.Sun,
			"sterne":   forecast.Stars,
			"klar":     forecast.Clear,
			"wind":     forecast.Wind,
		},
		ConditionSynonyms: map[string]string{
			"regnet":        "regen",
			"schneit":       "schnee",
			"nebelt":        "nebel",
			"wolkig":        "wolken",
			"bewölkt":       "wolken",
			"gewittert":     "gewitter",
			"sonnig":        "sonne",
			"windig":        "wind",
			"windet":        "wind",
			"nieselt":       "regen",
			"niesel":        "regen",
			"schüttet":      "regen",
			"schneien":      "schnee",
			"regnen":        "regen",
			"gewittern":     "gewitter",
			"donnern":       "gewitter",
			"donnert":       "gewitter",
			"blitzt":        "gewitter",
			"blitzen":       "gewitter",
			"donner":        "gewitter",
			"blitze":        "gewitter",
			"klarer himmel": "klar",
		},
		Temperatures: map[string]forecast.TemperatureClass{
			"warm": forecast.Warm,
			"kalt": forecast.Cold,
		},
		TemperatureSynonyms: map[string]string{
			"heiß": "warm",
		},

		Descriptions: map[forecast.Category][]string{
			forecast.Wind: {"", "", "", "", "mäßiger Wind", "frischer Wind", "starker Wind", "starker Wind",
				"Sturm", "Sturm", "schwerer Sturm", "orkanartiger Sturm", "Orkan"},
			forecast.Clouds:       {"klarer Himmel", "ein paar Wolken", "leicht bewölkt", "bewölkt", "stark bewölkt"},
			forecast.Rain:         {"leichter Regen", "mäßiger Regen", "starker Regen", "sehr starker Regen", "extremer Regen"},
			forecast.Snow:         {"leichter Schneefall", "Schneefall", "starker Schneefall"},
			forecast.Thunderstorm: {"leichtes Gewitter", "Gewitter", "starkes Gewitter"},
			forecast.Clear:        {"klarer Himmel"},
			forecast.Mist:         {"Nebel"},
		},

		Errors: map[weathererr.Code]Phrases{
			weathererr.CodeNoNetwork: {"Es ist leider kein Internet verfügbar.",
				"Ich bin nicht mit dem Internet verbunden.",
				"Es ist kein Internet vorhanden."},
			weathererr.CodeAPI: {"Das Wetter konnte nicht abgerufen werden. Vermutlich ist der API-Schlüssel ungültig.",
				"Fehler beim Abrufen. Der API-Schlüssel ist ungültig."},
			weathererr.CodeFutureWeather: {"So weit in die Zukunft kenne ich das Wetter nicht.",
				"Ich kann nicht soweit in die Zukunft sehen.",
				"Dieses Datum liegt zu weit in der Zukunft."},
			weathererr.CodeNotImplement: {"Diese Funktion wird noch nicht unterstützt.",
				"Ich weiß nicht wie ich diese Anfrage verarbeiten soll."},
			weathererr.CodeLocation:    {"Ich kann die angegebene Stadt nicht finden. Vielleicht habe ich dich nicht richtig verstanden."},
			weathererr.CodePastWeather: {"Ich kann dir das Wetter aus der Vergangenheit leider nicht sagen."},
			weathererr.CodeNoWeather:   {"Es ist so kurz vor Mitternacht, dass ich das Wetter für heute nicht abrufen kann."},
			weathererr.CodeDate:        {"Irgendwas stimmt mit dem Datum nicht."},
			weathererr.CodeAPITimeout:  {"Mit diesem API-Schlüssel wurden zu viele Anfragen gesendet. Versuche es später erneut."},
			weathererr.CodeConfig:      {"Es gab ein Problem beim Laden der Konfigurationsdatei."},
			weathererr.CodeTime:        {"Irgendwas stimmt mit der angegebenen Zeit nicht."},
			weathererr.CodeOutput:      {"Ich kann die Antwort nicht zustellen."},
			weathererr.CodeGeneral:     {"Es ist ein Fehler aufgetreten.", "Hier ist ein Fehler aufgetreten."},
		},

		DayParts: map[string]string{
			forecast.PeriodMorning.Name: "Morgens",
			forecast.PeriodNoon.Name:    "Mittags",
			forecast.PeriodEvening.Name: "Abends",
		},

		TemperatureIntro: Phrases{"Die Temperaturen {when} {where}: ", "Temperaturen für {when} {where}: "},
		TemperatureGeneral: Phrases{
			"Die Temperatur {when} {where} ist {temperature}.",
			"Es hat {where} {when} {temperature}.",
		},
		TemperatureAnswers: map[forecast.TemperatureClass]Answer{
			forecast.Cold: {
				True:  Phrases{"Ja, es wird {when} {where} kalt. Die Temperatur ist {temperature}."},
				False: Phrases{"Nein, es wird {when} {where} nicht kalt. Die Temperatur ist {temperature}."},
			},
			forecast.Warm: {
				True:  Phrases{"Ja, es wird {when} {where} warm. Die Temperatur ist {temperature}."},
				False: Phrases{"Nein, es wird {when} {where} nicht warm. Die Temperatur ist {temperature}."},
			},
		},

		ConditionIntro: Phrases{"Der Wetterbericht {when} {where}: ", "Wetterbericht für {when} {where}: ",
			"Das Wetter {when} {where}: ", "Das Wetter für {when} {where}: "},
		ConditionGeneral: Phrases{"Das Wetter {when} {where}: {weather}.",
			"{when} {where} ist das Wetter: {weather}.",
			"Wetter {when} {where}: {weather}."},
		ConditionAnswers: map[forecast.Category]Answer{
			forecast.Rain: {
				True: Phrases{"Ja, {when} wird es {where} regnen.", "Ja, {when} gibt es {where} Regen.",
					"Ja, es regnet {when} {where}.", "Ja, {when} regnet es {where}."},
				False: Phrases{"Nein, es regnet {when} {where} nicht. Das Wetter ist: {weather}.", "Nein, {when} regnet es {where} nicht.",
					"Nein, {when} gibt es keinen Regen {where}."},
			},
			forecast.Snow: {
				True: Phrases{"Ja, {when} wird es {where} schneien.", "Ja, {when} gibt es {where} Schnee.",
					"Ja, es schneit {when} {where}.", "Ja, {when} schneit es {where}."},
				False: Phrases{"Nein, es schneit {when} {where} nicht. Das Wetter ist: {weather}.", "Nein, {when} schneit es {where} nicht.",
					"Nein, {when} gibt es keinen Schnee {where}."},
			},
			forecast.Thunderstorm: {
				True:  Phrases{"Ja, {when} gibt es {where} Gewitter."},
				False: Phrases{"Nein, {when} {where} gewittert es nicht."},
			},
			forecast.Clouds: {
				True:  Phrases{"Ja, {when} kann es {where} bewölkt sein."},
				False: Phrases{"Nein, {when} {where} ist es nicht bewölkt."},
			},
			forecast.Sun: {
				True:  Phrases{"Ja, {when} {where} scheint die Sonne."},
				False: Phrases{"Nein, {when} {where} scheint keine Sonne. Das Wetter ist: {weather}."},
				Night: Phrases{"{when} {where} ist es dunkel. Im Dunkeln scheint keine Sonne."},
			},
			forecast.Stars: {
				True:  Phrases{"Ja, man kann {when} {where} die Sterne sehen."},
				False: Phrases{"Nein, keine Sterne zu sehen {when} {where}."},
			},
			forecast.Clear: {
				True:  Phrases{"Ja, der Himmel ist klar {when} {where}."},
				False: Phrases{"Nein, kein klarer Himmel {when} {where}. Das Wetter ist: {weather}."},
			},
			forecast.Mist: {
				True:  Phrases{"Ja, {when} {where} ist es neblig."},
				False: Phrases{"Nein, {when} {where} ist es nicht neblig."},
			},
			forecast.Wind: {
				True:  Phrases{"Ja, {when} {where} kann es windig sein."},
				False: Phrases{"Nein, {when} {where} weht kein Wind."},
			},
		},
		UnknownCondition: Phrases{"Ich weiß nicht, was genau du wissen willst. Das Wetter: {weather}."},

		Affirmative: Phrases{"Ja"},
		Negative:    Phrases{"Nein"},
		ItemNeeded: Phrases{"{article} {noun} macht Sinn", "{article} {noun} wäre praktisch",
			"{article} {noun} {verb} praktisch", "{article} {noun} {verb} eine gute Idee"},
		ItemNotNeeded: Phrases{"{article} {noun} {verb} {when} {where} unnötig",
			"{article} {noun} {verb} {when} {where} sinnlos",
			"{article} {noun} macht {when} {where} keinen Sinn"},
		UnknownItem: Phrases{"Ich bin mir nicht sicher, was {noun} ist, tut mir leid."},
		Weather:     Phrases{"Das Wetter ist: {weather}.", "Das Wetter: {weather}."},

		Singular: "ist",
		Plural:   "sind",

		Items: NewItemCatalog(
			singular("Regenmantel", "ein", forecast.Rain, forecast.Wind),
			singular("Schirm", "ein", forecast.Rain, forecast.Snow),
			plural("Gummistiefel", forecast.Rain),
			plural("Halbschuhe", forecast.Rain, forecast.Wind, forecast.Thunderstorm),
			singular("Kapuze", "eine", forecast.Rain),
			singular("Hut", "ein", forecast.Rain, forecast.Sun, forecast.Snow),
			singular("Regenschirm", "ein", forecast.Rain, forecast.Snow),
			singular("T-Shirt", "ein", forecast.Sun).withTemperature(forecast.Warm),
			plural("Sandalen", forecast.Sun).withTemperature(forecast.Warm),
			plural("kurze Hosen", forecast.Sun).withTemperature(forecast.Warm),
			singular("leichte Kleidung", "", forecast.Sun).withTemperature(forecast.Warm),
			plural("Winterstiefel", forecast.Snow).withTemperature(forecast.Cold),
			singular("Mantel", "ein", forecast.Rain, forecast.Snow, forecast.Wind, forecast.Thunderstorm).withTemperature(forecast.Cold),
			singular("Schal", "ein", forecast.Snow).withTemperature(forecast.Cold),
			plural("Handschuhe", forecast.Snow).withTemperature(forecast.Cold),
			singular("Mütze", "eine", forecast.Snow).withTemperature(forecast.Cold),
			singular("dicke Kleidung", "").withTemperature(forecast.Cold),
			plural("Stiefel", forecast.Rain, forecast.Snow, forecast.Wind).withTemperature(forecast.Cold),
			plural("lange Hosen", forecast.Wind, forecast.Snow).withTemperature(forecast.Cold),
			plural("lange Unterhosen", forecast.Snow).withTemperature(forecast.Cold),
			singular("Fleece", "ein", forecast.Wind).withTemperature(forecast.Cold),
			singular("Sonnenhut", "ein", forecast.Sun),
			singular("Sonnenschirm", "ein", forecast.Sun),
			singular("Kappe", "eine", forecast.Sun),
			singular("Sonnenbrille", "eine", forecast.Sun),
			singular("Sonnencreme", "", forecast.Sun),
			singular("paar Gummistiefel", "ein", forecast.Rain),
			singular("paar lange Unterhosen", "ein", forecast.Snow).withTemperature(forecast.Cold),
			singular("paar Handschuhe", "ein", forecast.Snow).withTemperature(forecast.Cold),
			singular("paar Stiefel", "ein", forecast.Rain, forecast.Snow, forecast.Wind, forecast.Thunderstorm).withTemperature(forecast.Cold),
			singular("paar Sandalen", "ein", forecast.Sun).withTemperature(forecast.Warm),
			singular("paar Winterstiefel", "ein", forecast.Snow).withTemperature(forecast.Cold),
			singular("Winterjacke", "eine", forecast.Snow).withTemperature(forecast.Cold),
			singular("Teleskop", "ein", forecast.Stars),
		),

		Format: germanFormat{weekdays: weekdays, months: months},
	}
}
