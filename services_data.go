package messageformat

// Hardcoded pattern tables for the locales shipped by default. Layouts use Go
// reference-time notation; list and relative-time patterns use {0}/{1}
// placeholders the way CLDR pattern data does.

var dateLayouts = map[string]map[string]string{
	"en": {
		"short":  "1/2/06",
		"medium": "Jan 2, 2006",
		"long":   "January 2, 2006",
		"full":   "Monday, January 2, 2006",
	},
	"es": {
		"short":  "2/1/06",
		"medium": "2 Jan 2006",
		"long":   "2 de January de 2006",
		"full":   "Monday, 2 de January de 2006",
	},
	"de": {
		"short":  "02.01.06",
		"medium": "02.01.2006",
		"long":   "2. January 2006",
		"full":   "Monday, 2. January 2006",
	},
	"fr": {
		"short":  "02/01/2006",
		"medium": "2 Jan 2006",
		"long":   "2 January 2006",
		"full":   "Monday 2 January 2006",
	},
}

var timeLayouts = map[string]map[string]string{
	"en": {
		"short":  "3:04 PM",
		"medium": "3:04:05 PM",
		"long":   "3:04:05 PM MST",
		"full":   "3:04:05 PM MST",
	},
	"es": {
		"short":  "15:04",
		"medium": "15:04:05",
		"long":   "15:04:05 MST",
		"full":   "15:04:05 MST",
	},
	"de": {
		"short":  "15:04",
		"medium": "15:04:05",
		"long":   "15:04:05 MST",
		"full":   "15:04:05 MST",
	},
	"fr": {
		"short":  "15:04",
		"medium": "15:04:05",
		"long":   "15:04:05 MST",
		"full":   "15:04:05 MST",
	},
}

var dateTimeJoiners = map[string]map[string]string{
	"en": {
		"short":  "{date}, {time}",
		"medium": "{date}, {time}",
		"long":   "{date} at {time}",
		"full":   "{date} at {time}",
	},
	"es": {
		"short":  "{date}, {time}",
		"medium": "{date}, {time}",
		"long":   "{date}, {time}",
		"full":   "{date}, {time}",
	},
}

type listPatternSet struct {
	Two    string
	Start  string
	Middle string
	End    string
}

var defaultListPatterns = listPatternSet{
	Two:    "{0} and {1}",
	Start:  "{0}, {1}",
	Middle: "{0}, {1}",
	End:    "{0}, and {1}",
}

var listPatternData = map[string]map[string]listPatternSet{
	"en": {
		"and": {
			Two:    "{0} and {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0}, and {1}",
		},
		"and-short": {
			Two:    "{0} & {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0}, & {1}",
		},
		"or": {
			Two:    "{0} or {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0}, or {1}",
		},
		"unit": {
			Two:    "{0}, {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0}, {1}",
		},
	},
	"es": {
		"and": {
			Two:    "{0} y {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} y {1}",
		},
		"or": {
			Two:    "{0} o {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} o {1}",
		},
	},
	"de": {
		"and": {
			Two:    "{0} und {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} und {1}",
		},
	},
	"fr": {
		"and": {
			Two:    "{0} et {1}",
			Start:  "{0}, {1}",
			Middle: "{0}, {1}",
			End:    "{0} et {1}",
		},
	},
}

type relativePhraseSet struct {
	Future string
	Past   string
	Units  map[PluralCategory]string
}

var relativeTimeData = map[string]map[string]relativePhraseSet{
	"en": {
		"second": {
			Future: "in {0} {unit}",
			Past:   "{0} {unit} ago",
			Units:  map[PluralCategory]string{PluralOne: "second", PluralOther: "seconds"},
		},
		"minute": {
			Future: "in {0} {unit}",
			Past:   "{0} {unit} ago",
			Units:  map[PluralCategory]string{PluralOne: "minute", PluralOther: "minutes"},
		},
		"hour": {
			Future: "in {0} {unit}",
			Past:   "{0} {unit} ago",
			Units:  map[PluralCategory]string{PluralOne: "hour", PluralOther: "hours"},
		},
		"day": {
			Future: "in {0} {unit}",
			Past:   "{0} {unit} ago",
			Units:  map[PluralCategory]string{PluralOne: "day", PluralOther: "days"},
		},
		"week": {
			Future: "in {0} {unit}",
			Past:   "{0} {unit} ago",
			Units:  map[PluralCategory]string{PluralOne: "week", PluralOther: "weeks"},
		},
		"month": {
			Future: "in {0} {unit}",
			Past:   "{0} {unit} ago",
			Units:  map[PluralCategory]string{PluralOne: "month", PluralOther: "months"},
		},
		"year": {
			Future: "in {0} {unit}",
			Past:   "{0} {unit} ago",
			Units:  map[PluralCategory]string{PluralOne: "year", PluralOther: "years"},
		},
	},
	"es": {
		"day": {
			Future: "dentro de {0} {unit}",
			Past:   "hace {0} {unit}",
			Units:  map[PluralCategory]string{PluralOne: "día", PluralOther: "días"},
		},
		"hour": {
			Future: "dentro de {0} {unit}",
			Past:   "hace {0} {unit}",
			Units:  map[PluralCategory]string{PluralOne: "hora", PluralOther: "horas"},
		},
		"month": {
			Future: "dentro de {0} {unit}",
			Past:   "hace {0} {unit}",
			Units:  map[PluralCategory]string{PluralOne: "mes", PluralOther: "meses"},
		},
		"year": {
			Future: "dentro de {0} {unit}",
			Past:   "hace {0} {unit}",
			Units:  map[PluralCategory]string{PluralOne: "año", PluralOther: "años"},
		},
	},
}
