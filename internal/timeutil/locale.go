package timeutil

import "time"

// Supported locales for weekday names.
const (
	LocaleEN = "en"
	LocaleDE = "de"
)

var weekdayNames = map[string][7][2]string{
	LocaleEN: {
		{"Sun", "Sunday"}, {"Mon", "Monday"}, {"Tue", "Tuesday"}, {"Wed", "Wednesday"},
		{"Thu", "Thursday"}, {"Fri", "Friday"}, {"Sat", "Saturday"},
	},
	LocaleDE: {
		{"So.", "Sonntag"}, {"Mo.", "Montag"}, {"Di.", "Dienstag"}, {"Mi.", "Mittwoch"},
		{"Do.", "Donnerstag"}, {"Fr.", "Freitag"}, {"Sa.", "Samstag"},
	},
}

// IsSupportedLocale reports whether weekday names exist for locale.
func IsSupportedLocale(locale string) bool {
	_, ok := weekdayNames[locale]
	return ok
}

// WeekdayShort returns the abbreviated weekday of t, falling back to English.
func WeekdayShort(t time.Time, locale string) string {
	return weekdayName(t, locale, 0)
}

// WeekdayLong returns the full weekday name of t, falling back to English.
func WeekdayLong(t time.Time, locale string) string {
	return weekdayName(t, locale, 1)
}

func weekdayName(t time.Time, locale string, form int) string {
	names, ok := weekdayNames[locale]
	if !ok {
		names = weekdayNames[LocaleEN]
	}
	return names[t.Weekday()][form]
}
