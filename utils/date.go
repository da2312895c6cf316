package utils

import "time"

// DateLayout is the calendar-date format used in all data files and request
// payloads.
const DateLayout = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
