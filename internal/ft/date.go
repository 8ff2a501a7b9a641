package ft

import "time"

// dateLayouts are the accepted input layouts, tried in order. Day-first
// slash forms come before month-first, so an ambiguous value like
// "01/02/2021" reads as 1 February. Unambiguous month-first values such as
// "12/31/2021" fail the day-first layout and fall through.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

// DateFormats lists the accepted date patterns in operator-facing notation,
// in the order they are tried. Shown whenever a date is rejected.
var DateFormats = []string{
	"YYYY-MM-DD [HH:MM[:SS]]",
	"DD/MM/YYYY [HH:MM[:SS]]",
	"MM/DD/YYYY [HH:MM[:SS]]",
}

// ParseDate interprets a date/time string against the accepted layouts and
// returns the parsed instant and true on the first match. Values without a
// time of day mean midnight. Instants are in the system's local time zone.
func ParseDate(text string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
