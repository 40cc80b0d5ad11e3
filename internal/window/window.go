// Package window models the inclusive publish-date range a digest covers.
package window

import (
	"fmt"
	"strings"
	"time"
)

// Window is inclusive on both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// ForDays builds the window ending at the last instant of now's day and
// starting at midnight `days` days earlier, in now's location.
func ForDays(days int, now time.Time) Window {
	y, m, d := now.Date()
	loc := now.Location()
	end := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	start := time.Date(y, m, d-days, 0, 0, 0, 0, loc)
	return Window{Start: start, End: end}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}

var layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC850,
	time.ANSIC,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 Z",
	"2 Jan 2006 15:04:05 -0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a feed-native date string.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}
