package utils

import (
	"errors"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
	layoutFormTime = "2006-01-02T15:04"
)

// IST is the organisation's display timezone (UTC+5:30, no DST).
var IST = time.FixedZone("IST", 5*60*60+30*60)

var errUnknownDateLayout = errors.New("unrecognised date layout")

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseEventDate accepts RFC 3339, an HTML datetime-local value, "YYYY-MM-DD HH:MM:SS"
// or a bare date. Values without an offset are read as UTC.
func ParseEventDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, layoutFormTime, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errUnknownDateLayout
}

// FormatDate formats time to YYYY-MM-DD in the display timezone.
func FormatDate(t time.Time) string {
	return t.In(IST).Format(layoutDate)
}
