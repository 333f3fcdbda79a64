package utils

import (
	"time"
)

// ShortDashDateLayout is the wire and storage format for day-granularity dates.
const ShortDashDateLayout = "2006-01-02"

// ParseDate parses a yyyy-mm-dd string into a UTC midnight time.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(ShortDashDateLayout, value)
}

// FormatDate renders a time as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(ShortDashDateLayout)
}

// Today returns the current date truncated to UTC midnight.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the first and last calendar day of the given month.
// Month lengths vary (28/29/30/31 days); the end bound is the actual last day.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// MonthName returns the English name of the month, matching the dashboard's
// month labels.
func MonthName(month time.Month) string {
	return month.String()
}
