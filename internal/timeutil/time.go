package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	// TimeFormat is the external clock representation.
	TimeFormat = "15:04"
	// DateFormat is the external calendar-date representation.
	DateFormat = "2006-01-02"
)

// ParseClock parses an HH:MM string into minutes from midnight.
func ParseClock(timeStr string) (int, error) {
	t, err := time.Parse(TimeFormat, timeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as HH:MM. Values past midnight
// wrap, which only matters for commute buffers spilling over the day end.
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", (minutes/60)%24, minutes%60)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// DaysUntil returns the whole number of days from now until the given date,
// rounding partial days up. Dates in the past come back negative.
func DaysUntil(now time.Time, date time.Time) int {
	return int(math.Ceil(date.Sub(now).Hours() / 24))
}

// Overlaps reports whether two half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints do not overlap.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && e1 > s2
}

// ValidClock reports whether the string parses as HH:MM.
func ValidClock(timeStr string) bool {
	_, err := ParseClock(timeStr)
	return err == nil
}
