package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:70", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "08:05", "12:30", "23:30"} {
		min, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		if got := FormatClock(min); got != s {
			t.Errorf("FormatClock(ParseClock(%q)) = %q", s, got)
		}
	}
}

func TestFormatClock_WrapsPastMidnight(t *testing.T) {
	if got := FormatClock(24*60 + 30); got != "00:30" {
		t.Errorf("expected 00:30, got %s", got)
	}
}

func TestOverlaps_HalfOpen(t *testing.T) {
	cases := []struct {
		s1, e1, s2, e2 int
		want           bool
	}{
		{0, 60, 30, 90, true},
		{0, 60, 60, 120, false}, // touching endpoints do not overlap
		{60, 120, 0, 60, false},
		{0, 120, 30, 60, true}, // containment
		{30, 60, 0, 120, true},
		{0, 30, 60, 90, false},
	}

	for _, c := range cases {
		if got := Overlaps(c.s1, c.e1, c.s2, c.e2); got != c.want {
			t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v", c.s1, c.e1, c.s2, c.e2, got, c.want)
		}
	}
}

func TestDaysUntil_CeilingBehavior(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		date string
		want int
	}{
		{"2026-03-01", 0},  // earlier today counts as 0
		{"2026-03-02", 1},  // partial day rounds up
		{"2026-03-08", 7},
		{"2026-02-28", -1},
	}

	for _, c := range cases {
		date, err := ParseDate(c.date)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", c.date, err)
		}
		if got := DaysUntil(now, date); got != c.want {
			t.Errorf("DaysUntil(%s) = %d, want %d", c.date, got, c.want)
		}
	}
}
