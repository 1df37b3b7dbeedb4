package domain

import (
	"fmt"
	"time"
)

// LocalDate is a calendar date with no time or zone attached. Streak and
// window logic operates on calendar dates in the user's timezone, so a DST
// transition can never fabricate or erase a day the way fixed 24-hour
// offsets would.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// LocalDateOf maps a UTC instant to the calendar date observed in loc.
// This is the single definition of "day" for all derived state.
func LocalDateOf(instant time.Time, loc *time.Location) LocalDate {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := instant.In(loc).Date()
	return LocalDate{Year: y, Month: m, Day: d}
}

// ParseLocalDate parses a YYYY-MM-DD string.
func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return LocalDate{}, fmt.Errorf("parse local date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return LocalDate{Year: y, Month: m, Day: d}, nil
}

// String formats the date as YYYY-MM-DD.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero date.
func (d LocalDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// midday anchors calendar arithmetic away from both midnights so date
// normalization through the time package is unambiguous.
func (d LocalDate) midday() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d LocalDate) AddDays(n int) LocalDate {
	y, m, day := d.midday().AddDate(0, 0, n).Date()
	return LocalDate{Year: y, Month: m, Day: day}
}

// DaysUntil returns the number of calendar days from d to other
// (positive when other is later).
func (d LocalDate) DaysUntil(other LocalDate) int {
	return int(other.midday().Sub(d.midday()) / (24 * time.Hour))
}

// Before reports whether d is earlier than other.
func (d LocalDate) Before(other LocalDate) bool {
	return d.DaysUntil(other) > 0
}

// After reports whether d is later than other.
func (d LocalDate) After(other LocalDate) bool {
	return d.DaysUntil(other) < 0
}

// Equal reports whether the two dates are the same calendar day.
func (d LocalDate) Equal(other LocalDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// Weekday returns the day of week of d.
func (d LocalDate) Weekday() time.Weekday {
	return d.midday().Weekday()
}

// LoadLocation resolves an IANA timezone name, defaulting to UTC for an
// empty or unknown name. Derivations must not fail because a collaborator
// stored a bad zone.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
