// Package valueobject contains domain value objects for the ContaComigo system.
package valueobject

import (
	"encoding/json"
	"fmt"
	"time"
)

// DayLayout is the wire and storage format of a CalendarDay.
const DayLayout = "2006-01-02"

// CalendarDay is a date without a time of day or zone.
// Two days are equal when year, month and day match, regardless of the
// location the originating timestamps were taken in.
type CalendarDay struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t in the given location.
// A nil location uses t's own location.
func DayOf(t time.Time, loc *time.Location) CalendarDay {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return CalendarDay{Year: y, Month: m, Day: d}
}

// NewCalendarDay builds a normalized CalendarDay (e.g. Feb 30 becomes Mar 2).
func NewCalendarDay(year int, month time.Month, day int) CalendarDay {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil)
}

// ParseCalendarDay parses a YYYY-MM-DD string.
func ParseCalendarDay(s string) (CalendarDay, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return CalendarDay{}, fmt.Errorf("invalid calendar day %q: %w", s, err)
	}
	return DayOf(t, nil), nil
}

// IsZero reports whether the day is unset.
func (d CalendarDay) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// midnight returns the start of the day in UTC, used for day arithmetic only.
func (d CalendarDay) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether both values name the same day.
func (d CalendarDay) Equal(other CalendarDay) bool {
	return d == other
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDay) Before(other CalendarDay) bool {
	return d.midnight().Before(other.midnight())
}

// After reports whether d is strictly later than other.
func (d CalendarDay) After(other CalendarDay) bool {
	return d.midnight().After(other.midnight())
}

// DaysUntil returns the signed number of days from d to other.
func (d CalendarDay) DaysUntil(other CalendarDay) int {
	return int(other.midnight().Sub(d.midnight()).Hours() / 24)
}

// AddDays returns the day n days after d (n may be negative).
func (d CalendarDay) AddDays(n int) CalendarDay {
	return DayOf(d.midnight().AddDate(0, 0, n), nil)
}

// FirstOfMonth returns the first day of d's month.
func (d CalendarDay) FirstOfMonth() CalendarDay {
	return CalendarDay{Year: d.Year, Month: d.Month, Day: 1}
}

// DaysInMonth returns the number of days in d's month.
func (d CalendarDay) DaysInMonth() int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns the day of the week.
func (d CalendarDay) Weekday() time.Weekday {
	return d.midnight().Weekday()
}

// String formats the day as YYYY-MM-DD.
func (d CalendarDay) String() string {
	if d.IsZero() {
		return ""
	}
	return d.midnight().Format(DayLayout)
}

// MarshalJSON encodes the day as a YYYY-MM-DD string.
func (d CalendarDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts YYYY-MM-DD strings and full RFC 3339 timestamps,
// the latter so older saves that stored ISO timestamps still load.
func (d *CalendarDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = CalendarDay{}
		return nil
	}
	if len(s) > len(DayLayout) {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid calendar day %q: %w", s, err)
		}
		*d = DayOf(t, nil)
		return nil
	}
	parsed, err := ParseCalendarDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
