package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date on the salon's local wall clock. There is no
// time zone attached; the provider runs on a single local clock.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses an ISO calendar date such as "2026-09-01".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.toTime().Format("2006-01-02")
}

func (d Date) Weekday() time.Weekday {
	return d.toTime().Weekday()
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// TimeOfDay is a minute-resolution time of day, stored as minutes since
// midnight so slot arithmetic stays plain integer math.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:MM" clock value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Interval is a half-open [Start, End) span within a single day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Overlaps reports whether two half-open intervals share at least one
// instant. A zero-length interval never overlaps anything.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// Booking is a committed appointment. Its identity is the (Date, Start)
// pair; there is no separate identifier. The duration is copied from the
// catalog at booking time, so later catalog changes never alter it.
type Booking struct {
	Date            Date
	Start           TimeOfDay
	DurationMinutes int
	Service         string
}

func (b Booking) End() TimeOfDay {
	return b.Start.Add(b.DurationMinutes)
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End()}
}
