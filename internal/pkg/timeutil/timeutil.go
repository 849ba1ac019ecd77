// Package timeutil compares the date ("2006-01-02") and time ("15:04")
// strings carried on bookings and room snapshots against the wall clock.
package timeutil

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Clock abstracts time.Now so callers can pin the wall clock in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

func validDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

func validTime(t string) bool {
	_, err := time.Parse(TimeLayout, t)
	return err == nil
}

// HasStartTimePassed reports whether the wall clock has reached the given
// date and start time. Malformed inputs count as not passed.
func HasStartTimePassed(clock Clock, date, start string) bool {
	if !validDate(date) || !validTime(start) {
		return false
	}
	now := clock.Now()
	nd, nt := now.Format(DateLayout), now.Format(TimeLayout)
	return date < nd || (date == nd && start <= nt)
}

// HasEndTimePassed reports whether the wall clock has reached the given date
// and end time.
func HasEndTimePassed(clock Clock, date, end string) bool {
	if !validDate(date) || !validTime(end) {
		return false
	}
	now := clock.Now()
	nd, nt := now.Format(DateLayout), now.Format(TimeLayout)
	return date < nd || (date == nd && end <= nt)
}

// IsPreStart reports whether a reservation for the given date and start time
// is still ahead of the wall clock.
func IsPreStart(clock Clock, date, start string) bool {
	if !validDate(date) || !validTime(start) {
		return false
	}
	return !HasStartTimePassed(clock, date, start)
}

// CanCancelBooking reports whether a booking may still be cancelled, which
// is the case until its start time passes.
func CanCancelBooking(clock Clock, date, start string) bool {
	return IsPreStart(clock, date, start)
}

// AddHours shifts an "15:04" time by the given number of hours, wrapping
// past midnight in either direction (23:00 + 2h -> 01:00).
func AddHours(t string, hours int) (string, bool) {
	parsed, err := time.Parse(TimeLayout, t)
	if err != nil {
		return "", false
	}
	minutes := parsed.Hour()*60 + parsed.Minute() + hours*60
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format(TimeLayout), true
}

// HoursBetween returns the whole hours from start to end, rounding partial
// hours up. An end at or before the start is read as wrapping past midnight.
func HoursBetween(start, end string) (int, bool) {
	s, err := time.Parse(TimeLayout, start)
	if err != nil {
		return 0, false
	}
	e, err := time.Parse(TimeLayout, end)
	if err != nil {
		return 0, false
	}
	minutes := (e.Hour()*60 + e.Minute()) - (s.Hour()*60 + s.Minute())
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return (minutes + 59) / 60, true
}
