package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidHourRange = errors.New("start hour must be before end hour within a day")
	ErrInvalidInterval  = errors.New("interval must be 15 or 30 minutes")
)

// BusinessHours bounds the bookable window of a single day. Slots start at
// StartHour and step by IntervalMinutes; the last slot starts one interval
// before EndHour.
type BusinessHours struct {
	startHour       int
	endHour         int
	intervalMinutes int
}

func NewBusinessHours(startHour, endHour, intervalMinutes int) (BusinessHours, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return BusinessHours{}, ErrInvalidHourRange
	}
	if intervalMinutes != 15 && intervalMinutes != 30 {
		return BusinessHours{}, ErrInvalidInterval
	}
	return BusinessHours{
		startHour:       startHour,
		endHour:         endHour,
		intervalMinutes: intervalMinutes,
	}, nil
}

func (h BusinessHours) StartHour() int       { return h.startHour }
func (h BusinessHours) EndHour() int         { return h.endHour }
func (h BusinessHours) IntervalMinutes() int { return h.intervalMinutes }

func (h BusinessHours) Interval() time.Duration {
	return time.Duration(h.intervalMinutes) * time.Minute
}

func (h BusinessHours) SlotsPerDay() int {
	return (h.endHour - h.startHour) * 60 / h.intervalMinutes
}

// Covers reports whether t falls on a slot boundary inside the daily window.
// The window is half-open: a slot may not start at EndHour.
func (h BusinessHours) Covers(t time.Time) bool {
	minuteOfDay := t.Hour()*60 + t.Minute()
	if minuteOfDay < h.startHour*60 || minuteOfDay >= h.endHour*60 {
		return false
	}
	return (minuteOfDay-h.startHour*60)%h.intervalMinutes == 0
}

// Horizon is the bookable date range: today through Dec 31 of the current
// year, derived from the injected wall clock.
type Horizon struct {
	from time.Time
	to   time.Time
}

func HorizonFrom(now time.Time) Horizon {
	today := DayOf(now)
	endOfYear := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, now.Location())
	return Horizon{from: today, to: endOfYear}
}

func (hz Horizon) From() time.Time { return hz.from }
func (hz Horizon) To() time.Time   { return hz.to }

func (hz Horizon) Contains(t time.Time) bool {
	return !t.Before(hz.from) && !t.After(hz.to)
}

// TruncateToMinute collapses sub-minute precision; two instants within the
// same minute occupy the same slot.
func TruncateToMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

// DayOf returns midnight of t's calendar day in t's location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
