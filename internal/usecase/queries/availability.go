package queries

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
)

var ErrInvalidCalendarDate = errs.New("invalid calendar date")

// MonthDay decorates one grid cell with per-day availability.
type MonthDay struct {
	Day        time.Time `json:"day"`
	InMonth    bool      `json:"in_month"`
	Today      bool      `json:"today"`
	Past       bool      `json:"past"`
	TakenCount int       `json:"taken_count"`
	Full       bool      `json:"full"`
	HasFree    bool      `json:"has_free"`
}

type MonthAvailability struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leading_blanks"`
	Days          []MonthDay `json:"days"`
}

type DayAvailability struct {
	Day   time.Time       `json:"day"`
	Slots []schedule.Slot `json:"slots"`
}

// Availability maintains the derived slot index over live snapshots and
// answers calendar queries from it. The index pointer is swapped atomically so
// readers never observe a partially rebuilt index.
type Availability struct {
	stream CollectionStream
	hours  schedule.BusinessHours
	clock  clock.Clock
	logger *slog.Logger
	index  atomic.Pointer[schedule.AvailabilityIndex]
}

func NewAvailability(stream CollectionStream, hours schedule.BusinessHours, clk clock.Clock, logger *slog.Logger) *Availability {
	a := &Availability{
		stream: stream,
		hours:  hours,
		clock:  clk,
		logger: logger,
	}
	if stream.Loaded() {
		a.rebuild(stream.Current())
	}
	return a
}

// Run consumes snapshot updates until ctx is done, rebuilding the index per
// snapshot. Each rebuild replaces the previous index wholesale.
func (a *Availability) Run(ctx context.Context) {
	updates, cancel := a.stream.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			a.rebuild(snapshot)
		}
	}
}

func (a *Availability) rebuild(snapshot []AppointmentView) {
	scheduled := make([]time.Time, 0, len(snapshot))
	for _, v := range snapshot {
		scheduled = append(scheduled, v.ScheduledAt)
	}
	idx := schedule.NewAvailabilityIndex(scheduled)
	a.index.Store(idx)
	a.logger.Debug("availability index rebuilt", "appointments", len(snapshot), "slots", idx.Size())
}

// IsSlotTaken satisfies the booking guard's slot check against the freshest
// index.
func (a *Availability) IsSlotTaken(t time.Time) bool {
	return a.index.Load().IsSlotTaken(t)
}

// Month renders the 6x7 month grid decorated with taken counts and fullness.
func (a *Availability) Month(year int, month time.Month) (MonthAvailability, error) {
	if year < 1 || month < time.January || month > time.December {
		return MonthAvailability{}, ErrInvalidCalendarDate
	}

	now := a.clock.Now()
	grid := schedule.NewMonthGrid(year, month, now)
	idx := a.index.Load()

	days := make([]MonthDay, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		taken := idx.CountTakenSlots(cell.Day)
		days = append(days, MonthDay{
			Day:        cell.Day,
			InMonth:    cell.InMonth,
			Today:      cell.Today,
			Past:       cell.Past,
			TakenCount: taken,
			Full:       idx.IsDayFull(cell.Day, a.hours),
			HasFree:    !cell.Past && taken < a.hours.SlotsPerDay(),
		})
	}

	return MonthAvailability{
		Year:          grid.Year,
		Month:         grid.Month,
		LeadingBlanks: grid.LeadingBlanks,
		Days:          days,
	}, nil
}

// Day enumerates the slot column for one calendar day.
func (a *Availability) Day(year int, month time.Month, day int) (DayAvailability, error) {
	if year < 1 || month < time.January || month > time.December || day < 1 || day > 31 {
		return DayAvailability{}, ErrInvalidCalendarDate
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, a.clock.Now().Location())
	if date.Month() != month {
		// Day overflowed the month, e.g. Feb 30.
		return DayAvailability{}, ErrInvalidCalendarDate
	}

	return DayAvailability{
		Day:   date,
		Slots: schedule.DaySlots(date, a.hours, a.clock.Now(), a.index.Load()),
	}, nil
}
