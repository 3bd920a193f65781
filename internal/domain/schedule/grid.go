package schedule

import "time"

type SlotStatus string

const (
	SlotFree  SlotStatus = "free"
	SlotTaken SlotStatus = "taken"
	SlotPast  SlotStatus = "past"
)

// Slot is a derived (day, time) pair; never persisted.
type Slot struct {
	Start  time.Time
	Status SlotStatus
}

// DayCell is one cell of a rendered month grid. Overflow cells filled in from
// adjacent months carry InMonth=false and are not interactive.
type DayCell struct {
	Day     time.Time
	InMonth bool
	Today   bool
	Past    bool
}

const (
	gridWeeks = 6
	gridCells = gridWeeks * 7
)

type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Cells         []DayCell
}

// NewMonthGrid builds the fixed 6x7 week-row grid for (year, month).
// LeadingBlanks is the Sunday-first weekday offset of day 1; the cell slice
// always holds 42 entries so the caller renders a stable shape. Output is a
// pure function of its inputs.
func NewMonthGrid(year int, month time.Month, now time.Time) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	leading := int(first.Weekday())
	today := DayOf(now)

	cells := make([]DayCell, 0, gridCells)
	start := first.AddDate(0, 0, -leading)
	for i := 0; i < gridCells; i++ {
		day := start.AddDate(0, 0, i)
		cells = append(cells, DayCell{
			Day:     day,
			InMonth: day.Month() == month && day.Year() == year,
			Today:   day.Equal(today),
			Past:    day.Before(today),
		})
	}

	return MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: leading,
		Cells:         cells,
	}
}

// DaySlots enumerates every slot of the given day in ascending order. Days
// fully in the past still enumerate, marked past. A booked slot stays taken
// even once it has passed.
func DaySlots(day time.Time, hours BusinessHours, now time.Time, idx *AvailabilityIndex) []Slot {
	dayStart := DayOf(day)
	slots := make([]Slot, 0, hours.SlotsPerDay())

	start := dayStart.Add(time.Duration(hours.StartHour()) * time.Hour)
	end := dayStart.Add(time.Duration(hours.EndHour()) * time.Hour)
	for t := start; t.Before(end); t = t.Add(hours.Interval()) {
		status := SlotFree
		switch {
		case idx.IsSlotTaken(t):
			status = SlotTaken
		case t.Before(now):
			status = SlotPast
		}
		slots = append(slots, Slot{Start: t, Status: status})
	}
	return slots
}
