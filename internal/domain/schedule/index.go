package schedule

import "time"

// AvailabilityIndex is a derived view over the live appointment collection,
// keyed by minute-truncated timestamp. It is rebuilt wholesale from each sync
// snapshot and swapped in atomically; it never mutates in place and never
// polls the store.
type AvailabilityIndex struct {
	taken map[int64]struct{}
	byDay map[int64]int
}

// NewAvailabilityIndex builds the index from the scheduled-at values of the
// full current collection. O(n) build, O(1) point queries.
func NewAvailabilityIndex(scheduledAt []time.Time) *AvailabilityIndex {
	idx := &AvailabilityIndex{
		taken: make(map[int64]struct{}, len(scheduledAt)),
		byDay: make(map[int64]int),
	}
	for _, t := range scheduledAt {
		key := TruncateToMinute(t).Unix()
		if _, dup := idx.taken[key]; dup {
			// Same-minute duplicates collapse to one slot.
			continue
		}
		idx.taken[key] = struct{}{}
		idx.byDay[DayOf(t).Unix()]++
	}
	return idx
}

func (x *AvailabilityIndex) IsSlotTaken(t time.Time) bool {
	if x == nil {
		return false
	}
	_, ok := x.taken[TruncateToMinute(t).Unix()]
	return ok
}

func (x *AvailabilityIndex) CountTakenSlots(day time.Time) int {
	if x == nil {
		return 0
	}
	return x.byDay[DayOf(day).Unix()]
}

func (x *AvailabilityIndex) IsDayFull(day time.Time, hours BusinessHours) bool {
	return x.CountTakenSlots(day) >= hours.SlotsPerDay()
}

func (x *AvailabilityIndex) Size() int {
	if x == nil {
		return 0
	}
	return len(x.taken)
}
