package appointment

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// ClassifyValues derives the temporal status of an appointment. An explicit
// completed flag is authoritative; otherwise the appointment is completed
// once its scheduled time has passed. Both the requester list view and the
// operator aggregate view classify through this single function.
func ClassifyValues(scheduledAt time.Time, completed *bool, now time.Time) Status {
	if completed != nil {
		if *completed {
			return StatusCompleted
		}
		return StatusPending
	}
	if scheduledAt.Before(now) {
		return StatusCompleted
	}
	return StatusPending
}

// StatusCounts aggregates classifier output across a scoped collection.
type StatusCounts struct {
	Total     int
	Pending   int
	Completed int
}

func (c *StatusCounts) Add(s Status) {
	c.Total++
	switch s {
	case StatusCompleted:
		c.Completed++
	default:
		c.Pending++
	}
}
