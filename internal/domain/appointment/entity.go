package appointment

import (
	"errors"
	"strings"
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrDateRequired    = errors.New("scheduled time is required")
	ErrMessageRequired = errors.New("message cannot be empty")
	ErrEmptyRequester  = errors.New("requester is required")
)

// Appointment is the booked unit. Immutable after creation except for the
// operator-controlled completed override; deletion is final.
type Appointment struct {
	id            uuid.UUID
	requesterID   uuid.UUID
	requesterName string
	scheduledAt   time.Time
	message       string
	completed     *bool
	createdAt     time.Time
}

// NewAppointment validates the requester-supplied fields and truncates
// scheduledAt to the minute, so the stored value always matches the slot key
// the availability index will derive from it. Horizon and business-hour
// checks belong to the submission guard, which owns their failure order.
func NewAppointment(requesterID uuid.UUID, requesterName string, scheduledAt time.Time, message string) (*Appointment, error) {
	if requesterID == uuid.Nil || strings.TrimSpace(requesterName) == "" {
		return nil, ErrEmptyRequester
	}
	if scheduledAt.IsZero() {
		return nil, ErrDateRequired
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrMessageRequired
	}

	return &Appointment{
		id:            uuid.New(),
		requesterID:   requesterID,
		requesterName: strings.TrimSpace(requesterName),
		scheduledAt:   schedule.TruncateToMinute(scheduledAt),
		message:       strings.TrimSpace(message),
	}, nil
}

func ReconstructAppointment(
	id, requesterID uuid.UUID,
	requesterName string,
	scheduledAt time.Time,
	message string,
	completed *bool,
	createdAt time.Time,
) *Appointment {
	return &Appointment{
		id:            id,
		requesterID:   requesterID,
		requesterName: requesterName,
		scheduledAt:   scheduledAt,
		message:       message,
		completed:     completed,
		createdAt:     createdAt,
	}
}

func (a *Appointment) Classify(now time.Time) Status {
	return ClassifyValues(a.scheduledAt, a.completed, now)
}

func (a *Appointment) OwnedBy(userID uuid.UUID) bool {
	return a.requesterID == userID
}

func (a *Appointment) ID() uuid.UUID         { return a.id }
func (a *Appointment) RequesterID() uuid.UUID { return a.requesterID }
func (a *Appointment) RequesterName() string { return a.requesterName }
func (a *Appointment) ScheduledAt() time.Time { return a.scheduledAt }
func (a *Appointment) Message() string       { return a.message }
func (a *Appointment) Completed() *bool      { return a.completed }
func (a *Appointment) CreatedAt() time.Time  { return a.createdAt }
