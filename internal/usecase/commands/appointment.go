package commands

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/appointment"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	// Validation rejections, re-surfaced to the requester as form feedback.
	ErrDateRequired    = errs.New("scheduled date is required")
	ErrMessageRequired = errs.New("message is required")
	ErrOutOfHorizon    = errs.New("scheduled time outside the bookable window")
	ErrSlotTaken       = errs.New("slot already taken")

	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrForbidden           = errs.New("not allowed to modify this appointment")
	ErrWriteFailed         = errs.New("appointment write failed")
	ErrWriteTimeout        = errs.New("appointment write timed out")
	ErrDomainValidation    = errs.New("domain validation error")
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *appointment.Appointment) (*queries.AppointmentView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error)
}

// SlotChecker answers against the freshest availability index, rebuilt from
// live sync snapshots rather than the stale state a form was opened with.
type SlotChecker interface {
	IsSlotTaken(t time.Time) bool
}

type SubmitAppointmentInput struct {
	ScheduledAt time.Time
	Message     string
}

type AppointmentCommands interface {
	Submit(ctx context.Context, input SubmitAppointmentInput, requesterID uuid.UUID, requesterName string) (*queries.AppointmentView, error)
	Delete(ctx context.Context, id uuid.UUID, actor uuid.UUID, role user.Role) error
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool, role user.Role) error
}

type appointmentCommandsImpl struct {
	repo          AppointmentRepository
	slots         SlotChecker
	hours         schedule.BusinessHours
	clock         clock.Clock
	submitTimeout time.Duration
}

func NewAppointmentCommands(
	repo AppointmentRepository,
	slots SlotChecker,
	hours schedule.BusinessHours,
	clk clock.Clock,
	submitTimeout time.Duration,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		repo:          repo,
		slots:         slots,
		hours:         hours,
		clock:         clk,
		submitTimeout: submitTimeout,
	}
}

// Submit is the booking conflict guard. Preconditions fail fast in a fixed
// order; on pass it performs the single append, delegating true double-submit
// races to the store's unique constraint. Exactly one appointment is created
// per successful call; callers must re-validate before any retry.
func (c *appointmentCommandsImpl) Submit(
	ctx context.Context,
	input SubmitAppointmentInput,
	requesterID uuid.UUID,
	requesterName string,
) (*queries.AppointmentView, error) {
	now := c.clock.Now()

	if input.ScheduledAt.IsZero() {
		return nil, ErrDateRequired
	}

	scheduledAt := schedule.TruncateToMinute(input.ScheduledAt)
	if !schedule.HorizonFrom(now).Contains(scheduledAt) || !c.hours.Covers(scheduledAt) {
		return nil, ErrOutOfHorizon
	}

	if input.Message == "" {
		return nil, ErrMessageRequired
	}

	if c.slots.IsSlotTaken(scheduledAt) {
		return nil, ErrSlotTaken
	}

	entity, err := appointment.NewAppointment(requesterID, requesterName, scheduledAt, input.Message)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrMessageRequired):
			return nil, ErrMessageRequired
		case errors.Is(err, appointment.ErrDateRequired):
			return nil, ErrDateRequired
		default:
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	writeCtx, cancel := context.WithTimeout(ctx, c.submitTimeout)
	defer cancel()

	view, err := c.repo.Create(writeCtx, entity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			// Lost the write-ordering race to a concurrent client.
			return nil, ErrSlotTaken
		case errors.Is(err, context.DeadlineExceeded):
			return nil, errs.Mark(err, ErrWriteTimeout)
		default:
			return nil, errs.Mark(err, ErrWriteFailed)
		}
	}

	return view, nil
}

// Delete removes a request. The operator may delete anything; a requester
// only their own. Deleting an id that is already gone succeeds so concurrent
// deletes stay race-free.
func (c *appointmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor uuid.UUID, role user.Role) error {
	if role != user.RoleOperator {
		view, err := c.repo.FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, ErrWriteFailed)
		}
		if view.RequesterID != actor {
			return ErrForbidden
		}
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrWriteFailed)
	}
	return nil
}

// SetCompleted persists the operator-only classification override.
func (c *appointmentCommandsImpl) SetCompleted(ctx context.Context, id uuid.UUID, completed bool, role user.Role) error {
	if role != user.RoleOperator {
		return ErrForbidden
	}

	if err := c.repo.SetCompleted(ctx, id, completed); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		return errs.Mark(err, ErrWriteFailed)
	}
	return nil
}
