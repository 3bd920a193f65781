//go:build unit || e2e

package builder

import (
	"time"

	domappointment "slotbook/internal/domain/appointment"
	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID            uuid.UUID
	RequesterID   uuid.UUID
	RequesterName string
	ScheduledAt   time.Time
	Message       string
	Completed     *bool
	CreatedAt     time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:            uuid.New(),
		RequesterID:   uuid.New(),
		RequesterName: "Test Requester",
		ScheduledAt:   time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC),
		Message:       "First visit, please call ahead",
		CreatedAt:     time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithScheduledAt(t time.Time) *AppointmentBuilder {
	b.ScheduledAt = t
	return b
}

func (b *AppointmentBuilder) WithMessage(msg string) *AppointmentBuilder {
	b.Message = msg
	return b
}

func (b *AppointmentBuilder) WithCompleted(completed bool) *AppointmentBuilder {
	b.Completed = &completed
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*domappointment.Appointment, error) {
	return domappointment.NewAppointment(b.RequesterID, b.RequesterName, b.ScheduledAt, b.Message)
}

func (b *AppointmentBuilder) BuildView() queries.AppointmentView {
	return queries.AppointmentView{
		ID:            b.ID,
		RequesterID:   b.RequesterID,
		RequesterName: b.RequesterName,
		ScheduledAt:   b.ScheduledAt,
		Message:       b.Message,
		Completed:     b.Completed,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildSubmitInput() commands.SubmitAppointmentInput {
	return commands.SubmitAppointmentInput{
		ScheduledAt: b.ScheduledAt,
		Message:     b.Message,
	}
}

func (b *AppointmentBuilder) BuildSubmitRequestDTO() reqdto.SubmitAppointmentRequest {
	return reqdto.SubmitAppointmentRequest{
		ScheduledAt: b.ScheduledAt,
		Message:     b.Message,
	}
}
