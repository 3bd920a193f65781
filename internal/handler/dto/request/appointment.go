package request

import (
	"strings"
	"time"
)

// SubmitAppointmentRequest carries a booking submission. ScheduledAt marks
// the slot start; sub-minute precision is discarded downstream.
type SubmitAppointmentRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Message     string    `json:"message" binding:"required"`
}

func (r SubmitAppointmentRequest) TrimmedMessage() string {
	return strings.TrimSpace(r.Message)
}

type SetCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}
