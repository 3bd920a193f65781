package response

import (
	"time"

	"slotbook/internal/domain/appointment"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   uuid.UUID `json:"requesterId"`
	RequesterName string    `json:"requesterName"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	Message       string    `json:"message"`
	Completed     *bool     `json:"completed,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AppointmentListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   uuid.UUID `json:"requesterId"`
	RequesterName string    `json:"requesterName"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	MostRecent    bool      `json:"mostRecent"`
	CreatedAt     time.Time `json:"createdAt"`
}

type StatusCountsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

func FromAppointmentView(view *queries.AppointmentView) *AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAppointmentListItem(item *queries.AppointmentListItem) *AppointmentListItemResponse {
	var resp AppointmentListItemResponse
	_ = copier.Copy(&resp, item)
	return &resp
}

func FromAppointmentList(items []queries.AppointmentListItem) []AppointmentListItemResponse {
	resp := make([]AppointmentListItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *FromAppointmentListItem(&items[i]))
	}
	return resp
}

func FromStatusCounts(counts appointment.StatusCounts) StatusCountsResponse {
	return StatusCountsResponse{
		Total:     counts.Total,
		Pending:   counts.Pending,
		Completed: counts.Completed,
	}
}
