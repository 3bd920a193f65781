package queries

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentView is the read model delivered in sync snapshots and detail
// responses. Completed carries the raw override flag; temporal status is
// derived by the classifier at query time, never stored here.
type AppointmentView struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   uuid.UUID `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Message       string    `json:"message"`
	Completed     *bool     `json:"completed,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AppointmentListItem is an AppointmentView with classification applied for a
// specific viewer and instant.
type AppointmentListItem struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   uuid.UUID `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	MostRecent    bool      `json:"most_recent"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}
