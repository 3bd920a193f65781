package queries

import (
	"context"
	"time"

	"slotbook/internal/domain/appointment"
	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound  = errs.New("appointment not found")
	ErrForbidden            = errs.New("not allowed to view this appointment")
	ErrSnapshotUnavailable  = errs.New("appointment snapshot not loaded")
	ErrAppointmentListQuery = errs.New("failed to query appointments")
)

// CollectionStream exposes the live collection snapshot. Current returns the
// last full snapshot; Subscribe delivers each subsequent one. Satisfied by
// the sync hub.
type CollectionStream interface {
	Current() []AppointmentView
	Loaded() bool
	Err() error
	Subscribe() (<-chan []AppointmentView, func())
}

type AppointmentReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
}

type AppointmentQueries interface {
	ListFor(ctx context.Context, viewer uuid.UUID, role user.Role) ([]AppointmentListItem, error)
	GetByID(ctx context.Context, id uuid.UUID, viewer uuid.UUID, role user.Role) (*AppointmentListItem, error)
	StatusCounts(ctx context.Context) (appointment.StatusCounts, error)
}

type appointmentQueriesImpl struct {
	stream CollectionStream
	reader AppointmentReader
	clock  clock.Clock
}

func NewAppointmentQueries(stream CollectionStream, reader AppointmentReader, clk clock.Clock) AppointmentQueries {
	return &appointmentQueriesImpl{stream: stream, reader: reader, clock: clk}
}

// ListFor serves from the live snapshot. The operator sees the whole
// collection; a requester only their own rows. The newest row by creation
// time carries the most-recent marker.
func (q *appointmentQueriesImpl) ListFor(_ context.Context, viewer uuid.UUID, role user.Role) ([]AppointmentListItem, error) {
	snapshot, err := q.snapshot()
	if err != nil {
		return nil, err
	}

	return ProjectFor(snapshot, viewer, role, q.clock.Now()), nil
}

// ProjectFor classifies and filters one snapshot for a viewer. Shared by the
// list endpoint and the websocket stream so both render identically.
func ProjectFor(snapshot []AppointmentView, viewer uuid.UUID, role user.Role, now time.Time) []AppointmentListItem {
	mostRecent := mostRecentID(snapshot)

	items := make([]AppointmentListItem, 0, len(snapshot))
	for _, v := range snapshot {
		if role != user.RoleOperator && v.RequesterID != viewer {
			continue
		}
		items = append(items, classify(v, now, v.ID == mostRecent))
	}
	return items
}

// GetByID reads through to the store so a detail view never races a snapshot
// reload. Requesters may only fetch their own appointments.
func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, viewer uuid.UUID, role user.Role) (*AppointmentListItem, error) {
	view, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrAppointmentListQuery)
	}

	if role != user.RoleOperator && view.RequesterID != viewer {
		return nil, ErrForbidden
	}

	item := classify(*view, q.clock.Now(), false)
	return &item, nil
}

// StatusCounts tallies the whole collection for the operator dashboard.
func (q *appointmentQueriesImpl) StatusCounts(_ context.Context) (appointment.StatusCounts, error) {
	snapshot, err := q.snapshot()
	if err != nil {
		return appointment.StatusCounts{}, err
	}

	now := q.clock.Now()
	var counts appointment.StatusCounts
	for _, v := range snapshot {
		counts.Add(appointment.ClassifyValues(v.ScheduledAt, v.Completed, now))
	}
	return counts, nil
}

func (q *appointmentQueriesImpl) snapshot() ([]AppointmentView, error) {
	if !q.stream.Loaded() {
		if err := q.stream.Err(); err != nil {
			return nil, errs.Mark(err, ErrSnapshotUnavailable)
		}
		return nil, ErrSnapshotUnavailable
	}
	return q.stream.Current(), nil
}

func classify(v AppointmentView, now time.Time, mostRecent bool) AppointmentListItem {
	return AppointmentListItem{
		ID:            v.ID,
		RequesterID:   v.RequesterID,
		RequesterName: v.RequesterName,
		ScheduledAt:   v.ScheduledAt,
		Message:       v.Message,
		Status:        string(appointment.ClassifyValues(v.ScheduledAt, v.Completed, now)),
		MostRecent:    mostRecent,
		CreatedAt:     v.CreatedAt,
	}
}

func mostRecentID(snapshot []AppointmentView) uuid.UUID {
	var id uuid.UUID
	var latest time.Time
	for _, v := range snapshot {
		if id == uuid.Nil || v.CreatedAt.After(latest) {
			id = v.ID
			latest = v.CreatedAt
		}
	}
	return id
}
