package repository

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/appointment"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool the repositories use; pgxmock satisfies
// it in tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolationCode = "23505"

type AppointmentRepository struct {
	db DBTX
}

func NewAppointmentRepository(db DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

const insertAppointmentSQL = `
INSERT INTO appointments (id, requester_id, requester_name, scheduled_at, message, created_at)
VALUES ($1, $2, $3, $4, $5, now())
RETURNING created_at`

// Create appends one appointment. The UNIQUE constraint on scheduled_at is
// the final slot-exclusivity authority: a concurrent double-submit that
// slipped past the in-memory index resolves here as KindConflict.
func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) (*queries.AppointmentView, error) {
	var createdAt time.Time
	err := r.db.QueryRow(ctx, insertAppointmentSQL,
		a.ID(), a.RequesterID(), a.RequesterName(), a.ScheduledAt(), a.Message(),
	).Scan(&createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, infra.WrapRepoErr("slot already booked", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to create appointment", err)
	}

	return &queries.AppointmentView{
		ID:            a.ID(),
		RequesterID:   a.RequesterID(),
		RequesterName: a.RequesterName(),
		ScheduledAt:   a.ScheduledAt(),
		Message:       a.Message(),
		CreatedAt:     createdAt,
	}, nil
}

// Delete removes an appointment. Deleting an id that is already gone is a
// no-op success so concurrent deletes do not surface as failures.
func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	return nil
}

// SetCompleted persists the operator override flag, the only mutable field.
func (r *AppointmentRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE appointments SET completed = $2 WHERE id = $1`, id, completed)
	if err != nil {
		return infra.WrapRepoErr("failed to update completed flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectAppointmentSQL = `
SELECT id, requester_id, requester_name, scheduled_at, message, completed, created_at
FROM appointments`

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, selectAppointmentSQL+` WHERE id = $1`, id)

	view, err := scanAppointmentRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return view, nil
}

// FindAll returns the complete live collection ordered by scheduled time;
// this is the snapshot shape the sync watcher republishes.
func (r *AppointmentRepository) FindAll(ctx context.Context) ([]queries.AppointmentView, error) {
	rows, err := r.db.Query(ctx, selectAppointmentSQL+` ORDER BY scheduled_at ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var result []queries.AppointmentView
	for rows.Next() {
		view, err := scanAppointmentRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		result = append(result, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment rows", err)
	}
	return result, nil
}

func scanAppointmentRow(row pgx.Row) (*queries.AppointmentView, error) {
	var (
		view      queries.AppointmentView
		completed *bool
	)
	err := row.Scan(
		&view.ID,
		&view.RequesterID,
		&view.RequesterName,
		&view.ScheduledAt,
		&view.Message,
		&completed,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.Completed = completed
	return &view, nil
}
