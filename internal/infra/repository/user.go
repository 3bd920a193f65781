package repository

import (
	"context"

	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const selectUserSQL = `
SELECT id, email, display_name, role, is_active, last_login_at, password_hash
FROM users`

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx, selectUserSQL+` WHERE email = $1`, email.Value())

	view, hash, err := scanUserRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx, selectUserSQL+` WHERE id = $1`, id)

	view, _, err := scanUserRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

type userScanner interface {
	Scan(dest ...any) error
}

func scanUserRow(row userScanner) (*queries.AuthorizedUserView, string, error) {
	var (
		view      queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
		hash      string
	)
	err := row.Scan(
		&view.ID,
		&view.Email,
		&view.DisplayName,
		&view.Role,
		&view.IsActive,
		&lastLogin,
		&hash,
	)
	if err != nil {
		return nil, "", err
	}
	view.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &view, hash, nil
}
