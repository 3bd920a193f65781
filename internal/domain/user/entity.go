package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id          uuid.UUID
	email       Email
	displayName DisplayName
	role        Role
	isActive    bool
	createdAt   time.Time
	lastLogin   *time.Time
}

func NewUser(email Email, displayName DisplayName, role Role) *User {
	return &User{
		id:          uuid.New(),
		email:       email,
		displayName: displayName,
		role:        role,
		isActive:    true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	displayName DisplayName,
	role Role,
	isActive bool,
	createdAt time.Time,
	lastLogin *time.Time,
) *User {
	return &User{
		id:          id,
		email:       email,
		displayName: displayName,
		role:        role,
		isActive:    isActive,
		createdAt:   createdAt,
		lastLogin:   lastLogin,
	}
}

func (u *User) IsOperator() bool {
	return u.role == RoleOperator
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Email() Email             { return u.email }
func (u *User) DisplayName() DisplayName { return u.displayName }
func (u *User) Role() Role               { return u.role }
func (u *User) IsActive() bool           { return u.isActive }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) LastLogin() *time.Time    { return u.lastLogin }
