package usecase

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/user"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/pkg/password"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	TokenDuration() time.Duration
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil || view == nil {
		return "", nil, ErrUserNotFound
	}

	if !view.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", nil, ErrTokenValidation
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.DisplayName, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, view.ID); err != nil {
		return "", nil, err
	}

	return token, view, nil
}

func (a *authUseCaseImpl) TokenDuration() time.Duration {
	return a.jwtService.TokenDuration()
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.userRepo.FindByID(ctx, userID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}
