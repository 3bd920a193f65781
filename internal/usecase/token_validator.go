package usecase

import (
	"slotbook/internal/domain/user"
	"slotbook/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity resolved from a validated token: who the caller is and whether
// they are the operator (an explicit role claim, never an ID comparison).
type Identity struct {
	UserID      uuid.UUID
	DisplayName string
	Role        user.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		UserID:      claims.UserID,
		DisplayName: claims.DisplayName,
		Role:        role,
	}, nil
}
