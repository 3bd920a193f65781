package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
	ErrEmptyDisplayName   = errors.New("display name cannot be empty")
	ErrDisplayNameTooLong = errors.New("display name too long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const maxDisplayNameLen = 100

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// DisplayName is denormalized onto appointments at creation time, so it is
// validated once here instead of at every write site.
type DisplayName struct {
	value string
}

func NewDisplayName(s string) (DisplayName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DisplayName{}, ErrEmptyDisplayName
	}
	if len(s) > maxDisplayNameLen {
		return DisplayName{}, ErrDisplayNameTooLong
	}
	return DisplayName{value: s}, nil
}

func (n DisplayName) Value() string {
	return n.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email Email, password Password) Credentials {
	return Credentials{email: email, password: password}
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}
