package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (User, error)
}

// User represents a stored user account. PasswordHash never leaves the
// service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// SignupParams contains parameters to register a new user.
type SignupParams struct {
	Email    string
	Name     string
	Password string
}

// LoginParams contains credentials presented at login.
type LoginParams struct {
	Email    string
	Password string
}

// Session is the result of a successful signup or login.
type Session struct {
	Token string
	User  User
}
