package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)

// Identity is the authenticated user held by a session.
type Identity struct {
	ID        string    `json:"id" bson:"id" yaml:"id"`
	Email     string    `json:"email" bson:"email" yaml:"email"`
	Name      string    `json:"name" bson:"name" yaml:"name"`
	Role      Role      `json:"role" bson:"role" yaml:"role"`
	Avatar    string    `json:"avatar,omitempty" bson:"avatar,omitempty" yaml:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at" yaml:"createdAt"`
}

// Account is a registered user with a password hash. It backs the
// credential-checking identity provider.
type Account struct {
	Identity     Identity
	PasswordHash string
	UpdatedAt    time.Time
}
