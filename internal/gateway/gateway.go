// Package gateway defines the collaborators brewlog talks to: an
// authentication provider and the persistence gateway for brew rows.
package gateway

import (
	"context"
	"errors"

	"github.com/balkashynov/brewlog/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrConstraint         = errors.New("record violates a table constraint")
)

// MinPasswordLen matches the hosted auth provider default
const MinPasswordLen = 6

// Inserter appends one brew row and returns it as stored.
type Inserter interface {
	Insert(ctx context.Context, user models.User, brew models.Brew) (models.Brew, error)
}

// Authenticator signs users in and out.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (models.User, error)
	SignUp(ctx context.Context, email, password string) (models.User, error)
	SignOut(ctx context.Context, user models.User) error
}

// Backend is one configured storage + auth provider.
type Backend interface {
	Inserter
	Authenticator
	Name() string
	Close() error
}
