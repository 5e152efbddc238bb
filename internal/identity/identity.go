// Package identity authenticates users: it owns credentials and issues and resolves
// access tokens. Profiles and groups live elsewhere.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

var (
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrEmailTaken         = errors.New("User already registered")
	ErrWeakPassword       = errors.New("Password should be at least 6 characters")
	ErrInvalidEmail       = errors.New("Unable to validate email address: invalid format")
	ErrInvalidToken       = errors.New("invalid JWT: unable to parse or verify signature")
)

const MinPasswordLength = 6

// Session is an issued access token.
type Session struct {
	AccessToken string
	IdentityID  uuid.UUID
	ExpiresAt   time.Time
}

// Provider is the identity provider the server delegates authentication to.
//
//go:generate mockery --name Provider --inpackage
type Provider interface {
	SignUp(ctx context.Context, email, password string) (uuid.UUID, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// ResolveSession returns the identity a token belongs to, ErrInvalidToken when the
	// token is malformed, expired or its identity no longer exists.
	ResolveSession(ctx context.Context, token string) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, password string) error
	DeleteIdentity(ctx context.Context, id uuid.UUID) error
}
