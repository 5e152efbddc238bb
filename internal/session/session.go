// Package session guards authenticated operations: it resolves the caller's access token
// to an identity and profile and exposes them to handlers through the request context.
package session

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
)

// CookieName is the cookie carrying the access token when the cookie transport is enabled.
const CookieName = "access_token"

type identityKey struct{}

// Identity is the caller of an authenticated request, built once per request.
type Identity struct {
	ID        uuid.UUID
	Name      string
	GroupID   uuid.UUID
	Role      string
	Email     string
	Avatar    string
	GroupName string
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// FromContext returns the identity attached by the guard.
func FromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*Identity)
	return identity, ok && identity != nil
}

// Caller returns the identity attached by the guard, or an internal error when the
// operation was registered without it.
func Caller(ctx context.Context) (*Identity, error) {
	identity, ok := FromContext(ctx)
	if !ok {
		return nil, apperr.Internal(errors.New("no session identity in context"))
	}
	return identity, nil
}
