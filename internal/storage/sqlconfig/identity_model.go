package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Identity is the credential record owned by the identity provider.
type Identity struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// IIdentityTable defines the interface for identity storage operations.
//
//go:generate mockery --name IIdentityTable --output mock_IIdentityTable.go
type IIdentityTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Identity, error)
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	Insert(ctx context.Context, email, passwordHash string) (*Identity, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
