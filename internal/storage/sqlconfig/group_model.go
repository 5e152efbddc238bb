package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Group is a household: the tenant every profile, category and transaction belongs to.
type Group struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedBy uuid.UUID `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

// GroupCreate is the input for creating a new group.
type GroupCreate struct {
	Name      string
	CreatedBy uuid.UUID
}

// IGroupTable defines the interface for group storage operations.
//
//go:generate mockery --name IGroupTable --output mock_IGroupTable.go
type IGroupTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Group, error)
	Insert(ctx context.Context, create *GroupCreate) (*Group, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*Group, error)
}
