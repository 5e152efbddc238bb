package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// CategoryKind is either income or expense.
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

// Category is a group-scoped label for transactions.
type Category struct {
	ID      uuid.UUID    `db:"id"`
	Name    string       `db:"name"`
	Kind    CategoryKind `db:"kind"`
	GroupID uuid.UUID    `db:"group_id"`
}

// CategoryCreate is the input for creating a category.
type CategoryCreate struct {
	Name    string
	Kind    CategoryKind
	GroupID uuid.UUID
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Category, error)
	Delete(ctx context.Context, groupID, id uuid.UUID) ([]*Category, error)
}
