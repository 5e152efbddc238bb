package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID           uuid.UUID       `db:"id"`
	Label        string          `db:"label"`
	Amount       decimal.Decimal `db:"amount"`
	Description  string          `db:"description"`
	Date         time.Time       `db:"date"`
	DueDate      *time.Time      `db:"due_date"`
	Installments int             `db:"installments"`
	Kind         string          `db:"kind"`
	CategoryID   uuid.NullUUID   `db:"category_id"`
	GroupID      uuid.UUID       `db:"group_id"`
	CreatedBy    uuid.UUID       `db:"created_by"`
	CreatedAt    time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Label        string
	Amount       decimal.Decimal
	Description  string
	Date         time.Time
	DueDate      *time.Time
	Installments int
	Kind         string
	CategoryID   uuid.NullUUID
	GroupID      uuid.UUID
	CreatedBy    uuid.UUID
}

// TransactionFilter restricts a listing to one group and an inclusive date range.
type TransactionFilter struct {
	GroupID uuid.UUID
	From    time.Time
	To      time.Time
}

// TransactionDetail is a transaction joined with its category, recurrence and author.
// Joined columns are nil when the relation is absent.
type TransactionDetail struct {
	ID                uuid.UUID           `db:"id"`
	Label             string              `db:"label"`
	Amount            decimal.Decimal     `db:"amount"`
	Date              time.Time           `db:"date"`
	Kind              string              `db:"kind"`
	CategoryID        uuid.NullUUID       `db:"category_id"`
	CategoryName      *string             `db:"category_name"`
	CategoryKind      *string             `db:"category_kind"`
	InstallmentAmount decimal.NullDecimal `db:"installment_amount"`
	MemberName        *string             `db:"member_name"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	ListDetailed(ctx context.Context, filter *TransactionFilter) ([]*TransactionDetail, error)
	Delete(ctx context.Context, groupID, id uuid.UUID) ([]*Transaction, error)
}
