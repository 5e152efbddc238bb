package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Recurrence describes how an installment transaction repeats. NextExecution is written
// here and advanced by an external job.
type Recurrence struct {
	ID                uuid.UUID       `db:"id"`
	TransactionID     uuid.UUID       `db:"transaction_id"`
	Description       string          `db:"description"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	Installments      int             `db:"installments"`
	InstallmentAmount decimal.Decimal `db:"installment_amount"`
	NextExecution     time.Time       `db:"next_execution"`
	Active            bool            `db:"active"`
	Kind              string          `db:"kind"`
	GroupID           uuid.UUID       `db:"group_id"`
	CategoryID        uuid.NullUUID   `db:"category_id"`
}

// RecurrenceCreate is the input for creating a recurrence.
type RecurrenceCreate struct {
	TransactionID     uuid.UUID
	Description       string
	TotalAmount       decimal.Decimal
	Installments      int
	InstallmentAmount decimal.Decimal
	NextExecution     time.Time
	Active            bool
	Kind              string
	GroupID           uuid.UUID
	CategoryID        uuid.NullUUID
}

// IRecurrenceTable defines the interface for recurrence storage operations.
//
//go:generate mockery --name IRecurrenceTable --output mock_IRecurrenceTable.go
type IRecurrenceTable interface {
	Insert(ctx context.Context, create *RecurrenceCreate) (*Recurrence, error)
}
