package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// NewTransaction is the input for recording a transaction in a group.
type NewTransaction struct {
	Label        string
	Amount       decimal.Decimal
	Description  string
	CategoryID   uuid.NullUUID
	Installments int
	Date         time.Time
	DueDate      *time.Time
	Kind         string
	GroupID      uuid.UUID
	CreatedBy    uuid.UUID
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID           uuid.UUID
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
	CreatedAt    time.Time
	Recurrence   *Recurrence
}

// Recurrence is the installment plan of a split transaction.
type Recurrence struct {
	ID                uuid.UUID
	Installments      int
	InstallmentAmount decimal.Decimal
	NextExecution     time.Time
	Active            bool
}

// TransactionEntry is one row of the monthly transaction listing.
type TransactionEntry struct {
	ID       uuid.UUID
	Label    string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	Member   string
}

func transactionFromRow(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:           row.ID,
		Label:        row.Label,
		Amount:       row.Amount,
		Description:  row.Description,
		Date:         row.Date,
		DueDate:      row.DueDate,
		Installments: row.Installments,
		Kind:         row.Kind,
		CategoryID:   row.CategoryID,
		GroupID:      row.GroupID,
		CreatedBy:    row.CreatedBy,
		CreatedAt:    row.CreatedAt,
	}
}
