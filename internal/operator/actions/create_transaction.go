package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// CreateTransaction stores a transaction and, when it is split into installments, the
// recurrence describing them. Both rows commit or neither does.
type CreateTransaction struct {
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

	// Set by Perform.
	Transaction *sqlconfig.Transaction
	Recurrence  *sqlconfig.Recurrence

	IAction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	installments := c.Installments
	if installments < 1 {
		installments = 1
	}

	created, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Label:        c.Label,
		Amount:       c.Amount,
		Description:  c.Description,
		Date:         c.Date,
		DueDate:      c.DueDate,
		Installments: installments,
		Kind:         c.Kind,
		CategoryID:   c.CategoryID,
		GroupID:      c.GroupID,
		CreatedBy:    c.CreatedBy,
	})
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	c.Transaction = created

	if installments == 1 {
		return nil
	}

	nextExecution := c.Date
	if c.DueDate != nil {
		nextExecution = *c.DueDate
	}

	recurrence, err := writer.Recurrences.Insert(ctx, &sqlconfig.RecurrenceCreate{
		TransactionID:     created.ID,
		Description:       c.Description,
		TotalAmount:       c.Amount,
		Installments:      installments,
		InstallmentAmount: InstallmentAmount(c.Amount, installments),
		NextExecution:     nextExecution,
		Active:            true,
		Kind:              c.Kind,
		GroupID:           c.GroupID,
		CategoryID:        c.CategoryID,
	})
	if err != nil {
		return fmt.Errorf("insert recurrence: %w", err)
	}
	c.Recurrence = recurrence

	return nil
}

// InstallmentAmount splits total into equal installments. The quotient is not rounded;
// totals built from it are rounded once when they are reported.
func InstallmentAmount(total decimal.Decimal, installments int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(installments)))
}
