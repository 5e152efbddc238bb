package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
	now       Clock
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor, clock Clock) *TransactionService {
	return &TransactionService{storage: store, processor: processor, now: clock}
}

// CreateTransaction records the transaction and, for more than one installment, its
// recurrence in a single database transaction. A zero date means today on the service clock.
func (s *TransactionService) CreateTransaction(ctx context.Context, input NewTransaction) (*Transaction, error) {
	kind := sqlconfig.CategoryKindExpense
	if input.Kind != "" {
		parsed, err := ParseKind(input.Kind)
		if err != nil {
			return nil, err
		}
		kind = parsed
	}
	if input.Installments < 1 {
		return nil, apperr.BadRequest("parcelas deve ser maior ou igual a 1")
	}
	date := input.Date
	if date.IsZero() {
		now := s.now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	action := &actions.CreateTransaction{
		Label:        input.Label,
		Amount:       input.Amount,
		Description:  input.Description,
		Date:         date,
		DueDate:      input.DueDate,
		Installments: input.Installments,
		Kind:         string(kind),
		CategoryID:   input.CategoryID,
		GroupID:      input.GroupID,
		CreatedBy:    input.CreatedBy,
	}

	err := logging.Timed(ctx, "createTransaction", func() error {
		return s.processor.Process(ctx, action)
	})
	if err != nil {
		return nil, storeError(ctx, err)
	}

	created := transactionFromRow(action.Transaction)
	if r := action.Recurrence; r != nil {
		created.Recurrence = &Recurrence{
			ID:                r.ID,
			Installments:      r.Installments,
			InstallmentAmount: r.InstallmentAmount,
			NextExecution:     r.NextExecution,
			Active:            r.Active,
		}
	}
	return &created, nil
}

// ListMonth returns the group's transactions dated in the current month.
func (s *TransactionService) ListMonth(ctx context.Context, groupID uuid.UUID) ([]TransactionEntry, error) {
	window := MonthWindowAt(s.now())
	rows, err := s.monthRows(ctx, groupID, window)
	if err != nil {
		return nil, err
	}

	entries := make([]TransactionEntry, 0, len(rows))
	for _, row := range rows {
		entry := TransactionEntry{
			ID:       row.ID,
			Label:    row.Label,
			Amount:   row.Amount,
			Category: UncategorizedLabel,
			Date:     row.Date,
		}
		if row.CategoryName != nil {
			entry.Category = *row.CategoryName
		}
		if row.MemberName != nil {
			entry.Member = *row.MemberName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// MonthlyExpenses returns the current month's expense totals per category.
func (s *TransactionService) MonthlyExpenses(ctx context.Context, groupID uuid.UUID) ([]CategoryTotal, error) {
	window := MonthWindowAt(s.now())
	rows, err := s.monthRows(ctx, groupID, window)
	if err != nil {
		return nil, err
	}
	return AggregateExpenses(rows, window), nil
}

// DeleteTransaction removes a transaction of the group and returns the deleted rows.
func (s *TransactionService) DeleteTransaction(ctx context.Context, groupID, id uuid.UUID) ([]Transaction, error) {
	var rows []*sqlconfig.Transaction
	err := logging.Timed(ctx, "deleteTransaction", func() (err error) {
		rows, err = s.storage.Transactions.Delete(ctx, groupID, id)
		return err
	})
	if err != nil {
		return nil, storeError(ctx, err)
	}

	deleted := make([]Transaction, len(rows))
	for i, row := range rows {
		deleted[i] = transactionFromRow(row)
	}
	return deleted, nil
}

func (s *TransactionService) monthRows(ctx context.Context, groupID uuid.UUID, window MonthWindow) ([]*sqlconfig.TransactionDetail, error) {
	filter := &sqlconfig.TransactionFilter{
		GroupID: groupID,
		From:    window.Start,
		To:      window.End,
	}

	var rows []*sqlconfig.TransactionDetail
	err := logging.Timed(ctx, "listTransactions", func() (err error) {
		rows, err = s.storage.Transactions.ListDetailed(ctx, filter)
		return err
	})
	if err != nil {
		return nil, storeError(ctx, err)
	}
	return rows, nil
}

// storeError classifies a data-layer failure. Cancellation and already classified errors
// pass through unchanged.
func storeError(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return err
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Store(err)
}
