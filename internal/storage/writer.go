package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// Committer ends a database transaction.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables that take part in multi-row writes, all bound to one
// database transaction.
type Writer struct {
	Tx           Committer
	Groups       sqlconfig.IGroupTable
	Profiles     sqlconfig.IProfileTable
	Transactions sqlconfig.ITransactionTable
	Recurrences  sqlconfig.IRecurrenceTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:           tx,
		Groups:       sqlconfig.NewGroupsTable(tx),
		Profiles:     sqlconfig.NewProfilesTable(tx),
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Recurrences:  sqlconfig.NewRecurrencesTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.Tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.Tx.Rollback(ctx)
}
