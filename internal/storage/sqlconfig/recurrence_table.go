package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

var _ IRecurrenceTable = (*RecurrencesTable)(nil)

type RecurrencesTable struct {
	exec bob.Executor
}

func NewRecurrencesTable(exec bob.Executor) *RecurrencesTable {
	return &RecurrencesTable{exec: exec}
}

// Insert creates a recurrence and returns the stored row.
func (t *RecurrencesTable) Insert(ctx context.Context, create *RecurrenceCreate) (*Recurrence, error) {
	q := psql.Insert(
		im.Into("recurrences",
			"transaction_id", "description", "total_amount", "installments", "installment_amount",
			"next_execution", "active", "kind", "group_id", "category_id",
		),
		im.Values(
			psql.Arg(create.TransactionID),
			psql.Arg(create.Description),
			psql.Arg(create.TotalAmount),
			psql.Arg(create.Installments),
			psql.Arg(create.InstallmentAmount),
			psql.Arg(dateArg(create.NextExecution)),
			psql.Arg(create.Active),
			psql.Arg(create.Kind),
			psql.Arg(create.GroupID),
			psql.Arg(create.CategoryID),
		),
		im.Returning(
			"id", "transaction_id", "description", "total_amount", "installments", "installment_amount",
			"next_execution", "active", "kind", "group_id", "category_id",
		),
	)
	return one[Recurrence](ctx, t.exec, q)
}
