package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []any{
	"id", "label", "amount", "description", "date", "due_date", "installments",
	"kind", "category_id", "group_id", "created_by", "created_at",
}

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	var dueDate any
	if create.DueDate != nil {
		dueDate = dateArg(*create.DueDate)
	}
	q := psql.Insert(
		im.Into("transactions",
			"label", "amount", "description", "date", "due_date", "installments",
			"kind", "category_id", "group_id", "created_by",
		),
		im.Values(
			psql.Arg(create.Label),
			psql.Arg(create.Amount),
			psql.Arg(create.Description),
			psql.Arg(dateArg(create.Date)),
			psql.Arg(dueDate),
			psql.Arg(create.Installments),
			psql.Arg(create.Kind),
			psql.Arg(create.CategoryID),
			psql.Arg(create.GroupID),
			psql.Arg(create.CreatedBy),
		),
		im.Returning(transactionColumns...),
	)
	return one[Transaction](ctx, t.exec, q)
}

// ListDetailed returns the transactions of a group dated within [From, To], newest first,
// joined with category, recurrence and author.
func (t *TransactionsTable) ListDetailed(ctx context.Context, filter *TransactionFilter) ([]*TransactionDetail, error) {
	q := psql.Select(
		sm.Columns(
			"t.id", "t.label", "t.amount", "t.date", "t.kind", "t.category_id",
			"c.name AS category_name",
			"c.kind AS category_kind",
			"r.installment_amount",
			"p.name AS member_name",
		),
		sm.From("transactions").As("t"),
		sm.LeftJoin("categories").As("c").OnEQ(psql.Quote("c", "id"), psql.Quote("t", "category_id")),
		sm.LeftJoin("recurrences").As("r").OnEQ(psql.Quote("r", "transaction_id"), psql.Quote("t", "id")),
		sm.LeftJoin("profiles").As("p").OnEQ(psql.Quote("p", "id"), psql.Quote("t", "created_by")),
		sm.Where(psql.Quote("t", "group_id").EQ(psql.Arg(filter.GroupID))),
		sm.Where(psql.Quote("t", "date").GTE(psql.Arg(dateArg(filter.From)))),
		sm.Where(psql.Quote("t", "date").LTE(psql.Arg(dateArg(filter.To)))),
		sm.OrderBy(psql.Quote("t", "date")).Desc(),
		sm.OrderBy(psql.Quote("t", "created_at")).Desc(),
	)
	return all[TransactionDetail](ctx, t.exec, q)
}

// Delete removes a transaction of the group; its recurrence cascades.
func (t *TransactionsTable) Delete(ctx context.Context, groupID, id uuid.UUID) ([]*Transaction, error) {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
		dm.Returning(transactionColumns...),
	)
	return all[Transaction](ctx, t.exec, q)
}

// dateArg renders a calendar date for DATE columns, leaving time zones out of the comparison.
func dateArg(d time.Time) string {
	return d.Format(time.DateOnly)
}
