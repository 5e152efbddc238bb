package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
)

var _ ISummaryTable = (*SummariesTable)(nil)

type SummariesTable struct {
	exec bob.Executor
}

func NewSummariesTable(exec bob.Executor) *SummariesTable {
	return &SummariesTable{exec: exec}
}

// MonthlyByGroup returns every month of the group, most recent first.
func (t *SummariesTable) MonthlyByGroup(ctx context.Context, groupID uuid.UUID) ([]*MonthlySummary, error) {
	q := psql.Select(
		sm.Columns("group_id", "month", "income", "expense", "balance"),
		sm.From("monthly_summary"),
		sm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
		sm.OrderBy("month").Desc(),
	)
	return all[MonthlySummary](ctx, t.exec, q)
}

// MembersByMonth returns one row per member for the given YYYY-MM month.
func (t *SummariesTable) MembersByMonth(ctx context.Context, groupID uuid.UUID, month string) ([]*MemberMonthlySummary, error) {
	q := psql.Select(
		sm.Columns("group_id", "member_id", "member_name", "month", "income", "expense"),
		sm.From("member_monthly_summary"),
		sm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		sm.OrderBy("member_name").Asc(),
	)
	return all[MemberMonthlySummary](ctx, t.exec, q)
}
