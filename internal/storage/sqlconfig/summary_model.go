package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// MonthlySummary is a row of the monthly_summary view.
type MonthlySummary struct {
	GroupID uuid.UUID       `db:"group_id"`
	Month   string          `db:"month"`
	Income  decimal.Decimal `db:"income"`
	Expense decimal.Decimal `db:"expense"`
	Balance decimal.Decimal `db:"balance"`
}

// MemberMonthlySummary is a row of the member_monthly_summary view.
type MemberMonthlySummary struct {
	GroupID    uuid.UUID       `db:"group_id"`
	MemberID   uuid.UUID       `db:"member_id"`
	MemberName string          `db:"member_name"`
	Month      string          `db:"month"`
	Income     decimal.Decimal `db:"income"`
	Expense    decimal.Decimal `db:"expense"`
}

// ISummaryTable reads the precomputed summary views.
//
//go:generate mockery --name ISummaryTable --output mock_ISummaryTable.go
type ISummaryTable interface {
	MonthlyByGroup(ctx context.Context, groupID uuid.UUID) ([]*MonthlySummary, error)
	MembersByMonth(ctx context.Context, groupID uuid.UUID, month string) ([]*MemberMonthlySummary, error)
}
