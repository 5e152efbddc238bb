// Package summary serves the precomputed monthly totals of a group.
package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/session"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// MonthlyTotal is one month of the group's income and expenses.
type MonthlyTotal struct {
	GroupID string  `json:"grupo_id" doc:"Group UUID"`
	Month   string  `json:"mes" doc:"Month (YYYY-MM)"`
	Income  float64 `json:"receita" doc:"Income of the month"`
	Expense float64 `json:"despesa" doc:"Expenses of the month"`
	Balance float64 `json:"saldo" doc:"Income minus expenses"`
}

// MemberTotal is one member's income and expenses in the current month.
type MemberTotal struct {
	GroupID  string  `json:"grupo_id" doc:"Group UUID"`
	MemberID string  `json:"usuario_id" doc:"Profile UUID"`
	Name     string  `json:"nome" doc:"Member name"`
	Month    string  `json:"mes" doc:"Month (YYYY-MM)"`
	Income   float64 `json:"receita" doc:"Income recorded by the member"`
	Expense  float64 `json:"despesa" doc:"Expenses recorded by the member"`
}

type MonthlyTotalsOutput struct {
	Body []MonthlyTotal
}

type MemberTotalsOutput struct {
	Body []MemberTotal
}

type summaryReader interface {
	MonthlyTotals(ctx context.Context, groupID uuid.UUID) ([]*sqlconfig.MonthlySummary, error)
	MemberTotals(ctx context.Context, groupID uuid.UUID) ([]*sqlconfig.MemberMonthlySummary, error)
}

// Handler serves GET /card-receita and GET /grupo.
type Handler struct {
	SummaryService summaryReader
	auth           huma.Middlewares
}

func NewHandler(svc summaryReader, auth huma.Middlewares) *Handler {
	return &Handler{SummaryService: svc, auth: auth}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-totals",
		Method:      http.MethodGet,
		Path:        "/card-receita",
		Summary:     "Monthly totals",
		Description: "Returns the income, expenses and balance of the caller's group per month.",
		Tags:        []string{"Summary"},
		Middlewares: h.auth,
	}, h.monthly)

	huma.Register(api, huma.Operation{
		OperationID: "member-totals",
		Method:      http.MethodGet,
		Path:        "/grupo",
		Summary:     "Member totals",
		Description: "Returns each member's income and expenses in the current month.",
		Tags:        []string{"Summary"},
		Middlewares: h.auth,
	}, h.members)
}

func (h *Handler) monthly(ctx context.Context, _ *struct{}) (*MonthlyTotalsOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	rows, err := h.SummaryService.MonthlyTotals(ctx, caller.GroupID)
	if err != nil {
		return nil, apperr.Response(err)
	}

	resp := make([]MonthlyTotal, len(rows))
	for i, row := range rows {
		resp[i] = MonthlyTotal{
			GroupID: row.GroupID.String(),
			Month:   row.Month,
			Income:  row.Income.InexactFloat64(),
			Expense: row.Expense.InexactFloat64(),
			Balance: row.Balance.InexactFloat64(),
		}
	}
	return &MonthlyTotalsOutput{Body: resp}, nil
}

func (h *Handler) members(ctx context.Context, _ *struct{}) (*MemberTotalsOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	rows, err := h.SummaryService.MemberTotals(ctx, caller.GroupID)
	if err != nil {
		return nil, apperr.Response(err)
	}

	resp := make([]MemberTotal, len(rows))
	for i, row := range rows {
		resp[i] = MemberTotal{
			GroupID:  row.GroupID.String(),
			MemberID: row.MemberID.String(),
			Name:     row.MemberName,
			Month:    row.Month,
			Income:   row.Income.InexactFloat64(),
			Expense:  row.Expense.InexactFloat64(),
		}
	}
	return &MemberTotalsOutput{Body: resp}, nil
}
