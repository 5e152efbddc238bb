package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/session"
)

// CategoryExpense is the expense total of one category for the chart.
type CategoryExpense struct {
	Category string  `json:"category" doc:"Category name, uncategorized when unset"`
	Amount   float64 `json:"amount" doc:"Total expenses, rounded to cents"`
}

// ExpensesByCategoryOutput is the Huma output for the expense chart.
type ExpensesByCategoryOutput struct {
	Body []CategoryExpense
}

type expenseAggregator interface {
	MonthlyExpenses(ctx context.Context, groupID uuid.UUID) ([]service.CategoryTotal, error)
}

// ExpensesByCategoryHandler handles GET /transacoes-grafico.
type ExpensesByCategoryHandler struct {
	TransactionService expenseAggregator
	auth               huma.Middlewares
}

func NewExpensesByCategoryHandler(svc expenseAggregator, auth huma.Middlewares) *ExpensesByCategoryHandler {
	return &ExpensesByCategoryHandler{TransactionService: svc, auth: auth}
}

func (h *ExpensesByCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "expenses-by-category",
		Method:      http.MethodGet,
		Path:        "/transacoes-grafico",
		Summary:     "Monthly expenses by category",
		Description: "Sums the current month's expenses of the caller's group per category. Split transactions count one installment.",
		Tags:        []string{"Transactions"},
		Middlewares: h.auth,
	}, h.handle)
}

func (h *ExpensesByCategoryHandler) handle(ctx context.Context, _ *struct{}) (*ExpensesByCategoryOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	totals, err := h.TransactionService.MonthlyExpenses(ctx, caller.GroupID)
	if err != nil {
		return nil, apperr.Response(err)
	}

	resp := make([]CategoryExpense, len(totals))
	for i, total := range totals {
		resp[i] = CategoryExpense{Category: total.Category, Amount: total.Amount.InexactFloat64()}
	}
	return &ExpensesByCategoryOutput{Body: resp}, nil
}
