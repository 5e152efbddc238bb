package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/session"
)

// TransactionEntry is one row of the monthly listing.
type TransactionEntry struct {
	ID       string  `json:"id" doc:"Transaction UUID"`
	Label    string  `json:"nome" doc:"Transaction label"`
	Amount   float64 `json:"valor" doc:"Total amount"`
	Category string  `json:"categoria" doc:"Category name, uncategorized when unset"`
	Date     string  `json:"data" doc:"Transaction date (YYYY-MM-DD)"`
	Member   string  `json:"membro" doc:"Name of the member who recorded it"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []TransactionEntry
}

// transactionLister is the interface for listing the current month's transactions.
type transactionLister interface {
	ListMonth(ctx context.Context, groupID uuid.UUID) ([]service.TransactionEntry, error)
}

// ListTransactionsHandler handles GET /transacao.
type ListTransactionsHandler struct {
	TransactionService transactionLister
	auth               huma.Middlewares
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister, auth huma.Middlewares) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc, auth: auth}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transacao",
		Summary:     "List transactions",
		Description: "Returns the caller group's transactions dated in the current month, newest first.",
		Tags:        []string{"Transactions"},
		Middlewares: h.auth,
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	entries, err := h.TransactionService.ListMonth(ctx, caller.GroupID)
	if err != nil {
		return nil, apperr.Response(err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(entries))
	}

	resp := make([]TransactionEntry, len(entries))
	for i, e := range entries {
		resp[i] = TransactionEntry{
			ID:       e.ID.String(),
			Label:    e.Label,
			Amount:   e.Amount.InexactFloat64(),
			Category: e.Category,
			Date:     e.Date.Format(time.DateOnly),
			Member:   e.Member,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
