package transaction

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/session"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Label        string  `json:"nome" minLength:"1" doc:"Transaction label"`
	Amount       float64 `json:"valor" doc:"Total amount"`
	Description  string  `json:"descricao,omitempty" doc:"Free text description"`
	CategoryID   string  `json:"categoriaselecionada,omitempty" doc:"Category UUID, empty for uncategorized"`
	Installments int     `json:"parcelas,omitempty" minimum:"1" doc:"Number of installments, defaults to 1"`
	Date         string  `json:"data,omitempty" doc:"Transaction date (YYYY-MM-DD or RFC3339), defaults to today"`
	DueDate      string  `json:"vencimento,omitempty" doc:"Due date of the first installment (YYYY-MM-DD or RFC3339)"`
	Kind         string  `json:"tipo,omitempty" enum:"income,expense,receita,despesa" doc:"Transaction kind, defaults to expense"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	Created Transaction `json:"cadastro" doc:"The stored transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, input service.NewTransaction) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transacao.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
	auth               huma.Middlewares
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator, auth huma.Middlewares) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc, auth: auth}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transacao",
		Summary:       "Create transaction",
		Description:   "Records a transaction for the caller's group. More than one installment also stores a recurrence.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.auth,
	}, h.handle)
}

// parseCreateTransactionInput converts the request body into the service input.
// Group and creator are filled in from the session by the caller. A missing date stays zero.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.NewTransaction, error) {
	body := input.Body
	out := service.NewTransaction{
		Label:        strings.TrimSpace(body.Label),
		Amount:       decimal.NewFromFloat(body.Amount),
		Description:  body.Description,
		Installments: body.Installments,
		Kind:         body.Kind,
	}
	if out.Installments == 0 {
		out.Installments = 1
	}

	if body.CategoryID != "" {
		categoryID, err := uuid.FromString(body.CategoryID)
		if err != nil {
			return out, huma.NewError(http.StatusBadRequest, "invalid categoriaselecionada", err)
		}
		out.CategoryID = uuid.NullUUID{UUID: categoryID, Valid: true}
	}

	if body.Date != "" {
		date, err := parseDate(body.Date)
		if err != nil {
			return out, huma.NewError(http.StatusBadRequest, "invalid data", err)
		}
		out.Date = date
	}

	if body.DueDate != "" {
		due, err := parseDate(body.DueDate)
		if err != nil {
			return out, huma.NewError(http.StatusBadRequest, "invalid vencimento", err)
		}
		out.DueDate = &due
	}

	return out, nil
}

// parseDate accepts a calendar date or a full RFC3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, raw); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	tx, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}
	tx.GroupID = caller.GroupID
	tx.CreatedBy = caller.ID

	if logData != nil {
		logData.AddData("installments", tx.Installments)
	}

	created, err := h.TransactionService.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID.String())
	}

	return &CreateTransactionOutput{Body: CreateTransactionResponse{Created: fromService(*created)}}, nil
}
