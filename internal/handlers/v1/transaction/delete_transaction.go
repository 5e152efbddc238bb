package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/session"
)

// DeleteTransactionBody is the request body for deleting a transaction.
type DeleteTransactionBody struct {
	ID string `json:"id" format:"uuid" doc:"Transaction UUID"`
}

type DeleteTransactionInput struct {
	Body DeleteTransactionBody
}

// DeleteTransactionOutput returns the deleted rows, empty when nothing matched.
type DeleteTransactionOutput struct {
	Body []Transaction
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, groupID, id uuid.UUID) ([]service.Transaction, error)
}

// DeleteTransactionHandler handles DELETE /del-transacao.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
	auth               huma.Middlewares
}

func NewDeleteTransactionHandler(svc transactionDeleter, auth huma.Middlewares) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc, auth: auth}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/del-transacao",
		Summary:     "Delete transaction",
		Description: "Deletes a transaction of the caller's group together with its recurrence.",
		Tags:        []string{"Transactions"},
		Middlewares: h.auth,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	caller, err := session.Caller(ctx)
	if err != nil {
		return nil, apperr.Response(err)
	}

	id, err := uuid.FromString(input.Body.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	deleted, err := h.TransactionService.DeleteTransaction(ctx, caller.GroupID, id)
	if err != nil {
		return nil, apperr.Response(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deletedCount", len(deleted))
	}

	resp := make([]Transaction, len(deleted))
	for i, tx := range deleted {
		resp[i] = fromService(tx)
	}
	return &DeleteTransactionOutput{Body: resp}, nil
}
