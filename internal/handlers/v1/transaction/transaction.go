package transaction

import (
	"time"

	"github.com/carson-networks/household-server/internal/service"
)

// Transaction is the API response model for a created or deleted transaction.
type Transaction struct {
	ID           string      `json:"id" doc:"Transaction UUID"`
	Label        string      `json:"nome" doc:"Transaction label"`
	Amount       float64     `json:"valor" doc:"Total amount"`
	Description  string      `json:"descricao" doc:"Free text description"`
	Date         string      `json:"data" doc:"Transaction date (YYYY-MM-DD)"`
	DueDate      *string     `json:"vencimento" doc:"Due date of the first installment (YYYY-MM-DD)"`
	Installments int         `json:"parcelas" doc:"Number of installments"`
	Kind         string      `json:"tipo" enum:"income,expense" doc:"Transaction kind"`
	CategoryID   *string     `json:"categoria_id" doc:"Category UUID, null when uncategorized"`
	GroupID      string      `json:"grupo_id" doc:"Group UUID"`
	CreatedBy    string      `json:"criado_por" doc:"Profile UUID of the creator"`
	CreatedAt    string      `json:"criado_em" doc:"RFC3339 creation time"`
	Recurrence   *Recurrence `json:"recorrencia,omitempty" doc:"Installment plan, present for split transactions"`
}

// Recurrence is the API response model for an installment plan.
type Recurrence struct {
	ID                string  `json:"id" doc:"Recurrence UUID"`
	Installments      int     `json:"total_parcelas" doc:"Number of installments"`
	InstallmentAmount float64 `json:"valor_parcela" doc:"Amount of each installment"`
	NextExecution     string  `json:"proxima_execucao" doc:"Date of the next installment (YYYY-MM-DD)"`
	Active            bool    `json:"ativa" doc:"Whether installments are still pending"`
}

func fromService(tx service.Transaction) Transaction {
	out := Transaction{
		ID:           tx.ID.String(),
		Label:        tx.Label,
		Amount:       tx.Amount.InexactFloat64(),
		Description:  tx.Description,
		Date:         tx.Date.Format(time.DateOnly),
		Installments: tx.Installments,
		Kind:         tx.Kind,
		GroupID:      tx.GroupID.String(),
		CreatedBy:    tx.CreatedBy.String(),
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.DueDate != nil {
		due := tx.DueDate.Format(time.DateOnly)
		out.DueDate = &due
	}
	if tx.CategoryID.Valid {
		id := tx.CategoryID.UUID.String()
		out.CategoryID = &id
	}
	if r := tx.Recurrence; r != nil {
		out.Recurrence = &Recurrence{
			ID:                r.ID.String(),
			Installments:      r.Installments,
			InstallmentAmount: r.InstallmentAmount.InexactFloat64(),
			NextExecution:     r.NextExecution.Format(time.DateOnly),
			Active:            r.Active,
		}
	}
	return out
}
