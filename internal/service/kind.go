package service

import (
	"fmt"
	"strings"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// ParseKind accepts income/expense and the receita/despesa labels older clients send.
func ParseKind(raw string) (sqlconfig.CategoryKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "income", "receita":
		return sqlconfig.CategoryKindIncome, nil
	case "expense", "despesa":
		return sqlconfig.CategoryKindExpense, nil
	default:
		return "", apperr.BadRequest(fmt.Sprintf("tipo inválido %q: use receita ou despesa", raw))
	}
}
