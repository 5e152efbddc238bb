package category

import (
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// Category is the API response model for a category.
type Category struct {
	ID      string `json:"id" doc:"Category UUID"`
	Name    string `json:"nome" doc:"Category name"`
	Kind    string `json:"tipo" enum:"income,expense" doc:"Whether the category groups income or expenses"`
	GroupID string `json:"grupo_id" doc:"Group UUID"`
}

func fromRows(rows []*sqlconfig.Category) []Category {
	out := make([]Category, len(rows))
	for i, row := range rows {
		out[i] = Category{
			ID:      row.ID.String(),
			Name:    row.Name,
			Kind:    string(row.Kind),
			GroupID: row.GroupID.String(),
		}
	}
	return out
}
