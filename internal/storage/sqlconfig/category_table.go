package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
)

var _ ICategoryTable = (*CategoriesTable)(nil)

var categoryColumns = []any{"id", "name", "kind", "group_id"}

type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// Insert creates a category and returns the stored row.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into("categories", "name", "kind", "group_id"),
		im.Values(psql.Arg(create.Name), psql.Arg(string(create.Kind)), psql.Arg(create.GroupID)),
		im.Returning(categoryColumns...),
	)
	return one[Category](ctx, t.exec, q)
}

// ListByGroup returns the categories of a group ordered by name.
func (t *CategoriesTable) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From("categories"),
		sm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return all[Category](ctx, t.exec, q)
}

// Delete removes a category of the group and returns the deleted rows (empty when
// nothing matched).
func (t *CategoriesTable) Delete(ctx context.Context, groupID, id uuid.UUID) ([]*Category, error) {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
		dm.Returning(categoryColumns...),
	)
	return all[Category](ctx, t.exec, q)
}
