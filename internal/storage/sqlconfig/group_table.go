package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

var _ IGroupTable = (*GroupsTable)(nil)

var groupColumns = []any{"id", "name", "created_by", "created_at"}

type GroupsTable struct {
	exec bob.Executor
}

func NewGroupsTable(exec bob.Executor) *GroupsTable {
	return &GroupsTable{exec: exec}
}

// FindByID retrieves a group by primary key.
func (t *GroupsTable) FindByID(ctx context.Context, id uuid.UUID) (*Group, error) {
	q := psql.Select(
		sm.Columns(groupColumns...),
		sm.From("groups"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return one[Group](ctx, t.exec, q)
}

// Insert creates a group and returns the stored row.
func (t *GroupsTable) Insert(ctx context.Context, create *GroupCreate) (*Group, error) {
	q := psql.Insert(
		im.Into("groups", "name", "created_by"),
		im.Values(psql.Arg(create.Name), psql.Arg(create.CreatedBy)),
		im.Returning(groupColumns...),
	)
	return one[Group](ctx, t.exec, q)
}

// Rename changes the display name of a group.
func (t *GroupsTable) Rename(ctx context.Context, id uuid.UUID, name string) (*Group, error) {
	q := psql.Update(
		um.Table("groups"),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(groupColumns...),
	)
	return one[Group](ctx, t.exec, q)
}
