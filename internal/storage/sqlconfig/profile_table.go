package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

var _ IProfileTable = (*ProfilesTable)(nil)

var profileColumns = []any{"id", "name", "email", "phone", "role", "avatar_url", "group_id"}

type ProfilesTable struct {
	exec bob.Executor
}

func NewProfilesTable(exec bob.Executor) *ProfilesTable {
	return &ProfilesTable{exec: exec}
}

// FindWithGroup retrieves a profile and its group name. Returns ErrNotFound when the
// identity has no profile row.
func (t *ProfilesTable) FindWithGroup(ctx context.Context, id uuid.UUID) (*ProfileWithGroup, error) {
	q := psql.Select(
		sm.Columns(
			"p.id", "p.name", "p.email", "p.phone", "p.role", "p.avatar_url", "p.group_id",
			"g.name AS group_name",
		),
		sm.From("profiles").As("p"),
		sm.InnerJoin("groups").As("g").OnEQ(psql.Quote("g", "id"), psql.Quote("p", "group_id")),
		sm.Where(psql.Quote("p", "id").EQ(psql.Arg(id))),
	)
	return one[ProfileWithGroup](ctx, t.exec, q)
}

// Insert creates a profile and returns the stored row.
func (t *ProfilesTable) Insert(ctx context.Context, create *ProfileCreate) (*Profile, error) {
	q := psql.Insert(
		im.Into("profiles", "id", "name", "email", "phone", "role", "group_id"),
		im.Values(
			psql.Arg(create.ID),
			psql.Arg(create.Name),
			psql.Arg(create.Email),
			psql.Arg(create.Phone),
			psql.Arg(create.Role),
			psql.Arg(create.GroupID),
		),
		im.Returning(profileColumns...),
	)
	return one[Profile](ctx, t.exec, q)
}

// Update applies the non-nil fields of update.
func (t *ProfilesTable) Update(ctx context.Context, id uuid.UUID, update *ProfileUpdate) (*Profile, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("profiles"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(profileColumns...),
	}
	if update.Name != nil {
		queryMods = append(queryMods, um.SetCol("name").ToArg(*update.Name))
	}
	if update.Phone != nil {
		queryMods = append(queryMods, um.SetCol("phone").ToArg(*update.Phone))
	}
	if update.AvatarURL != nil {
		queryMods = append(queryMods, um.SetCol("avatar_url").ToArg(*update.AvatarURL))
	}
	return one[Profile](ctx, t.exec, psql.Update(queryMods...))
}

// ListByGroup returns every member of a group ordered by name.
func (t *ProfilesTable) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Profile, error) {
	q := psql.Select(
		sm.Columns(profileColumns...),
		sm.From("profiles"),
		sm.Where(psql.Quote("group_id").EQ(psql.Arg(groupID))),
		sm.OrderBy("name").Asc(),
	)
	return all[Profile](ctx, t.exec, q)
}
