package sqlconfig

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

var _ IIdentityTable = (*IdentitiesTable)(nil)

var identityColumns = []any{"id", "email", "password_hash", "created_at"}

type IdentitiesTable struct {
	exec bob.Executor
}

func NewIdentitiesTable(exec bob.Executor) *IdentitiesTable {
	return &IdentitiesTable{exec: exec}
}

func (t *IdentitiesTable) FindByID(ctx context.Context, id uuid.UUID) (*Identity, error) {
	q := psql.Select(
		sm.Columns(identityColumns...),
		sm.From("identities"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return one[Identity](ctx, t.exec, q)
}

// FindByEmail matches case-insensitively; emails are stored lower-cased.
func (t *IdentitiesTable) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	q := psql.Select(
		sm.Columns(identityColumns...),
		sm.From("identities"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(strings.ToLower(email)))),
	)
	return one[Identity](ctx, t.exec, q)
}

func (t *IdentitiesTable) Insert(ctx context.Context, email, passwordHash string) (*Identity, error) {
	q := psql.Insert(
		im.Into("identities", "email", "password_hash"),
		im.Values(psql.Arg(strings.ToLower(email)), psql.Arg(passwordHash)),
		im.Returning(identityColumns...),
	)
	return one[Identity](ctx, t.exec, q)
}

func (t *IdentitiesTable) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := psql.Update(
		um.Table("identities"),
		um.SetCol("password_hash").ToArg(passwordHash),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *IdentitiesTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("identities"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
