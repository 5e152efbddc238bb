package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// inlineProcessor runs actions directly against writer, or fails with err without running them.
type inlineProcessor struct {
	writer *storage.Writer
	err    error
	calls  int
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.calls++
	if p.err != nil {
		return p.err
	}
	return action.Perform(ctx, p.writer)
}

type tables struct {
	identities   *sqlconfig.MockIIdentityTable
	profiles     *sqlconfig.MockIProfileTable
	groups       *sqlconfig.MockIGroupTable
	categories   *sqlconfig.MockICategoryTable
	transactions *sqlconfig.MockITransactionTable
	recurrences  *sqlconfig.MockIRecurrenceTable
	summaries    *sqlconfig.MockISummaryTable
}

func newTables(t *testing.T) (*tables, *storage.Storage, *storage.Writer) {
	t.Helper()
	m := &tables{
		identities:   sqlconfig.NewMockIIdentityTable(t),
		profiles:     sqlconfig.NewMockIProfileTable(t),
		groups:       sqlconfig.NewMockIGroupTable(t),
		categories:   sqlconfig.NewMockICategoryTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		recurrences:  sqlconfig.NewMockIRecurrenceTable(t),
		summaries:    sqlconfig.NewMockISummaryTable(t),
	}
	store := &storage.Storage{
		Identities:   m.identities,
		Profiles:     m.profiles,
		Groups:       m.groups,
		Categories:   m.categories,
		Transactions: m.transactions,
		Summaries:    m.summaries,
	}
	writer := &storage.Writer{
		Groups:       m.groups,
		Profiles:     m.profiles,
		Transactions: m.transactions,
		Recurrences:  m.recurrences,
	}
	return m, store, writer
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func ptr[T any](v T) *T {
	return &v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
