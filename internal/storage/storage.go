package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/household-server/internal/config"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB           bob.DB
	Identities   sqlconfig.IIdentityTable
	Profiles     sqlconfig.IProfileTable
	Groups       sqlconfig.IGroupTable
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
	Summaries    sqlconfig.ISummaryTable
}

// NewStorage opens the Postgres pool described by env. The pool connects lazily.
func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return New(db), nil
}

// New wraps an open database handle with the table gateways.
func New(db *sql.DB) *Storage {
	bdb := bob.NewDB(db)
	return &Storage{
		DB:           bdb,
		Identities:   sqlconfig.NewIdentitiesTable(bdb),
		Profiles:     sqlconfig.NewProfilesTable(bdb),
		Groups:       sqlconfig.NewGroupsTable(bdb),
		Categories:   sqlconfig.NewCategoriesTable(bdb),
		Transactions: sqlconfig.NewTransactionsTable(bdb),
		Summaries:    sqlconfig.NewSummariesTable(bdb),
	}
}

// Write begins a database transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
