// Package sqlconfig holds the table gateways for the PostgreSQL schema in /migrations.
// Each table is exposed through an I*Table interface so services and actions can be
// exercised against mocks; the concrete tables build their queries with bob.
package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/scan"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("record not found")

func one[T any](ctx context.Context, exec bob.Executor, q bob.Query) (*T, error) {
	row, err := bob.One(ctx, exec, q, scan.StructMapper[T]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func all[T any](ctx context.Context, exec bob.Executor, q bob.Query) ([]*T, error) {
	rows, err := bob.All(ctx, exec, q, scan.StructMapper[T]())
	if err != nil {
		return nil, err
	}
	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
