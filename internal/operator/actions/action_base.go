package actions

import (
	"context"

	"github.com/carson-networks/household-server/internal/storage"
)

// IAction is a unit of work executed inside a single database transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
