package service

import (
	"context"
	"time"

	"github.com/carson-networks/household-server/internal/blob"
	"github.com/carson-networks/household-server/internal/identity"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
)

// ActionProcessor runs an action inside its own database transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Clock returns the current time. Month windows are derived from it on every call.
type Clock func() time.Time

// Service holds all business logic services.
type Service struct {
	Auth        *AuthService
	Transaction *TransactionService
	Category    *CategoryService
	Profile     *ProfileService
	Summary     *SummaryService
}

// NewService creates a new Service with the given storage and collaborators.
func NewService(
	store *storage.Storage,
	processor ActionProcessor,
	provider identity.Provider,
	blobs blob.Store,
	clock Clock,
) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		Auth:        NewAuthService(provider, processor),
		Transaction: NewTransactionService(store, processor, clock),
		Category:    NewCategoryService(store),
		Profile:     NewProfileService(store, provider, blobs),
		Summary:     NewSummaryService(store, clock),
	}
}
