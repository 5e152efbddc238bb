package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// SummaryService reads the monthly summary views.
type SummaryService struct {
	storage *storage.Storage
	now     Clock
}

func NewSummaryService(store *storage.Storage, clock Clock) *SummaryService {
	return &SummaryService{storage: store, now: clock}
}

// MonthlyTotals returns the income and expense totals of every month of the group.
func (s *SummaryService) MonthlyTotals(ctx context.Context, groupID uuid.UUID) ([]*sqlconfig.MonthlySummary, error) {
	rows, err := s.storage.Summaries.MonthlyByGroup(ctx, groupID)
	if err != nil {
		return nil, storeError(ctx, err)
	}
	return rows, nil
}

// MemberTotals returns each member's totals for the current month.
func (s *SummaryService) MemberTotals(ctx context.Context, groupID uuid.UUID) ([]*sqlconfig.MemberMonthlySummary, error) {
	month := MonthWindowAt(s.now()).Month()
	rows, err := s.storage.Summaries.MembersByMonth(ctx, groupID, month)
	if err != nil {
		return nil, storeError(ctx, err)
	}
	return rows, nil
}
