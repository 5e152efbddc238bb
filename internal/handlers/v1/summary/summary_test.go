package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/session"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type mockSummaryService struct {
	mock.Mock
}

func (m *mockSummaryService) MonthlyTotals(ctx context.Context, groupID uuid.UUID) ([]*sqlconfig.MonthlySummary, error) {
	args := m.Called(ctx, groupID)
	rows, _ := args.Get(0).([]*sqlconfig.MonthlySummary)
	return rows, args.Error(1)
}

func (m *mockSummaryService) MemberTotals(ctx context.Context, groupID uuid.UUID) ([]*sqlconfig.MemberMonthlySummary, error) {
	args := m.Called(ctx, groupID)
	rows, _ := args.Get(0).([]*sqlconfig.MemberMonthlySummary)
	return rows, args.Error(1)
}

func newTestAPI(t *testing.T, svc summaryReader, groupID uuid.UUID) humatest.TestAPI {
	t.Helper()
	apperr.Install()
	_, api := humatest.New(t)
	caller := &session.Identity{ID: uuid.Must(uuid.NewV4()), GroupID: groupID}
	NewHandler(svc, huma.Middlewares{func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, session.WithIdentity(ctx.Context(), caller)))
	}}).Register(api)
	return api
}

func TestHTTP_MonthlyTotals(t *testing.T) {
	groupID := uuid.Must(uuid.NewV4())
	svc := new(mockSummaryService)
	svc.On("MonthlyTotals", mock.Anything, groupID).Return([]*sqlconfig.MonthlySummary{
		{
			GroupID: groupID,
			Month:   "2025-03",
			Income:  decimal.RequireFromString("5000"),
			Expense: decimal.RequireFromString("3210.55"),
			Balance: decimal.RequireFromString("1789.45"),
		},
	}, nil)

	resp := newTestAPI(t, svc, groupID).Get("/card-receita")

	require.Equal(t, http.StatusOK, resp.Code)
	var body []MonthlyTotal
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, MonthlyTotal{
		GroupID: groupID.String(),
		Month:   "2025-03",
		Income:  5000,
		Expense: 3210.55,
		Balance: 1789.45,
	}, body[0])
}

func TestHTTP_MemberTotals(t *testing.T) {
	groupID := uuid.Must(uuid.NewV4())
	memberID := uuid.Must(uuid.NewV4())
	svc := new(mockSummaryService)
	svc.On("MemberTotals", mock.Anything, groupID).Return([]*sqlconfig.MemberMonthlySummary{
		{
			GroupID:    groupID,
			MemberID:   memberID,
			MemberName: "Ana",
			Month:      "2025-03",
			Income:     decimal.Zero,
			Expense:    decimal.RequireFromString("80"),
		},
	}, nil)

	resp := newTestAPI(t, svc, groupID).Get("/grupo")

	require.Equal(t, http.StatusOK, resp.Code)
	var body []MemberTotal
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, memberID.String(), body[0].MemberID)
	assert.Equal(t, "Ana", body[0].Name)
	assert.Equal(t, 80.0, body[0].Expense)
}

func TestHTTP_MonthlyTotals_StoreFailure(t *testing.T) {
	groupID := uuid.Must(uuid.NewV4())
	svc := new(mockSummaryService)
	svc.On("MonthlyTotals", mock.Anything, groupID).Return(nil, apperr.Store(errors.New(`relation "monthly_summary" does not exist`)))

	resp := newTestAPI(t, svc, groupID).Get("/card-receita")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, `relation "monthly_summary" does not exist`, payload.Error)
}
