package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// UncategorizedLabel groups transactions that have no category.
const UncategorizedLabel = "uncategorized"

// MonthWindow is the inclusive calendar-date range of one month.
type MonthWindow struct {
	Start time.Time
	End   time.Time
}

// MonthWindowAt returns the calendar month containing now, in now's location.
func MonthWindowAt(now time.Time) MonthWindow {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return MonthWindow{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// Contains compares calendar dates only.
func (w MonthWindow) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, w.Start.Location())
	return !day.Before(w.Start) && !day.After(w.End)
}

// Month formats the window as YYYY-MM, the key used by the summary views.
func (w MonthWindow) Month() string {
	return w.Start.Format("2006-01")
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// AggregateExpenses sums the expense rows inside window per category name. The installment
// amount stands in for the full amount of split purchases. Totals are rounded to cents once,
// half away from zero, and returned in order of first occurrence.
func AggregateExpenses(rows []*sqlconfig.TransactionDetail, window MonthWindow) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal

	for _, row := range rows {
		if row == nil || !window.Contains(row.Date) || !isExpense(row) {
			continue
		}

		label := UncategorizedLabel
		if row.CategoryName != nil {
			label = *row.CategoryName
		}

		value := row.Amount
		if row.InstallmentAmount.Valid {
			value = row.InstallmentAmount.Decimal
		}

		i, ok := index[label]
		if !ok {
			i = len(totals)
			index[label] = i
			totals = append(totals, CategoryTotal{Category: label})
		}
		totals[i].Amount = totals[i].Amount.Add(value)
	}

	for i := range totals {
		totals[i].Amount = totals[i].Amount.Round(2)
	}
	return totals
}

// isExpense decides by the category kind; uncategorized rows fall back to the
// transaction's own kind and count unless marked as income.
func isExpense(row *sqlconfig.TransactionDetail) bool {
	if row.CategoryKind != nil {
		return *row.CategoryKind == string(sqlconfig.CategoryKindExpense)
	}
	return row.Kind != string(sqlconfig.CategoryKindIncome)
}
