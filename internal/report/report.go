// Package report computes derived views over ledger snapshots. Every
// function is pure: same inputs, same outputs, no hidden state. Sums use
// plain float64 accumulation; display rounding is left to the caller.
package report

import (
	"sort"
	"strings"

	"saldo/internal/core"
)

const (
	StateOK      = "ok"
	StateWarning = "warning"
	StateOver    = "over"
)

type (
	// MonthPoint is one entry of the monthly income/expense series.
	MonthPoint struct {
		Month    string  `json:"month"` // YYYY-MM
		Income   float64 `json:"income"`
		Expenses float64 `json:"expenses"`
	}

	// Status is the utilization of one budget within a reference month.
	Status struct {
		Category string  `json:"category"`
		Limit    float64 `json:"limit"`
		Spent    float64 `json:"spent"`
		Percent  float64 `json:"percent"`
		State    string  `json:"state"`
	}

	// Summary aggregates across all budgeted categories.
	Summary struct {
		TotalBudgeted float64 `json:"totalBudgeted"`
		TotalSpent    float64 `json:"totalSpent"`
		OverCount     int     `json:"overCount"`
	}
)

// ExpenseByCategory sums expense amounts per category.
func ExpenseByCategory(txs []core.Transaction) map[string]float64 {
	sums := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type == core.Expense {
			sums[tx.Category] += tx.Amount
		}
	}
	return sums
}

// MonthlySeries sums income and expenses per distinct YYYY-MM month,
// sorted ascending. Lexicographic order is chronological for this format.
func MonthlySeries(txs []core.Transaction) []MonthPoint {
	byMonth := make(map[string]*MonthPoint)
	for _, tx := range txs {
		month := tx.Month()
		p, ok := byMonth[month]
		if !ok {
			p = &MonthPoint{Month: month}
			byMonth[month] = p
		}
		if tx.Type == core.Income {
			p.Income += tx.Amount
		} else {
			p.Expenses += tx.Amount
		}
	}

	series := make([]MonthPoint, 0, len(byMonth))
	for _, p := range byMonth {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}

// SpentByCategory sums expense amounts per category for one reference
// month (YYYY-MM date prefix).
func SpentByCategory(txs []core.Transaction, month string) map[string]float64 {
	sums := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type == core.Expense && strings.HasPrefix(tx.Date, month) {
			sums[tx.Category] += tx.Amount
		}
	}
	return sums
}

// BudgetStatus computes per-budget utilization for the reference month.
// over when spent exceeds the limit, warning above 75 percent, ok
// otherwise. A non-positive limit cannot occur under the budget invariant;
// if it does, the budget reads as fully consumed and over.
func BudgetStatus(budgets []core.Budget, txs []core.Transaction, month string) []Status {
	spentByCategory := SpentByCategory(txs, month)

	statuses := make([]Status, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		st := Status{Category: b.Category, Limit: b.Limit, Spent: spent}

		switch {
		case b.Limit <= 0:
			st.Percent = 100
			st.State = StateOver
		case spent > b.Limit:
			st.Percent = 100
			st.State = StateOver
		default:
			st.Percent = spent / b.Limit * 100
			if st.Percent > 75 {
				st.State = StateWarning
			} else {
				st.State = StateOK
			}
		}
		statuses = append(statuses, st)
	}
	return statuses
}

// TotalsForBudgeted sums limits and month spending over budgeted
// categories only, and counts budgets whose spending exceeds the limit.
func TotalsForBudgeted(budgets []core.Budget, spentByCategory map[string]float64) Summary {
	var sum Summary
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		sum.TotalBudgeted += b.Limit
		sum.TotalSpent += spent
		if spent > b.Limit {
			sum.OverCount++
		}
	}
	return sum
}
