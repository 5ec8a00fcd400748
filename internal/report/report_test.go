package report

import (
	"math"
	"testing"

	"saldo/internal/core"
)

func TestExpenseByCategory(t *testing.T) {
	txs := []core.Transaction{
		{Type: core.Expense, Category: "Food", Amount: 85, Date: "2025-02-04"},
		{Type: core.Expense, Category: "Food", Amount: 55, Date: "2025-02-14"},
		{Type: core.Expense, Category: "Rent", Amount: 1200, Date: "2025-02-02"},
		{Type: core.Income, Category: "Salary", Amount: 3500, Date: "2025-02-01"},
	}

	sums := ExpenseByCategory(txs)
	if len(sums) != 2 {
		t.Fatalf("got %d categories, want 2", len(sums))
	}
	if sums["Food"] != 140 {
		t.Errorf("Food = %v, want 140", sums["Food"])
	}
	if sums["Rent"] != 1200 {
		t.Errorf("Rent = %v, want 1200", sums["Rent"])
	}
	if _, ok := sums["Salary"]; ok {
		t.Error("income categories must not appear in expense breakdown")
	}
}

func TestMonthlySeries(t *testing.T) {
	txs := []core.Transaction{
		{Type: core.Expense, Category: "Food", Amount: 50, Date: "2025-02-10"},
		{Type: core.Income, Category: "Salary", Amount: 3000, Date: "2025-01-01"},
		{Type: core.Expense, Category: "Rent", Amount: 1200, Date: "2025-01-02"},
		{Type: core.Income, Category: "Salary", Amount: 3000, Date: "2025-02-01"},
		{Type: core.Expense, Category: "Food", Amount: 30, Date: "2024-12-28"},
	}

	series := MonthlySeries(txs)
	if len(series) != 3 {
		t.Fatalf("got %d months, want 3", len(series))
	}

	wantOrder := []string{"2024-12", "2025-01", "2025-02"}
	for i, m := range wantOrder {
		if series[i].Month != m {
			t.Errorf("series[%d].Month = %q, want %q", i, series[i].Month, m)
		}
	}
	if series[1].Income != 3000 || series[1].Expenses != 1200 {
		t.Errorf("2025-01 = %+v, want income 3000 expenses 1200", series[1])
	}
}

func TestBudgetStatusClassification(t *testing.T) {
	budgets := []core.Budget{{Category: "Food", Limit: 100}}

	tests := []struct {
		name        string
		spent       float64
		wantState   string
		wantPercent float64
	}{
		{"over", 150, StateOver, 100},
		{"warning", 80, StateWarning, 80},
		{"ok", 50, StateOK, 50},
		{"exactly at limit", 100, StateWarning, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := []core.Transaction{
				{Type: core.Expense, Category: "Food", Amount: tt.spent, Date: "2025-02-04"},
			}
			statuses := BudgetStatus(budgets, txs, "2025-02")
			if len(statuses) != 1 {
				t.Fatalf("got %d statuses, want 1", len(statuses))
			}
			st := statuses[0]
			if st.State != tt.wantState {
				t.Errorf("state = %q, want %q", st.State, tt.wantState)
			}
			if st.Percent != tt.wantPercent {
				t.Errorf("percent = %v, want %v", st.Percent, tt.wantPercent)
			}
			if st.Spent != tt.spent {
				t.Errorf("spent = %v, want %v", st.Spent, tt.spent)
			}
		})
	}
}

func TestBudgetStatusIgnoresOtherMonths(t *testing.T) {
	budgets := []core.Budget{{Category: "Food", Limit: 100}}
	txs := []core.Transaction{
		{Type: core.Expense, Category: "Food", Amount: 60, Date: "2025-02-04"},
		{Type: core.Expense, Category: "Food", Amount: 90, Date: "2025-01-20"},
		{Type: core.Income, Category: "Salary", Amount: 500, Date: "2025-02-01"},
	}

	statuses := BudgetStatus(budgets, txs, "2025-02")
	if statuses[0].Spent != 60 {
		t.Errorf("spent = %v, want 60 (only the reference month counts)", statuses[0].Spent)
	}
}

func TestBudgetStatusZeroLimit(t *testing.T) {
	// A zero limit violates the budget invariant; it must read as over.
	budgets := []core.Budget{{Category: "Food", Limit: 0}}
	statuses := BudgetStatus(budgets, nil, "2025-02")

	if statuses[0].State != StateOver {
		t.Errorf("state = %q, want %q", statuses[0].State, StateOver)
	}
	if statuses[0].Percent != 100 {
		t.Errorf("percent = %v, want 100", statuses[0].Percent)
	}
}

func TestBudgetStatusSeedScenario(t *testing.T) {
	budgets := []core.Budget{{Category: "Food", Limit: 300}}
	txs := []core.Transaction{
		{Type: core.Expense, Category: "Food", Amount: 85, Date: "2025-02-04"},
	}

	statuses := BudgetStatus(budgets, txs, "2025-02")
	st := statuses[0]
	if st.Spent != 85 {
		t.Errorf("spent = %v, want 85", st.Spent)
	}
	if math.Abs(st.Percent-85.0/300*100) > 1e-9 {
		t.Errorf("percent = %v, want ~28.3", st.Percent)
	}
	if st.State != StateOK {
		t.Errorf("state = %q, want %q", st.State, StateOK)
	}
}

func TestTotalsForBudgeted(t *testing.T) {
	budgets := []core.Budget{
		{Category: "Food", Limit: 300},
		{Category: "Transport", Limit: 100},
		{Category: "Shopping", Limit: 200},
	}
	spent := map[string]float64{
		"Food":      120,
		"Transport": 150, // over
		"Education": 500, // not budgeted, must not count
	}

	sum := TotalsForBudgeted(budgets, spent)
	if sum.TotalBudgeted != 600 {
		t.Errorf("TotalBudgeted = %v, want 600", sum.TotalBudgeted)
	}
	if sum.TotalSpent != 270 {
		t.Errorf("TotalSpent = %v, want 270", sum.TotalSpent)
	}
	if sum.OverCount != 1 {
		t.Errorf("OverCount = %d, want 1", sum.OverCount)
	}
}
