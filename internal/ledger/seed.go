package ledger

import (
	"embed"
	"fmt"

	"saldo/internal/core"
)

// Seed data uses the persisted encoding, so the same codec reads both.
//
//go:embed seed/transactions.json seed/budgets.json
var seedFS embed.FS

func seedTransactions() ([]core.Transaction, error) {
	data, err := seedFS.ReadFile("seed/transactions.json")
	if err != nil {
		return nil, fmt.Errorf("read seed transactions: %w", err)
	}
	return decodeTransactions(data)
}

func seedBudgets() ([]core.Budget, error) {
	data, err := seedFS.ReadFile("seed/budgets.json")
	if err != nil {
		return nil, fmt.Errorf("read seed budgets: %w", err)
	}
	return decodeBudgets(data)
}
