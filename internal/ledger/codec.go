package ledger

import (
	"encoding/json"
	"fmt"

	"saldo/internal/core"
)

// The persisted encoding is a JSON array of field-named records, one per
// entity. Decoding what Encode produced yields the identical collection,
// same order included.

func encodeTransactions(txs []core.Transaction) ([]byte, error) {
	data, err := json.Marshal(txs)
	if err != nil {
		return nil, fmt.Errorf("encode transactions: %w", err)
	}
	return data, nil
}

func decodeTransactions(data []byte) ([]core.Transaction, error) {
	var txs []core.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return txs, nil
}

func encodeBudgets(budgets []core.Budget) ([]byte, error) {
	data, err := json.Marshal(budgets)
	if err != nil {
		return nil, fmt.Errorf("encode budgets: %w", err)
	}
	return data, nil
}

func decodeBudgets(data []byte) ([]core.Budget, error) {
	var budgets []core.Budget
	if err := json.Unmarshal(data, &budgets); err != nil {
		return nil, fmt.Errorf("decode budgets: %w", err)
	}
	return budgets, nil
}
