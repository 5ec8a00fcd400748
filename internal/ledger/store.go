package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"saldo/internal/core"
	"saldo/internal/storage"
)

const (
	keyTransactions = "transactions"
	keyBudgets      = "budgets"
)

// ErrPersistence marks failures of the underlying KV store. When a mutation
// returns it, the in-memory collections still match the last successfully
// persisted state.
var ErrPersistence = errors.New("persistence failure")

// Store is the single source of truth for transactions and budgets.
// Transactions are held newest-first by insertion; budgets are keyed by
// category. Every mutation persists the updated collection before the
// in-memory state is swapped, so the two never diverge.
type Store struct {
	mu           sync.Mutex
	kv           storage.KV
	transactions []core.Transaction
	budgets      []core.Budget
	lastID       int64
}

// Open loads both collections from the KV store, falling back to the
// embedded seed dataset for any key with no persisted state.
func Open(ctx context.Context, kv storage.KV) (*Store, error) {
	s := &Store{kv: kv}

	data, ok, err := kv.Load(ctx, keyTransactions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if ok {
		if s.transactions, err = decodeTransactions(data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	} else {
		if s.transactions, err = seedTransactions(); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "No persisted transactions, using seed data", "count", len(s.transactions))
	}

	data, ok, err = kv.Load(ctx, keyBudgets)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if ok {
		if s.budgets, err = decodeBudgets(data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	} else {
		if s.budgets, err = seedBudgets(); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "No persisted budgets, using seed data", "count", len(s.budgets))
	}

	for _, tx := range s.transactions {
		if tx.ID > s.lastID {
			s.lastID = tx.ID
		}
	}

	return s, nil
}

// AddTransaction validates the input, assigns the next id and prepends the
// entry (most-recent-first ordering by insertion, not by date). The input id
// is ignored. Ids come from a monotonic counter seeded from the loaded data,
// so rapid successive additions cannot collide.
func (s *Store) AddTransaction(ctx context.Context, input core.Transaction) error {
	if err := input.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	input.ID = s.lastID + 1
	next := make([]core.Transaction, 0, len(s.transactions)+1)
	next = append(next, input)
	next = append(next, s.transactions...)

	if err := s.saveTransactions(ctx, next); err != nil {
		return err
	}
	s.transactions = next
	s.lastID = input.ID

	slog.InfoContext(ctx, "Transaction added",
		"id", input.ID, "type", input.Type, "category", input.Category, "amount", input.Amount)
	return nil
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// absent id is a silent no-op.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]core.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if tx.ID != id {
			next = append(next, tx)
		}
	}
	if len(next) == len(s.transactions) {
		return nil
	}

	if err := s.saveTransactions(ctx, next); err != nil {
		return err
	}
	s.transactions = next

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

// UpsertBudget replaces the limit for an existing category or appends a new
// budget. The caller is responsible for category membership in the expense
// vocabulary; the store only enforces a positive limit.
func (s *Store) UpsertBudget(ctx context.Context, category string, limit float64) error {
	if err := (core.Budget{Category: category, Limit: limit}).Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]core.Budget, len(s.budgets))
	copy(next, s.budgets)

	found := false
	for i := range next {
		if next[i].Category == category {
			next[i].Limit = limit
			found = true
			break
		}
	}
	if !found {
		next = append(next, core.Budget{Category: category, Limit: limit})
	}

	if err := s.saveBudgets(ctx, next); err != nil {
		return err
	}
	s.budgets = next

	slog.InfoContext(ctx, "Budget upserted", "category", category, "limit", limit, "created", !found)
	return nil
}

// DeleteBudget removes the budget for a category. Deleting an absent
// category is a silent no-op.
func (s *Store) DeleteBudget(ctx context.Context, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]core.Budget, 0, len(s.budgets))
	for _, b := range s.budgets {
		if b.Category != category {
			next = append(next, b)
		}
	}
	if len(next) == len(s.budgets) {
		return nil
	}

	if err := s.saveBudgets(ctx, next); err != nil {
		return err
	}
	s.budgets = next

	slog.InfoContext(ctx, "Budget deleted", "category", category)
	return nil
}

// Transactions returns a copy of the current snapshot, newest-added first.
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Budgets returns a copy of the current budget collection.
func (s *Store) Budgets() []core.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// Totals recomputes income, expenses and balance from the current snapshot.
func (s *Store) Totals() (income, expenses, balance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.transactions {
		switch tx.Type {
		case core.Income:
			income += tx.Amount
		case core.Expense:
			expenses += tx.Amount
		}
	}
	return income, expenses, income - expenses
}

func (s *Store) saveTransactions(ctx context.Context, txs []core.Transaction) error {
	data, err := encodeTransactions(txs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := s.kv.Save(ctx, keyTransactions, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (s *Store) saveBudgets(ctx context.Context, budgets []core.Budget) error {
	data, err := encodeBudgets(budgets)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := s.kv.Save(ctx, keyBudgets, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
