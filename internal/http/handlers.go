package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"saldo/internal/core"
	"saldo/internal/query"
	"saldo/internal/report"
)

// handleSummary returns the dashboard view: derived totals, the expense
// breakdown, the monthly series and the five most recently added entries.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	txs := s.store.Transactions()
	income, expenses, balance := s.store.Totals()

	recent := txs
	if len(recent) > 5 {
		recent = recent[:5]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"balance":           balance,
		"totalIncome":       income,
		"totalExpenses":     expenses,
		"expenseByCategory": report.ExpenseByCategory(txs),
		"monthlySeries":     report.MonthlySeries(txs),
		"recent":            recent,
	})
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodPost:
		s.handleAddTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleListTransactions runs the filter/sort/paginate pipeline over the
// current snapshot.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs := s.store.Transactions()
	res := query.Apply(txs, parseCriteria(r))

	writeJSON(w, http.StatusOK, map[string]any{
		"result": res,
		"months": query.Months(txs),
	})
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Type     string  `json:"type"`
		Category string  `json:"category"`
		Amount   float64 `json:"amount"`
		Note     string  `json:"note"`
		Date     string  `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx := core.Transaction{
		Type:     core.TransactionType(in.Type),
		Category: sanitizeInput(in.Category),
		Amount:   in.Amount,
		Note:     sanitizeInput(in.Note),
		Date:     strings.TrimSpace(in.Date),
	}
	if !s.vocab.Contains(tx.Type, tx.Category) {
		writeError(w, http.StatusUnprocessableEntity, "unknown category for type")
		return
	}
	if err := s.store.AddTransaction(r.Context(), tx); err != nil {
		writeMutationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// handleTransactionByID handles /api/transactions/{id}.
func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	// Deleting an absent id is a no-op, same 204 either way.
	if err := s.store.DeleteTransaction(r.Context(), id); err != nil {
		writeMutationError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBudgets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleBudgetStatus(w, r)
	case http.MethodPut:
		s.handleUpsertBudget(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleBudgetStatus reports utilization per budget for a reference month
// (default: the current one) plus totals over budgeted categories.
func (s *Server) handleBudgetStatus(w http.ResponseWriter, r *http.Request) {
	month := parseMonth(r)
	txs := s.store.Transactions()
	budgets := s.store.Budgets()

	writeJSON(w, http.StatusOK, map[string]any{
		"month":   month,
		"budgets": report.BudgetStatus(budgets, txs, month),
		"summary": report.TotalsForBudgeted(budgets, report.SpentByCategory(txs, month)),
	})
}

func (s *Server) handleUpsertBudget(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Category string  `json:"category"`
		Limit    float64 `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category := sanitizeInput(in.Category)
	// Budgets only make sense for expense categories; the store itself
	// does not cross-check the vocabulary.
	if !s.vocab.Contains(core.Expense, category) {
		writeError(w, http.StatusUnprocessableEntity, "not an expense category")
		return
	}
	if err := s.store.UpsertBudget(r.Context(), category, in.Limit); err != nil {
		writeMutationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handleBudgetByCategory handles /api/budgets/{category}.
func (s *Server) handleBudgetByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	category := strings.TrimPrefix(r.URL.Path, "/api/budgets/")
	if category == "" {
		writeError(w, http.StatusBadRequest, "missing category")
		return
	}

	if err := s.store.DeleteBudget(r.Context(), category); err != nil {
		writeMutationError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCategories exposes the vocabulary and colors for form and chart
// rendering.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"income":  s.vocab.Income,
		"expense": s.vocab.Expense,
		"colors":  s.vocab.Colors,
	})
}
