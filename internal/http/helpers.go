package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"saldo/internal/ledger"
	"saldo/internal/query"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Encode response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeMutationError maps engine errors onto status codes: persistence
// failures are server errors, everything else is invalid input.
func writeMutationError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ledger.ErrPersistence) {
		slog.ErrorContext(r.Context(), "Mutation persistence failure", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "could not persist change")
		return
	}
	writeError(w, http.StatusUnprocessableEntity, err.Error())
}

// parseCriteria extracts filter, sort and pagination inputs from query
// parameters. Missing values fall back to the unfiltered defaults.
func parseCriteria(r *http.Request) query.Criteria {
	q := r.URL.Query()
	c := query.Criteria{
		Search:   q.Get("q"),
		Type:     q.Get("type"),
		Category: q.Get("category"),
		Month:    q.Get("month"),
		Sort:     q.Get("sort"),
		Page:     1,
	}
	if c.Sort != query.SortAsc {
		c.Sort = query.SortDesc
	}
	if v := strings.TrimSpace(q.Get("page")); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			c.Page = p
		}
	}
	return c
}

// parseMonth returns the month query parameter, defaulting to the current
// calendar month.
func parseMonth(r *http.Request) string {
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		return v
	}
	return time.Now().Format("2006-01")
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
