// Package query filters, sorts and paginates transaction snapshots.
// Like report, it is pure: criteria plus snapshot in, result out.
package query

import (
	"sort"
	"strings"

	"saldo/internal/core"
)

// PageSize is the fixed number of transactions per page.
const PageSize = 10

const (
	// All disables a filter dimension.
	All = "all"

	SortAsc  = "asc"
	SortDesc = "desc"
)

type (
	// Criteria are the user-supplied filter, sort and pagination inputs.
	// Empty Search matches everything; All (or empty) disables the type,
	// category and month filters. Page is 1-based and is not clamped:
	// an out-of-range page yields an empty slice, not an error.
	Criteria struct {
		Search   string
		Type     string
		Category string
		Month    string // YYYY-MM
		Sort     string // asc or desc, default desc
		Page     int
	}

	// Result is one page of matches plus totals over the whole filtered
	// set, computed before pagination.
	Result struct {
		Items      []core.Transaction `json:"items"`
		Total      int                `json:"total"`
		TotalPages int                `json:"totalPages"`
		Page       int                `json:"page"`
		Income     float64            `json:"income"`
		Expenses   float64            `json:"expenses"`
		Net        float64            `json:"net"`
	}
)

// Apply runs the filter, sort and paginate pipeline over a snapshot.
func Apply(txs []core.Transaction, c Criteria) Result {
	filtered := filter(txs, c)

	// Stable sort keeps the relative filtered order for equal dates.
	asc := c.Sort == SortAsc
	sort.SliceStable(filtered, func(i, j int) bool {
		if asc {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Date > filtered[j].Date
	})

	res := Result{
		Total:      len(filtered),
		TotalPages: (len(filtered) + PageSize - 1) / PageSize,
		Page:       c.Page,
	}
	if res.Page < 1 {
		res.Page = 1
	}
	for _, tx := range filtered {
		if tx.Type == core.Income {
			res.Income += tx.Amount
		} else {
			res.Expenses += tx.Amount
		}
	}
	res.Net = res.Income - res.Expenses

	start := (res.Page - 1) * PageSize
	if start >= len(filtered) {
		res.Items = []core.Transaction{}
		return res
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	res.Items = filtered[start:end]
	return res
}

// Months lists the distinct YYYY-MM prefixes present in the snapshot,
// newest first, for the month filter dropdown.
func Months(txs []core.Transaction) []string {
	seen := map[string]struct{}{}
	var months []string
	for _, tx := range txs {
		m := tx.Month()
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// filter applies the four conjunctive predicates.
func filter(txs []core.Transaction, c Criteria) []core.Transaction {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if search != "" &&
			!strings.Contains(strings.ToLower(tx.Category), search) &&
			!strings.Contains(strings.ToLower(tx.Note), search) {
			continue
		}
		if !matchesAll(c.Type) && string(tx.Type) != c.Type {
			continue
		}
		if !matchesAll(c.Category) && tx.Category != c.Category {
			continue
		}
		if !matchesAll(c.Month) && !strings.HasPrefix(tx.Date, c.Month) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesAll(v string) bool {
	return v == "" || v == All
}
