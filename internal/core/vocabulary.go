package core

// Vocabulary is the fixed set of allowed categories, split by transaction
// type, plus the display color for each. It is built once at startup and
// passed to the components that need it; budgets may only reference
// expense categories.
type Vocabulary struct {
	Income  []string
	Expense []string
	Colors  map[string]string
}

const fallbackColor = "#a8a29e"

// DefaultVocabulary returns the built-in category set.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Income:  []string{"Salary", "Freelance", "Investment", "Gift", "Other Income"},
		Expense: []string{"Food", "Transport", "Shopping", "Entertainment", "Health", "Rent", "Utilities", "Education", "Other"},
		Colors: map[string]string{
			"Salary":        "#16a34a",
			"Freelance":     "#22c55e",
			"Investment":    "#4ade80",
			"Gift":          "#86efac",
			"Other Income":  "#bbf7d0",
			"Food":          "#ef4444",
			"Transport":     "#f97316",
			"Shopping":      "#eab308",
			"Entertainment": "#8b5cf6",
			"Health":        "#06b6d4",
			"Rent":          "#ec4899",
			"Utilities":     "#64748b",
			"Education":     "#3b82f6",
			"Other":         "#a8a29e",
		},
	}
}

// ColorFor returns the display color for a category, with a neutral
// fallback for unknown names.
func (v Vocabulary) ColorFor(category string) string {
	if c, ok := v.Colors[category]; ok {
		return c
	}
	return fallbackColor
}

// Contains reports whether category belongs to the vocabulary for the
// given transaction type.
func (v Vocabulary) Contains(t TransactionType, category string) bool {
	list := v.Expense
	if t == Income {
		list = v.Income
	}
	for _, c := range list {
		if c == category {
			return true
		}
	}
	return false
}

// All returns every category, income first, preserving declaration order.
func (v Vocabulary) All() []string {
	out := make([]string, 0, len(v.Income)+len(v.Expense))
	out = append(out, v.Income...)
	out = append(out, v.Expense...)
	return out
}
