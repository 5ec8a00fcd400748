package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	// Transaction is a single income or expense entry in the ledger.
	// ID is assigned by the ledger store at creation time and never changes.
	Transaction struct {
		ID       int64           `json:"id"`
		Type     TransactionType `json:"type"`
		Category string          `json:"category"`
		Amount   float64         `json:"amount"`
		Note     string          `json:"note,omitempty"`
		Date     string          `json:"date"` // YYYY-MM-DD
	}

	// Budget is a monthly spending ceiling for one expense category.
	// Category is the unique key within the budget collection.
	Budget struct {
		Category string  `json:"category"`
		Limit    float64 `json:"limit"`
	}
)

var (
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyDate     = errors.New("empty date")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidLimit  = errors.New("invalid budget limit")
)

func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

func (tx Transaction) Validate() error {
	if err := tx.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(tx.Category) == "" {
		return ErrEmptyCategory
	}
	if tx.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(tx.Date) == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse("2006-01-02", tx.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if b.Limit <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

// Month returns the YYYY-MM prefix of the transaction date.
func (tx Transaction) Month() string {
	if len(tx.Date) < 7 {
		return tx.Date
	}
	return tx.Date[:7]
}
