package core

import (
	"errors"
	"time"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

type (
	// TxType is the built-in transaction category, distinct from user tags.
	TxType string

	// User is a named profile with an initial (signed) balance.
	User struct {
		Name    string `json:"name"`
		Balance int64  `json:"balance"`
	}

	// Transaction lives inside a month bucket. ID is unique and stable
	// across edits; every other field is replaceable.
	Transaction struct {
		ID     int64  `json:"id"`
		Type   TxType `json:"type"`
		Date   int    `json:"date"` // day of month, 1..daysInMonth
		Item   string `json:"item"`
		Amount int64  `json:"amount"`
		Tag    string `json:"tag,omitempty"`
	}

	// TransactionsByMonth maps "YYYY-MM" keys to ordered buckets.
	// A key is never present with an empty bucket.
	TransactionsByMonth map[string][]Transaction

	// Template is a reusable preset for creating transactions, keyed by Item.
	Template struct {
		Type   TxType `json:"type"`
		Item   string `json:"item"`
		Amount int64  `json:"amount"`
		Tag    string `json:"tag,omitempty"`
	}

	// Tag is a user-defined category with a display color.
	Tag struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}

	// Labels holds the locale-specific built-in type labels. Tag names may
	// not shadow them.
	Labels struct {
		Income  string
		Expense string
	}
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidFormat     = errors.New("invalid file format")
	ErrOverwriteRequired = errors.New("data already exists")
	ErrInvariant         = errors.New("operation not allowed")
)

// DefaultLabels returns the English built-in type labels.
func DefaultLabels() Labels {
	return Labels{Income: "income", Expense: "expense"}
}

// ForType returns the label for a transaction type.
func (l Labels) ForType(t TxType) string {
	if t == Income {
		return l.Income
	}
	return l.Expense
}

// IsReserved reports whether name equals either built-in label.
func (l Labels) IsReserved(name string) bool {
	return name == l.Income || name == l.Expense
}

// IsValid reports whether t is one of the two built-in types.
func (t TxType) IsValid() bool {
	return t == Income || t == Expense
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
