package core

// Window selects the time range an aggregation covers.
type Window int

const (
	// WindowThisMonth covers the real-world calendar month.
	WindowThisMonth Window = iota
	// WindowSelectedMonth covers the month currently selected for display.
	WindowSelectedMonth
	// WindowSelectedYear covers every bucket of the selected year.
	WindowSelectedYear
)

// Totals holds period sums. Balance is always Income - Expense.
type Totals struct {
	Expense int64 `json:"expense"`
	Income  int64 `json:"income"`
	Balance int64 `json:"balance"`
}

// Summarize accumulates totals over txs with an optional tag filter.
// An empty filter passes everything. A filter equal to a built-in type
// label applies no exclusion either: type labels only matter for row-level
// matching, not for totals. Any other filter keeps transactions whose tag
// equals it.
func Summarize(txs []Transaction, filter string, labels Labels) Totals {
	var t Totals
	for _, tx := range txs {
		if filter != "" && !labels.IsReserved(filter) && tx.Tag != filter {
			continue
		}
		switch tx.Type {
		case Income:
			t.Income += tx.Amount
		default:
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// CurrentBalance is the user's initial balance plus the signed sum over all
// months ever recorded, regardless of any display window.
func CurrentBalance(u User, byMonth TransactionsByMonth) int64 {
	balance := u.Balance
	for _, bucket := range byMonth {
		for _, tx := range bucket {
			if tx.Type == Income {
				balance += tx.Amount
			} else {
				balance -= tx.Amount
			}
		}
	}
	return balance
}

// MatchesFilter implements row-level highlight semantics: a transaction
// matches an empty filter, a built-in type label when it is untagged and of
// that type, or a filter equal to its own tag.
func MatchesFilter(tx Transaction, filter string, labels Labels) bool {
	if filter == "" {
		return true
	}
	if labels.IsReserved(filter) {
		return tx.Tag == "" && labels.ForType(tx.Type) == filter
	}
	return tx.Tag == filter
}
