package session

import (
	"fmt"

	"moneytracker/internal/core"
)

// SelectMonth changes the month the selected-month and selected-year
// windows refer to.
func (s *Session) SelectMonth(year, month int) error {
	if month < 1 || month > 12 {
		return s.report(fmt.Errorf("%w: invalid month %d", core.ErrValidation, month))
	}
	s.selectedYear = year
	s.selectedMonth = month
	return nil
}

// SelectedMonth returns the currently selected year and month.
func (s *Session) SelectedMonth() (int, int) {
	return s.selectedYear, s.selectedMonth
}

// ToggleFilter activates a tag filter; toggling the active value clears it.
// Returns the filter now in effect.
func (s *Session) ToggleFilter(f string) string {
	if s.filter == f {
		s.filter = ""
	} else {
		s.filter = f
	}
	return s.filter
}

// Filter returns the active tag filter, empty when none.
func (s *Session) Filter() string {
	return s.filter
}

// Matches reports whether a transaction matches the filter for row-level
// highlighting.
func (s *Session) Matches(tx core.Transaction, filter string) bool {
	return core.MatchesFilter(tx, filter, s.cfg.Labels())
}

func (s *Session) windowTransactions(window core.Window) []core.Transaction {
	switch window {
	case core.WindowThisMonth:
		today := s.now()
		return s.transactions[core.MonthKey(today.Year(), int(today.Month()))]
	case core.WindowSelectedMonth:
		return s.transactions[core.MonthKey(s.selectedYear, s.selectedMonth)]
	case core.WindowSelectedYear:
		var out []core.Transaction
		for _, key := range s.transactions.KeysForYear(s.selectedYear) {
			out = append(out, s.transactions[key]...)
		}
		return out
	default:
		return nil
	}
}

// Aggregates computes period totals for a window under an optional tag
// filter. Results are memoized until the next mutation.
func (s *Session) Aggregates(window core.Window, filter string) core.Totals {
	key := fmt.Sprintf("%s|%d|%s|%04d-%02d", s.current, window, filter, s.selectedYear, s.selectedMonth)
	if totals, ok := s.totals.Get(key); ok {
		return totals
	}
	totals := core.Summarize(s.windowTransactions(window), filter, s.cfg.Labels())
	s.totals.Set(key, totals)
	return totals
}

// CurrentBalance is the selected user's initial balance plus the signed sum
// over every month ever recorded.
func (s *Session) CurrentBalance() (int64, error) {
	u, ok := s.CurrentUser()
	if !ok {
		return 0, fmt.Errorf("%w: no user selected", core.ErrInvariant)
	}
	return core.CurrentBalance(u, s.transactions), nil
}
