// Package core provides the pure domain model of the money tracker:
// validation, month buckets, aggregation and the export payload.
//
// This file parses monetary amounts from raw input. Amounts are whole
// currency units; decimals are never accepted. The historical behavior
// strips stray decimal separators before parsing, so "100.7" becomes 1007.
// AmountRejectDecimals is the corrected policy that refuses such input.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// AmountPolicy selects how decimal separators in raw input are treated.
type AmountPolicy int

const (
	// AmountStripDecimals removes '.' and ',' characters before parsing.
	AmountStripDecimals AmountPolicy = iota
	// AmountRejectDecimals fails on any input containing a decimal separator.
	AmountRejectDecimals
)

// ParseAmount converts raw user input to a positive integer amount.
// It fails for unparseable, zero, or negative input.
//
// Examples:
//
//	ParseAmount("400", AmountStripDecimals)   -> 400, nil
//	ParseAmount("100.7", AmountStripDecimals) -> 1007, nil
//	ParseAmount("100.7", AmountRejectDecimals) -> 0, error
func ParseAmount(raw string, policy AmountPolicy) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: enter a valid amount", ErrValidation)
	}
	switch policy {
	case AmountRejectDecimals:
		if strings.ContainsAny(s, ".,") {
			return 0, fmt.Errorf("%w: enter a valid amount", ErrValidation)
		}
	default:
		s = strings.Map(func(r rune) rune {
			if r == '.' || r == ',' {
				return -1
			}
			return r
		}, s)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: enter a valid amount", ErrValidation)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: enter a valid amount", ErrValidation)
	}
	return v, nil
}

// FormatAmount renders an amount the way input fields expect it back.
func FormatAmount(v int64) string {
	return strconv.FormatInt(v, 10)
}
