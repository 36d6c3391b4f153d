package core

import (
	"fmt"
	"unicode/utf8"
)

const (
	MaxUserNameLength = 8
	MaxItemLength     = 12
	MaxTagNameLength  = 4
)

// ValidateUserName checks a profile name: non-empty, at most 8 characters,
// not already used by another user. current names the record being edited so
// a rename to the same name passes.
func ValidateUserName(name string, existing []User, current string) error {
	if name == "" {
		return fmt.Errorf("%w: user name is empty", ErrValidation)
	}
	if utf8.RuneCountInString(name) > MaxUserNameLength {
		return fmt.Errorf("%w: user name too long, maximum is %d characters", ErrValidation, MaxUserNameLength)
	}
	for _, u := range existing {
		if u.Name == name && u.Name != current {
			return fmt.Errorf("%w: user name %q already taken", ErrValidation, name)
		}
	}
	return nil
}

// ValidateItem checks a transaction or template item name.
func ValidateItem(item string) error {
	if item == "" {
		return fmt.Errorf("%w: item is empty", ErrValidation)
	}
	if utf8.RuneCountInString(item) > MaxItemLength {
		return fmt.Errorf("%w: item too long, maximum is %d characters", ErrValidation, MaxItemLength)
	}
	return nil
}

// ValidateTagName checks a tag name against length limits and the reserved
// built-in type labels.
func ValidateTagName(name string, labels Labels) error {
	if name == "" {
		return fmt.Errorf("%w: tag name is empty", ErrValidation)
	}
	if utf8.RuneCountInString(name) > MaxTagNameLength {
		return fmt.Errorf("%w: tag name too long, maximum is %d characters", ErrValidation, MaxTagNameLength)
	}
	if labels.IsReserved(name) {
		return fmt.Errorf("%w: tag name %q is reserved", ErrValidation, name)
	}
	return nil
}

// ValidateDate checks that day falls inside the given month.
func ValidateDate(year, month, day int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: invalid month %d", ErrValidation, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("%w: invalid day %d for %04d-%02d", ErrValidation, day, year, month)
	}
	return nil
}
