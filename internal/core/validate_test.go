package core

import (
	"errors"
	"testing"
)

func TestValidateUserName(t *testing.T) {
	existing := []User{{Name: "Alice"}, {Name: "Bob"}}
	cases := []struct {
		name    string
		current string
		ok      bool
	}{
		{"Carol", "", true},
		{"12345678", "", true},  // 8 chars, at the limit
		{"123456789", "", false}, // 9 chars
		{"", "", false},
		{"Alice", "", false},      // taken
		{"Alice", "Alice", true},  // editing itself
		{"Bob", "Alice", false},   // renaming onto another user
		{"あいうえおかきく", "", true}, // 8 runes, multibyte
	}
	for i, tc := range cases {
		err := ValidateUserName(tc.name, existing, tc.current)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestValidateItem(t *testing.T) {
	cases := []struct {
		item string
		ok   bool
	}{
		{"Coffee", true},
		{"123456789012", true},   // 12 chars
		{"1234567890123", false}, // 13 chars
		{"", false},
	}
	for i, tc := range cases {
		err := ValidateItem(tc.item)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestValidateTagName(t *testing.T) {
	labels := DefaultLabels()
	cases := []struct {
		name string
		ok   bool
	}{
		{"food", true},
		{"", false},
		{"meals", false},   // 5 chars
		{"income", false},  // reserved
		{"expense", false}, // reserved
		{"食費", true},
	}
	for i, tc := range cases {
		err := ValidateTagName(tc.name, labels)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestValidateTagNameCustomLabels(t *testing.T) {
	labels := Labels{Income: "収入", Expense: "支出"}
	if err := ValidateTagName("収入", labels); err == nil {
		t.Fatal("expected localized reserved label to be rejected")
	}
	if err := ValidateTagName("inc", labels); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
}

func TestValidateDate(t *testing.T) {
	cases := []struct {
		year, month, day int
		ok               bool
	}{
		{2024, 3, 5, true},
		{2024, 2, 29, true},  // leap year
		{2023, 2, 29, false}, // not a leap year
		{2024, 4, 31, false},
		{2024, 1, 0, false},
		{2024, 13, 1, false},
	}
	for i, tc := range cases {
		err := ValidateDate(tc.year, tc.month, tc.day)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
		if err != nil && !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d expected ErrValidation, got %v", i, err)
		}
	}
}
