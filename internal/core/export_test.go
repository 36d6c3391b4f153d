package core

import (
	"encoding/base64"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestExportRoundTrip(t *testing.T) {
	p := ExportPayload{
		User: User{Name: "Alice", Balance: 1000},
		Transactions: TransactionsByMonth{
			"2024-03": {{ID: 1, Type: Expense, Date: 5, Item: "Coffee", Amount: 400, Tag: "food"}},
		},
		Templates:  []Template{{Type: Expense, Item: "Coffee", Amount: 400, Tag: "food"}},
		Tags:       []Tag{{Name: "food", Color: "#ff0000"}},
		ExportedAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	artifact, err := EncodeExport(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := DecodeExport(artifact)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", p, got)
	}
}

func TestDecodeExportToleratesSurroundingWhitespace(t *testing.T) {
	artifact, err := EncodeExport(ExportPayload{User: User{Name: "A"}, Transactions: TransactionsByMonth{}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeExport("\n " + artifact + " \n"); err != nil {
		t.Fatalf("decode with whitespace: %v", err)
	}
}

func TestDecodeExportInvalid(t *testing.T) {
	cases := []string{
		"not base64 at all!!!",
		base64.StdEncoding.EncodeToString([]byte("not json")),
		base64.StdEncoding.EncodeToString([]byte(`{"transactions":{}}`)), // missing user
		base64.StdEncoding.EncodeToString([]byte(`{"user":{"name":"A"}}`)), // missing transactions
	}
	for i, artifact := range cases {
		if _, err := DecodeExport(artifact); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("case %d expected ErrInvalidFormat, got %v", i, err)
		}
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	if got := ExportFilename("Alice", now); got != "money-tracker-Alice-2024-03-10.txt" {
		t.Fatalf("unexpected filename %s", got)
	}
}
