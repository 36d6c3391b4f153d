package core

import (
	"errors"
	"testing"
)

func TestMonthKey(t *testing.T) {
	if got := MonthKey(2024, 3); got != "2024-03" {
		t.Fatalf("expected 2024-03, got %s", got)
	}
	if got := MonthKey(980, 11); got != "0980-11" {
		t.Fatalf("expected 0980-11, got %s", got)
	}
}

func TestDeleteTransactionPrunesEmptyBucket(t *testing.T) {
	byMonth := TransactionsByMonth{}
	key := MonthKey(2024, 3)
	AppendTransaction(byMonth, key, Transaction{ID: 1, Type: Expense, Date: 5, Item: "Coffee", Amount: 400})

	if err := DeleteTransaction(byMonth, key, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := byMonth[key]; ok {
		t.Fatal("expected month key to be pruned after last delete")
	}

	// Re-adding recreates the bucket with a single entry.
	AppendTransaction(byMonth, key, Transaction{ID: 2, Type: Income, Date: 1, Item: "Pay", Amount: 100})
	if len(byMonth[key]) != 1 {
		t.Fatalf("expected recreated bucket with 1 entry, got %d", len(byMonth[key]))
	}
}

func TestDeleteTransactionKeepsNonEmptyBucket(t *testing.T) {
	byMonth := TransactionsByMonth{}
	key := MonthKey(2024, 3)
	AppendTransaction(byMonth, key, Transaction{ID: 1, Date: 5, Amount: 10})
	AppendTransaction(byMonth, key, Transaction{ID: 2, Date: 6, Amount: 20})

	if err := DeleteTransaction(byMonth, key, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(byMonth[key]) != 1 || byMonth[key][0].ID != 2 {
		t.Fatalf("unexpected bucket after delete: %+v", byMonth[key])
	}
}

func TestUpdateTransactionPreservesID(t *testing.T) {
	byMonth := TransactionsByMonth{}
	key := MonthKey(2024, 3)
	AppendTransaction(byMonth, key, Transaction{ID: 7, Type: Expense, Date: 5, Item: "Coffee", Amount: 400})

	err := UpdateTransaction(byMonth, key, 7, Transaction{ID: 999, Type: Income, Date: 6, Item: "Tea", Amount: 300})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got := byMonth[key][0]
	if got.ID != 7 || got.Item != "Tea" || got.Date != 6 || got.Type != Income {
		t.Fatalf("unexpected transaction after update: %+v", got)
	}
}

func TestUpdateDeleteMissingReturnsNotFound(t *testing.T) {
	byMonth := TransactionsByMonth{}
	key := MonthKey(2024, 3)
	if err := UpdateTransaction(byMonth, key, 1, Transaction{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	AppendTransaction(byMonth, key, Transaction{ID: 1})
	if err := DeleteTransaction(byMonth, key, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSortBucket(t *testing.T) {
	txs := []Transaction{
		{ID: 3, Date: 10},
		{ID: 2, Date: 5},
		{ID: 1, Date: 10},
	}
	SortBucket(txs)
	want := []int64{2, 1, 3} // date asc, ties by id asc
	for i, id := range want {
		if txs[i].ID != id {
			t.Fatalf("position %d expected id %d, got %d", i, id, txs[i].ID)
		}
	}
}

func TestMaxID(t *testing.T) {
	byMonth := TransactionsByMonth{
		"2024-01": {{ID: 5}, {ID: 9}},
		"2024-02": {{ID: 7}},
	}
	if got := MaxID(byMonth); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := MaxID(TransactionsByMonth{}); got != 0 {
		t.Fatalf("expected 0 for empty mapping, got %d", got)
	}
}

func TestKeysForYear(t *testing.T) {
	byMonth := TransactionsByMonth{
		"2024-03": {{ID: 1}},
		"2024-01": {{ID: 2}},
		"2023-12": {{ID: 3}},
	}
	keys := byMonth.KeysForYear(2024)
	if len(keys) != 2 || keys[0] != "2024-01" || keys[1] != "2024-03" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}
