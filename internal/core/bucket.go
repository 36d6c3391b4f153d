package core

import (
	"fmt"
	"sort"
	"strings"
)

// MonthKey builds the zero-padded "YYYY-MM" bucket key.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// YearPrefix builds the "YYYY-" prefix matching every bucket of a year.
func YearPrefix(year int) string {
	return fmt.Sprintf("%04d-", year)
}

// AppendTransaction adds tx to the bucket for key, creating it if absent.
func AppendTransaction(byMonth TransactionsByMonth, key string, tx Transaction) {
	byMonth[key] = append(byMonth[key], tx)
}

// UpdateTransaction replaces the mutable fields of the transaction with the
// given id inside the bucket for key. The id itself is preserved. Returns
// ErrNotFound when the bucket or the id is missing.
func UpdateTransaction(byMonth TransactionsByMonth, key string, id int64, tx Transaction) error {
	bucket, ok := byMonth[key]
	if !ok {
		return fmt.Errorf("%w: no bucket %s", ErrNotFound, key)
	}
	for i := range bucket {
		if bucket[i].ID == id {
			tx.ID = id
			bucket[i] = tx
			return nil
		}
	}
	return fmt.Errorf("%w: transaction %d in %s", ErrNotFound, id, key)
}

// DeleteTransaction removes the transaction with the given id from the
// bucket for key. The key is removed entirely when its bucket empties.
// Returns ErrNotFound when the bucket or the id is missing.
func DeleteTransaction(byMonth TransactionsByMonth, key string, id int64) error {
	bucket, ok := byMonth[key]
	if !ok {
		return fmt.Errorf("%w: no bucket %s", ErrNotFound, key)
	}
	for i := range bucket {
		if bucket[i].ID == id {
			bucket = append(bucket[:i], bucket[i+1:]...)
			if len(bucket) == 0 {
				delete(byMonth, key)
			} else {
				byMonth[key] = bucket
			}
			return nil
		}
	}
	return fmt.Errorf("%w: transaction %d in %s", ErrNotFound, id, key)
}

// SortBucket orders transactions ascending by date, ties broken by id.
// This is the display order consumed by presentation.
func SortBucket(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date < txs[j].Date
		}
		return txs[i].ID < txs[j].ID
	})
}

// MaxID returns the largest transaction id across all buckets, 0 when empty.
// Used to seed the monotonic id counter after loading a user.
func MaxID(byMonth TransactionsByMonth) int64 {
	var max int64
	for _, bucket := range byMonth {
		for _, tx := range bucket {
			if tx.ID > max {
				max = tx.ID
			}
		}
	}
	return max
}

// Clone returns a deep copy of the mapping.
func (m TransactionsByMonth) Clone() TransactionsByMonth {
	out := make(TransactionsByMonth, len(m))
	for key, bucket := range m {
		out[key] = append([]Transaction(nil), bucket...)
	}
	return out
}

// KeysForYear returns the bucket keys belonging to the given year.
func (m TransactionsByMonth) KeysForYear(year int) []string {
	prefix := YearPrefix(year)
	var keys []string
	for key := range m {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
