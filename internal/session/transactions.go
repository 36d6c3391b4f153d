package session

import (
	"context"
	"errors"
	"fmt"

	"moneytracker/internal/core"
	"moneytracker/internal/log"
)

// TransactionData carries raw presentation input for creating or editing a
// transaction. Amount arrives unparsed; the session applies the configured
// amount policy.
type TransactionData struct {
	Type   core.TxType
	Date   int
	Item   string
	Amount string
	Tag    string
}

func (s *Session) validateTransaction(year, month int, d TransactionData) (int64, error) {
	if !d.Type.IsValid() {
		return 0, fmt.Errorf("%w: invalid transaction type %q", core.ErrValidation, d.Type)
	}
	if err := core.ValidateItem(d.Item); err != nil {
		return 0, err
	}
	if err := core.ValidateDate(year, month, d.Date); err != nil {
		return 0, err
	}
	return core.ParseAmount(d.Amount, s.cfg.AmountPolicy())
}

// Transactions returns the bucket for the given month in display order.
func (s *Session) Transactions(year, month int) []core.Transaction {
	bucket := s.transactions[core.MonthKey(year, month)]
	out := append([]core.Transaction(nil), bucket...)
	core.SortBucket(out)
	return out
}

// CreateTransaction validates the input, assigns a fresh id and appends the
// transaction to the month bucket, creating the bucket if absent.
func (s *Session) CreateTransaction(ctx context.Context, year, month int, d TransactionData) (core.Transaction, error) {
	if err := s.requireUser(); err != nil {
		return core.Transaction{}, s.report(err)
	}
	amount, err := s.validateTransaction(year, month, d)
	if err != nil {
		return core.Transaction{}, s.report(err)
	}

	tx := core.Transaction{
		ID:     s.nextID(),
		Type:   d.Type,
		Date:   d.Date,
		Item:   d.Item,
		Amount: amount,
		Tag:    d.Tag,
	}
	key := core.MonthKey(year, month)
	core.AppendTransaction(s.transactions, key, tx)
	if err := s.repo.SaveTransactions(ctx, s.current, s.transactions); err != nil {
		return core.Transaction{}, err
	}
	s.totals.Purge()

	s.logger.Debug("Transaction created",
		log.FieldOperation, log.OpCreate,
		log.FieldMonthKey, key,
		log.FieldTxID, tx.ID,
		log.FieldItem, tx.Item,
		log.FieldAmount, tx.Amount)
	return tx, nil
}

// UpdateTransaction replaces the mutable fields of an existing transaction.
// A vanished id is a silent no-op.
func (s *Session) UpdateTransaction(ctx context.Context, year, month int, id int64, d TransactionData) error {
	if err := s.requireUser(); err != nil {
		return s.report(err)
	}
	amount, err := s.validateTransaction(year, month, d)
	if err != nil {
		return s.report(err)
	}

	key := core.MonthKey(year, month)
	tx := core.Transaction{Type: d.Type, Date: d.Date, Item: d.Item, Amount: amount, Tag: d.Tag}
	if err := core.UpdateTransaction(s.transactions, key, id, tx); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.logger.Debug("Update target vanished", log.FieldMonthKey, key, log.FieldTxID, id)
			return nil
		}
		return err
	}
	if err := s.repo.SaveTransactions(ctx, s.current, s.transactions); err != nil {
		return err
	}
	s.totals.Purge()
	return nil
}

// DeleteTransaction removes a transaction, pruning the month key when its
// bucket empties. A vanished id is a silent no-op.
func (s *Session) DeleteTransaction(ctx context.Context, year, month int, id int64) error {
	if err := s.requireUser(); err != nil {
		return s.report(err)
	}

	key := core.MonthKey(year, month)
	if err := core.DeleteTransaction(s.transactions, key, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.logger.Debug("Delete target vanished", log.FieldMonthKey, key, log.FieldTxID, id)
			return nil
		}
		return err
	}
	if err := s.repo.SaveTransactions(ctx, s.current, s.transactions); err != nil {
		return err
	}
	s.totals.Purge()

	s.logger.Debug("Transaction deleted", log.FieldOperation, log.OpDelete, log.FieldMonthKey, key, log.FieldTxID, id)
	return nil
}

// ResolveTemplate looks up a template by item and returns prefilled input
// for transaction creation. The caller still chooses the date.
func (s *Session) ResolveTemplate(item string) (TransactionData, error) {
	for _, tpl := range s.templates {
		if tpl.Item == item {
			return TransactionData{
				Type:   tpl.Type,
				Item:   tpl.Item,
				Amount: core.FormatAmount(tpl.Amount),
				Tag:    tpl.Tag,
			}, nil
		}
	}
	return TransactionData{}, fmt.Errorf("%w: template %q", core.ErrNotFound, item)
}
