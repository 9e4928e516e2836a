// Package ledger holds the pure balance reducer shared by the wallet and admin flows.
package ledger

import (
	"fmt"

	"github.com/piresc/fairpay/internal/pkg/models"
)

// Apply applies one entry to l and returns the new ledger together with the
// transaction that was prepended. l is never modified.
//
// Credits always apply. A debit larger than the balance fails with
// ErrInsufficientBalance so the balance can never go negative.
func Apply(l models.LocalLedger, entry models.LedgerEntry, ids *IDSource) (models.LocalLedger, models.LocalTransaction, error) {
	if entry.Amount <= 0 {
		return l, models.LocalTransaction{}, models.ErrInvalidAmount
	}

	balance := l.Balance
	switch entry.Type {
	case models.DirectionCredit:
		balance += entry.Amount
	case models.DirectionDebit:
		if entry.Amount > balance {
			return l, models.LocalTransaction{}, fmt.Errorf("failed to debit %d from %d: %w", entry.Amount, balance, models.ErrInsufficientBalance)
		}
		balance -= entry.Amount
	default:
		return l, models.LocalTransaction{}, fmt.Errorf("%q: %w", entry.Type, models.ErrInvalidEntryType)
	}

	tx := models.LocalTransaction{
		ID:          ids.Next(),
		Type:        entry.Type,
		Amount:      entry.Amount,
		Description: entry.Description,
		Date:        models.Now(),
	}

	txs := make([]models.LocalTransaction, 0, len(l.Transactions)+1)
	txs = append(txs, tx)
	txs = append(txs, l.Transactions...)

	return models.LocalLedger{Balance: balance, Transactions: txs}, tx, nil
}

// Replay folds entries over l in order and stops at the first failing entry
func Replay(l models.LocalLedger, entries []models.LedgerEntry, ids *IDSource) (models.LocalLedger, error) {
	for i, entry := range entries {
		next, _, err := Apply(l, entry, ids)
		if err != nil {
			return l, fmt.Errorf("failed to apply entry %d: %w", i, err)
		}
		l = next
	}
	return l, nil
}

// Sum returns the signed total of txs
func Sum(txs []models.LocalTransaction) int64 {
	var total int64
	for _, tx := range txs {
		total += tx.Signed()
	}
	return total
}

// Totals returns the credit and debit totals of txs, both positive
func Totals(txs []models.LocalTransaction) (credits, debits int64) {
	for _, tx := range txs {
		if tx.Type == models.DirectionDebit {
			debits += tx.Amount
		} else {
			credits += tx.Amount
		}
	}
	return credits, debits
}

// Recent returns at most n transactions from the head of a newest-first list
func Recent(txs []models.LocalTransaction, n int) []models.LocalTransaction {
	if n <= 0 || n >= len(txs) {
		out := make([]models.LocalTransaction, len(txs))
		copy(out, txs)
		return out
	}
	out := make([]models.LocalTransaction, n)
	copy(out, txs[:n])
	return out
}

// Dedupe drops repeated ids from a newest-first list. The occurrence nearest
// the head was written last, so it wins.
func Dedupe(txs []models.LocalTransaction) []models.LocalTransaction {
	seen := make(map[int64]struct{}, len(txs))
	out := make([]models.LocalTransaction, 0, len(txs))
	for _, tx := range txs {
		if _, ok := seen[tx.ID]; ok {
			continue
		}
		seen[tx.ID] = struct{}{}
		out = append(out, tx)
	}
	return out
}

// MaxID returns the largest id in txs, or zero
func MaxID(txs []models.LocalTransaction) int64 {
	var highest int64
	for _, tx := range txs {
		if tx.ID > highest {
			highest = tx.ID
		}
	}
	return highest
}
