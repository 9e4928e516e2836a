// Package remotestore is the shared collection store behind the wallet and
// admin services: users, transactions, withdrawals, deposits and loans, with
// live queries that re-deliver the full result set on every change.
package remotestore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
)

// Unsubscribe detaches a live query. It is safe to call more than once.
type Unsubscribe func()

// Store defines the remote ledger operations
// go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/piresc/fairpay/internal/pkg/remotestore Store
type Store interface {
	// Subscribe delivers the current result of q once, then again after every change
	Subscribe(ctx context.Context, q models.Query, cb func(models.Snapshot)) (Unsubscribe, error)
	List(ctx context.Context, q models.Query) (models.Snapshot, error)
	ListByStatus(ctx context.Context, coll models.Collection, statuses []string) (models.Snapshot, error)

	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	CreateWithdrawal(ctx context.Context, w *models.Withdrawal) (*models.Withdrawal, error)
	CreateDeposit(ctx context.Context, d *models.Deposit) (*models.Deposit, error)
	CreateLoan(ctx context.Context, l *models.LoanApplication) (*models.LoanApplication, error)

	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error)
	GetDeposit(ctx context.Context, id string) (*models.Deposit, error)
	GetLoan(ctx context.Context, id string) (*models.LoanApplication, error)
	GetTransactionByReference(ctx context.Context, referenceID string, txType models.TransactionType) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)

	// UpdateStatus overwrites the status field
	UpdateStatus(ctx context.Context, coll models.Collection, id, status string) error
	// TransitionStatus sets status to `to` only while it is still `from`
	TransitionStatus(ctx context.Context, coll models.Collection, id, from, to string) error
	// IncrementBalance atomically adds delta and returns the new balance.
	// The balance never goes below zero.
	IncrementBalance(ctx context.Context, userID string, delta int64) (int64, error)
	AggregateStats(ctx context.Context) (*models.Stats, error)

	// WithinTx runs fn all-or-nothing. Change notifications fire after commit.
	WithinTx(ctx context.Context, fn func(Store) error) error
}

type lister interface {
	List(ctx context.Context, q models.Query) (models.Snapshot, error)
}

const refreshTimeout = 5 * time.Second

// subscribe wires a live query on top of a one-shot lister and a change feed
func subscribe(ctx context.Context, l lister, feed Feed, q models.Query, cb func(models.Snapshot)) (Unsubscribe, error) {
	if feed == nil {
		return nil, fmt.Errorf("failed to subscribe to %s: no change feed configured", q.Collection)
	}

	var (
		mu     sync.Mutex
		closed bool
	)

	refresh := func() {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}

		rctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		snap, err := l.List(rctx, q)
		if err != nil {
			logger.Warn("Live query refresh failed",
				logger.String("collection", string(q.Collection)),
				logger.Err(err))
			return
		}
		cb(snap)
	}

	// Watch before the first read so no change slips between them.
	mu.Lock()
	stop, err := feed.Watch(q.Collection, refresh)
	if err != nil {
		mu.Unlock()
		return nil, fmt.Errorf("failed to watch %s: %w", q.Collection, err)
	}

	snap, err := l.List(ctx, q)
	if err != nil {
		mu.Unlock()
		if stopErr := stop(); stopErr != nil {
			logger.Warn("Failed to detach live query", logger.Err(stopErr))
		}
		return nil, err
	}
	cb(snap)
	mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)

			mu.Lock()
			closed = true
			mu.Unlock()

			if err := stop(); err != nil {
				logger.Warn("Failed to detach live query",
					logger.String("collection", string(q.Collection)),
					logger.Err(err))
			}
		})
	}

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				unsubscribe()
			case <-done:
			}
		}()
	}

	return unsubscribe, nil
}
