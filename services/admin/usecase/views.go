package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
)

var pendingOnly = []string{"pending"}

// Stats returns the dashboard aggregate
func (uc *adminUC) Stats(ctx context.Context) (*models.Stats, error) {
	stats, err := uc.remote.AggregateStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}
	return stats, nil
}

// Pending returns every record awaiting review, newest first
func (uc *adminUC) Pending(ctx context.Context) (*models.PendingItems, error) {
	items := &models.PendingItems{
		Withdrawals: []models.Withdrawal{},
		Deposits:    []models.Deposit{},
		Loans:       []models.LoanApplication{},
	}

	for _, coll := range []models.Collection{models.CollectionWithdrawals, models.CollectionDeposits, models.CollectionLoans} {
		snap, err := uc.remote.ListByStatus(ctx, coll, pendingOnly)
		if err != nil {
			return nil, fmt.Errorf("failed to list pending %s: %w", coll, err)
		}
		switch coll {
		case models.CollectionWithdrawals:
			items.Withdrawals = append(items.Withdrawals, snap.Withdrawals...)
		case models.CollectionDeposits:
			items.Deposits = append(items.Deposits, snap.Deposits...)
		case models.CollectionLoans:
			items.Loans = append(items.Loans, snap.Loans...)
		}
	}
	return items, nil
}

// WatchWithdrawals follows the pending withdrawal queue
func (uc *adminUC) WatchWithdrawals(ctx context.Context, cb func([]models.Withdrawal)) (remotestore.Unsubscribe, error) {
	return uc.remote.Subscribe(ctx, models.Query{Collection: models.CollectionWithdrawals, Status: "pending"}, func(s models.Snapshot) {
		cb(s.Withdrawals)
	})
}

// WatchDeposits follows the pending deposit queue
func (uc *adminUC) WatchDeposits(ctx context.Context, cb func([]models.Deposit)) (remotestore.Unsubscribe, error) {
	return uc.remote.Subscribe(ctx, models.Query{Collection: models.CollectionDeposits, Status: "pending"}, func(s models.Snapshot) {
		cb(s.Deposits)
	})
}

// WatchLoans follows the pending loan queue
func (uc *adminUC) WatchLoans(ctx context.Context, cb func([]models.LoanApplication)) (remotestore.Unsubscribe, error) {
	return uc.remote.Subscribe(ctx, models.Query{Collection: models.CollectionLoans, Status: "pending"}, func(s models.Snapshot) {
		cb(s.Loans)
	})
}

// WatchUsers follows every user and their balance
func (uc *adminUC) WatchUsers(ctx context.Context, cb func([]models.User)) (remotestore.Unsubscribe, error) {
	return uc.remote.Subscribe(ctx, models.Query{Collection: models.CollectionUsers}, func(s models.Snapshot) {
		cb(s.Users)
	})
}
