package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
)

// Sweep appends ledger entries missing behind terminal withdrawals and
// confirmed deposits, then compares every balance with its ledger.
// Balances are never changed here; drift is reported for review.
func (uc *adminUC) Sweep(ctx context.Context) (*models.SweepReport, error) {
	start := time.Now()
	report := &models.SweepReport{}

	withdrawals, err := uc.remote.ListByStatus(ctx, models.CollectionWithdrawals,
		[]string{string(models.WithdrawalStatusApproved), string(models.WithdrawalStatusRejected)})
	if err != nil {
		return nil, fmt.Errorf("failed to list settled withdrawals: %w", err)
	}
	for i := range withdrawals.Withdrawals {
		n, err := uc.repairWithdrawal(ctx, &withdrawals.Withdrawals[i])
		if err != nil {
			return nil, fmt.Errorf("failed to repair withdrawal %s: %w", withdrawals.Withdrawals[i].ID, err)
		}
		report.Repaired += n
	}

	deposits, err := uc.remote.ListByStatus(ctx, models.CollectionDeposits,
		[]string{string(models.DepositStatusConfirmed)})
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed deposits: %w", err)
	}
	for i := range deposits.Deposits {
		n, err := uc.repairDeposit(ctx, &deposits.Deposits[i])
		if err != nil {
			return nil, fmt.Errorf("failed to repair deposit %s: %w", deposits.Deposits[i].ID, err)
		}
		report.Repaired += n
	}

	users, err := uc.remote.List(ctx, models.Query{Collection: models.CollectionUsers})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range users.Users {
		txs, err := uc.remote.ListTransactions(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions of %s: %w", u.ID, err)
		}
		report.UsersChecked++

		if expected := expectedBalance(txs); expected != u.Balance {
			logger.Warn("Balance drift detected",
				logger.String("user_id", u.ID),
				logger.Int64("balance", u.Balance),
				logger.Int64("expected", expected))
			report.Drifts = append(report.Drifts, models.UserDrift{
				UserID:   u.ID,
				Balance:  u.Balance,
				Expected: expected,
			})
		}
	}

	logger.Info("Reconciliation sweep finished",
		logger.Int("repaired", report.Repaired),
		logger.Int("users_checked", report.UsersChecked),
		logger.Int("drifts", len(report.Drifts)),
		logger.Duration("took", time.Since(start)))
	return report, nil
}

// expectedBalance sums completed entries and the holds of withdrawals still under review
func expectedBalance(txs []models.Transaction) int64 {
	var sum int64
	for _, t := range txs {
		switch {
		case t.Status == models.TransactionStatusCompleted:
			sum += t.Amount
		case t.Status == models.TransactionStatusPending && t.Type == models.TransactionTypeWithdrawal:
			sum += t.Amount
		}
	}
	return sum
}

func (uc *adminUC) repairWithdrawal(ctx context.Context, w *models.Withdrawal) (int, error) {
	repaired := 0
	err := uc.remote.WithinTx(ctx, func(tx remotestore.Store) error {
		repaired = 0
		current, err := tx.GetWithdrawal(ctx, w.ID)
		if err != nil {
			return err
		}
		if current.Status != models.WithdrawalStatusApproved && current.Status != models.WithdrawalStatusRejected {
			return nil
		}
		w = current

		hold, err := tx.GetTransactionByReference(ctx, w.ID, models.TransactionTypeWithdrawal)
		switch {
		case errors.Is(err, models.ErrNotFound):
			if _, err := tx.CreateTransaction(ctx, holdEntry(w)); err != nil {
				return err
			}
			repaired++
		case err != nil:
			return err
		case hold.Status == models.TransactionStatusPending:
			if err := tx.UpdateStatus(ctx, models.CollectionTransactions, hold.ID, string(models.TransactionStatusCompleted)); err != nil {
				return err
			}
			repaired++
		}

		if w.Status != models.WithdrawalStatusRejected {
			return nil
		}
		_, err = tx.GetTransactionByReference(ctx, w.ID, models.TransactionTypeRefund)
		if errors.Is(err, models.ErrNotFound) {
			if _, err := tx.CreateTransaction(ctx, refundEntry(w)); err != nil {
				return err
			}
			repaired++
			return nil
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	if repaired > 0 {
		logger.Info("Repaired withdrawal ledger",
			logger.String("withdrawal_id", w.ID),
			logger.String("status", string(w.Status)),
			logger.Int("entries", repaired))
	}
	return repaired, nil
}

// repairDeposit rereads the deposit inside the transaction so a decision
// still in flight is waited out instead of credited twice.
func (uc *adminUC) repairDeposit(ctx context.Context, dep *models.Deposit) (int, error) {
	repaired := 0
	err := uc.remote.WithinTx(ctx, func(tx remotestore.Store) error {
		repaired = 0
		current, err := tx.GetDeposit(ctx, dep.ID)
		if err != nil {
			return err
		}
		if current.Status != models.DepositStatusConfirmed {
			return nil
		}

		_, err = tx.GetTransactionByReference(ctx, current.ID, current.Category.TransactionType())
		if !errors.Is(err, models.ErrNotFound) {
			return err
		}
		if _, err := tx.CreateTransaction(ctx, creditEntry(current)); err != nil {
			return err
		}
		repaired++
		return nil
	})
	if err != nil {
		return 0, err
	}
	if repaired > 0 {
		logger.Info("Repaired deposit ledger", logger.String("deposit_id", dep.ID))
	}
	return repaired, nil
}
