package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
)

// decision moves one pending record to a terminal status together with its
// ledger writes
type decision struct {
	coll models.Collection
	id   string
	from string
	to   string
	// status reads the record and returns its current status
	status func(ctx context.Context) (string, error)
	// apply runs inside the transaction after the status moved
	apply func(ctx context.Context, tx remotestore.Store) error
}

// decide runs d and reports whether anything was written. Repeating a
// decision that already holds is a no-op; any other move out of a terminal
// status fails with ErrInvalidStatus.
func (uc *adminUC) decide(ctx context.Context, d decision) (bool, error) {
	current, err := d.status(ctx)
	if err != nil {
		return false, err
	}
	if current == d.to {
		logger.Info("Decision already applied",
			logger.String("collection", string(d.coll)),
			logger.String("id", d.id),
			logger.String("status", d.to))
		return false, nil
	}
	if current != d.from {
		return false, fmt.Errorf("%s %s is %s: %w", d.coll, d.id, current, models.ErrInvalidStatus)
	}

	err = uc.remote.WithinTx(ctx, func(tx remotestore.Store) error {
		if err := tx.TransitionStatus(ctx, d.coll, d.id, d.from, d.to); err != nil {
			return err
		}
		if d.apply == nil {
			return nil
		}
		return d.apply(ctx, tx)
	})
	if errors.Is(err, models.ErrInvalidStatus) {
		// another session decided first
		current, rerr := d.status(ctx)
		if rerr != nil {
			return false, rerr
		}
		if current == d.to {
			return false, nil
		}
		return false, fmt.Errorf("%s %s is %s: %w", d.coll, d.id, current, models.ErrInvalidStatus)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ApproveWithdrawal settles the hold as the payout
func (uc *adminUC) ApproveWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error) {
	return uc.decideWithdrawal(ctx, id, models.WithdrawalStatusApproved, models.EventWithdrawalApproved)
}

// RejectWithdrawal settles the hold and refunds it
func (uc *adminUC) RejectWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error) {
	return uc.decideWithdrawal(ctx, id, models.WithdrawalStatusRejected, models.EventWithdrawalRejected)
}

func (uc *adminUC) decideWithdrawal(ctx context.Context, id string, to models.WithdrawalStatus, event string) (*models.Withdrawal, error) {
	var w *models.Withdrawal
	changed, err := uc.decide(ctx, decision{
		coll: models.CollectionWithdrawals,
		id:   id,
		from: string(models.WithdrawalStatusPending),
		to:   string(to),
		status: func(ctx context.Context) (string, error) {
			var err error
			w, err = uc.remote.GetWithdrawal(ctx, id)
			if err != nil {
				return "", err
			}
			return string(w.Status), nil
		},
		apply: func(ctx context.Context, tx remotestore.Store) error {
			if err := settleHold(ctx, tx, w); err != nil {
				return err
			}
			if to != models.WithdrawalStatusRejected {
				return nil
			}
			if _, err := tx.IncrementBalance(ctx, w.UserID, w.Amount); err != nil {
				return err
			}
			_, err := tx.CreateTransaction(ctx, refundEntry(w))
			return err
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set withdrawal %s %s: %w", id, to, err)
	}

	w.Status = to
	if changed {
		logger.Info("Withdrawal decided",
			logger.String("withdrawal_id", id),
			logger.String("status", string(to)),
			logger.Int64("amount", w.Amount))
		uc.publish(ctx, models.LedgerEvent{
			Event:    event,
			UserID:   w.UserID,
			Email:    w.UserEmail,
			RecordID: w.ID,
			Amount:   w.Amount,
		})
	}
	return w, nil
}

// settleHold completes the pending debit written when the withdrawal was
// requested, or writes it when the withdrawal predates holds
func settleHold(ctx context.Context, tx remotestore.Store, w *models.Withdrawal) error {
	hold, err := tx.GetTransactionByReference(ctx, w.ID, models.TransactionTypeWithdrawal)
	if errors.Is(err, models.ErrNotFound) {
		_, err = tx.CreateTransaction(ctx, holdEntry(w))
		return err
	}
	if err != nil {
		return err
	}
	if hold.Status == models.TransactionStatusCompleted {
		return nil
	}
	return tx.UpdateStatus(ctx, models.CollectionTransactions, hold.ID, string(models.TransactionStatusCompleted))
}

func holdEntry(w *models.Withdrawal) *models.Transaction {
	return &models.Transaction{
		UserID:      w.UserID,
		Type:        models.TransactionTypeWithdrawal,
		Direction:   models.DirectionDebit,
		Amount:      -w.Amount,
		Status:      models.TransactionStatusCompleted,
		Description: fmt.Sprintf("Withdrawal to %s", w.BankName),
		ReferenceID: w.ID,
	}
}

func refundEntry(w *models.Withdrawal) *models.Transaction {
	return &models.Transaction{
		UserID:      w.UserID,
		Type:        models.TransactionTypeRefund,
		Direction:   models.DirectionCredit,
		Amount:      w.Amount,
		Status:      models.TransactionStatusCompleted,
		Description: "Withdrawal refund",
		ReferenceID: w.ID,
	}
}

// ConfirmDeposit credits the user with the deposit amount
func (uc *adminUC) ConfirmDeposit(ctx context.Context, id string) (*models.Deposit, error) {
	return uc.decideDeposit(ctx, id, models.DepositStatusConfirmed, models.EventDepositConfirmed)
}

// RejectDeposit closes the deposit without touching the balance
func (uc *adminUC) RejectDeposit(ctx context.Context, id string) (*models.Deposit, error) {
	return uc.decideDeposit(ctx, id, models.DepositStatusRejected, models.EventDepositRejected)
}

func (uc *adminUC) decideDeposit(ctx context.Context, id string, to models.DepositStatus, event string) (*models.Deposit, error) {
	var dep *models.Deposit
	d := decision{
		coll: models.CollectionDeposits,
		id:   id,
		from: string(models.DepositStatusPending),
		to:   string(to),
		status: func(ctx context.Context) (string, error) {
			var err error
			dep, err = uc.remote.GetDeposit(ctx, id)
			if err != nil {
				return "", err
			}
			return string(dep.Status), nil
		},
	}
	if to == models.DepositStatusConfirmed {
		d.apply = func(ctx context.Context, tx remotestore.Store) error {
			if _, err := tx.IncrementBalance(ctx, dep.UserID, dep.Amount); err != nil {
				return err
			}
			_, err := tx.CreateTransaction(ctx, creditEntry(dep))
			return err
		}
	}

	changed, err := uc.decide(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to set deposit %s %s: %w", id, to, err)
	}

	dep.Status = to
	if changed {
		logger.Info("Deposit decided",
			logger.String("deposit_id", id),
			logger.String("category", string(dep.Category)),
			logger.String("status", string(to)),
			logger.Int64("amount", dep.Amount))
		uc.publish(ctx, models.LedgerEvent{
			Event:    event,
			UserID:   dep.UserID,
			Email:    dep.UserEmail,
			RecordID: dep.ID,
			Amount:   dep.Amount,
		})
	}
	return dep, nil
}

func creditEntry(dep *models.Deposit) *models.Transaction {
	description := "Deposit confirmed"
	if dep.Category != models.DepositCategoryDeposit && dep.Category != "" {
		description = fmt.Sprintf("%s payment confirmed", dep.Category)
	}
	return &models.Transaction{
		UserID:      dep.UserID,
		Type:        dep.Category.TransactionType(),
		Direction:   models.DirectionCredit,
		Amount:      dep.Amount,
		Status:      models.TransactionStatusCompleted,
		Description: description,
		ReferenceID: dep.ID,
	}
}

// ApproveLoan marks the application approved
func (uc *adminUC) ApproveLoan(ctx context.Context, id string) (*models.LoanApplication, error) {
	return uc.decideLoan(ctx, id, models.LoanStatusApproved, models.EventLoanApproved)
}

// RejectLoan marks the application rejected
func (uc *adminUC) RejectLoan(ctx context.Context, id string) (*models.LoanApplication, error) {
	return uc.decideLoan(ctx, id, models.LoanStatusRejected, models.EventLoanRejected)
}

func (uc *adminUC) decideLoan(ctx context.Context, id string, to models.LoanStatus, event string) (*models.LoanApplication, error) {
	var loan *models.LoanApplication
	changed, err := uc.decide(ctx, decision{
		coll: models.CollectionLoans,
		id:   id,
		from: string(models.LoanStatusPending),
		to:   string(to),
		status: func(ctx context.Context) (string, error) {
			var err error
			loan, err = uc.remote.GetLoan(ctx, id)
			if err != nil {
				return "", err
			}
			return string(loan.Status), nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set loan %s %s: %w", id, to, err)
	}

	loan.Status = to
	if changed {
		uc.publish(ctx, models.LedgerEvent{
			Event:    event,
			UserID:   loan.UserID,
			Email:    loan.UserEmail,
			RecordID: loan.ID,
			Amount:   loan.Amount,
		})
	}
	return loan, nil
}
