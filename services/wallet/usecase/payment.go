package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/fairpay/internal/pkg/faircode"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/pkg/pacer"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
	"github.com/piresc/fairpay/internal/utils"
)

const withdrawalDescription = "Withdrawal"

func validateBankAccount(b models.BankAccount) (models.BankAccount, error) {
	b.BankName = strings.TrimSpace(b.BankName)
	b.AccountNumber = strings.TrimSpace(b.AccountNumber)
	b.AccountName = strings.TrimSpace(b.AccountName)

	switch {
	case b.BankName == "":
		return b, fmt.Errorf("bank name: %w", models.ErrMissingField)
	case b.AccountNumber == "":
		return b, fmt.Errorf("account number: %w", models.ErrMissingField)
	case b.AccountName == "":
		return b, fmt.Errorf("account name: %w", models.ErrMissingField)
	}
	return b, nil
}

// RequestWithdrawal places a hold on the balance and records a pending withdrawal.
// The hold is settled by an admin approving or rejecting the withdrawal.
func (uc *walletUC) RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) (*models.WithdrawalReceipt, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, models.ErrInvalidAmount
	}
	bank, err := validateBankAccount(req.BankAccount)
	if err != nil {
		return nil, err
	}

	user, err := uc.remote.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to request withdrawal: %w", err)
	}
	if req.Amount > user.Balance {
		return nil, fmt.Errorf("failed to withdraw %d from %d: %w", req.Amount, user.Balance, models.ErrInsufficientBalance)
	}

	if err := uc.pacer.Wait(ctx, pacer.Millis(uc.cfg.Wallet.PayoutDelayMs)); err != nil {
		return nil, err
	}

	var (
		withdrawal *models.Withdrawal
		balance    int64
	)
	err = uc.remote.WithinTx(ctx, func(tx remotestore.Store) error {
		var err error
		balance, err = tx.IncrementBalance(ctx, user.ID, -req.Amount)
		if err != nil {
			return err
		}
		withdrawal, err = tx.CreateWithdrawal(ctx, &models.Withdrawal{
			UserRef:     user.Ref(),
			Amount:      req.Amount,
			BankAccount: bank,
			Status:      models.WithdrawalStatusPending,
		})
		if err != nil {
			return err
		}
		_, err = tx.CreateTransaction(ctx, &models.Transaction{
			UserID:      user.ID,
			Type:        models.TransactionTypeWithdrawal,
			Direction:   models.DirectionDebit,
			Amount:      -req.Amount,
			Status:      models.TransactionStatusPending,
			Description: withdrawalDescription,
			ReferenceID: withdrawal.ID,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request withdrawal: %w", err)
	}

	l, err := uc.applyLocal(ctx, email, models.LedgerEntry{
		Type:        models.DirectionDebit,
		Amount:      req.Amount,
		Description: withdrawalDescription,
	}, balance)
	if err != nil {
		// the withdrawal is committed; the cache catches up on the next sync
		logger.Error("Failed to update local ledger after withdrawal",
			logger.String("withdrawal_id", withdrawal.ID),
			logger.Err(err))
	}

	logger.Info("Withdrawal requested",
		logger.String("withdrawal_id", withdrawal.ID),
		logger.String("email", utils.MaskEmail(email)),
		logger.String("account", utils.MaskAccountNumber(bank.AccountNumber)),
		logger.Int64("amount", req.Amount))

	return &models.WithdrawalReceipt{
		Withdrawal: withdrawal,
		Ledger:     l,
		Link:       uc.withdrawalFeeLink(),
	}, nil
}

// AddMoney records a pending deposit and returns where to pay for it.
// An empty category means a plain wallet top-up.
func (uc *walletUC) AddMoney(ctx context.Context, req models.DepositRequest) (*models.DepositReceipt, error) {
	if req.Category == "" {
		req.Category = models.DepositCategoryDeposit
	}
	if !req.Category.Valid() {
		return nil, fmt.Errorf("deposit category %q: %w", req.Category, models.ErrMissingField)
	}
	return uc.createDeposit(ctx, req)
}

// BuyFaircode records a pending FairCode purchase
func (uc *walletUC) BuyFaircode(ctx context.Context, req models.DepositRequest) (*models.DepositReceipt, error) {
	req.Category = models.DepositCategoryFaircode
	return uc.createDeposit(ctx, req)
}

func (uc *walletUC) createDeposit(ctx context.Context, req models.DepositRequest) (*models.DepositReceipt, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, models.ErrInvalidAmount
	}

	user, err := uc.remote.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}

	deposit, err := uc.remote.CreateDeposit(ctx, &models.Deposit{
		UserRef:  user.Ref(),
		Amount:   req.Amount,
		Category: req.Category,
		Status:   models.DepositStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}

	logger.Info("Deposit recorded",
		logger.String("deposit_id", deposit.ID),
		logger.String("category", string(deposit.Category)),
		logger.Int64("amount", deposit.Amount))

	return &models.DepositReceipt{
		Deposit: deposit,
		Link:    uc.paymentLink(deposit.Category, deposit.Amount),
	}, nil
}

// BuyAirtime checks the order, waits out the processing delay and then
// checks the FairCode. A wrong code waits just as long as a right one.
func (uc *walletUC) BuyAirtime(ctx context.Context, req models.AirtimeRequest) (*models.PaymentLink, error) {
	if _, err := normalizeEmail(req.Email); err != nil {
		return nil, err
	}
	phone, err := utils.NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	network, ok := utils.CanonicalNetwork(req.Network)
	if !ok {
		return nil, fmt.Errorf("network %q: %w", req.Network, models.ErrMissingField)
	}
	if req.Amount <= 0 {
		return nil, models.ErrInvalidAmount
	}

	if err := uc.pacer.Wait(ctx, pacer.Millis(uc.cfg.Wallet.AirtimeDelayMs)); err != nil {
		return nil, err
	}
	if err := faircode.Check(uc.gate, req.FairCode); err != nil {
		logger.Warn("Airtime order with wrong faircode", logger.String("network", network))
		return nil, err
	}

	req.PhoneNumber = phone
	req.Network = network
	return uc.airtimeChatLink(req), nil
}

// ApplyLoan records a pending loan application behind the FairCode gate
func (uc *walletUC) ApplyLoan(ctx context.Context, req models.LoanRequest) (*models.LoanApplication, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, models.ErrInvalidAmount
	}
	purpose := strings.TrimSpace(req.Purpose)
	switch {
	case purpose == "":
		return nil, fmt.Errorf("loan purpose: %w", models.ErrMissingField)
	case req.Duration <= 0:
		return nil, fmt.Errorf("loan duration: %w", models.ErrMissingField)
	case strings.TrimSpace(req.EmploymentStatus) == "":
		return nil, fmt.Errorf("employment status: %w", models.ErrMissingField)
	}

	if err := faircode.Check(uc.gate, req.FairCode); err != nil {
		logger.Warn("Loan application with wrong faircode", logger.String("email", utils.MaskEmail(email)))
		return nil, err
	}

	user, err := uc.remote.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to apply for loan: %w", err)
	}

	loan, err := uc.remote.CreateLoan(ctx, &models.LoanApplication{
		UserRef:  user.Ref(),
		Amount:   req.Amount,
		Purpose:  purpose,
		Duration: req.Duration,
		Employment: models.Employment{
			EmploymentStatus: strings.TrimSpace(req.EmploymentStatus),
			MonthlyIncome:    req.MonthlyIncome,
			Employer:         strings.TrimSpace(req.Employer),
		},
		Status: models.LoanStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply for loan: %w", err)
	}

	logger.Info("Loan application recorded",
		logger.String("loan_id", loan.ID),
		logger.Int64("amount", loan.Amount))

	// the application stands even if the caller stops waiting
	if err := uc.pacer.Wait(ctx, pacer.Millis(uc.cfg.Wallet.LoanDelayMs)); err != nil {
		logger.Debug("Loan processing delay cut short", logger.Err(err))
	}
	return loan, nil
}

// creditRemote credits a user's remote balance with a completed transaction
// and returns the new balance
func (uc *walletUC) creditRemote(ctx context.Context, user *models.User, txType models.TransactionType, amount int64, description string) (int64, error) {
	var balance int64
	err := uc.remote.WithinTx(ctx, func(tx remotestore.Store) error {
		var err error
		balance, err = tx.IncrementBalance(ctx, user.ID, amount)
		if err != nil {
			return err
		}
		_, err = tx.CreateTransaction(ctx, &models.Transaction{
			UserID:      user.ID,
			Type:        txType,
			Direction:   models.DirectionCredit,
			Amount:      amount,
			Status:      models.TransactionStatusCompleted,
			Description: description,
		})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to credit %s: %w", txType, err)
	}
	return balance, nil
}
