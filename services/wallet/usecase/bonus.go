package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/utils"
)

const (
	bonusDescription = "Bonus claimed"

	defaultReferralBonus = 6500
	monthlyBonusMin      = 150000
	monthlyBonusMax      = 500000
)

// ClaimBonus credits a one-off bonus
func (uc *walletUC) ClaimBonus(ctx context.Context, email string, amount int64) (models.LocalLedger, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return models.LocalLedger{}, err
	}
	if amount <= 0 {
		return models.LocalLedger{}, models.ErrInvalidAmount
	}
	return uc.credit(ctx, email, models.TransactionTypeBonus, amount, bonusDescription)
}

// credit writes a completed credit remotely, then mirrors it locally
func (uc *walletUC) credit(ctx context.Context, email string, txType models.TransactionType, amount int64, description string) (models.LocalLedger, error) {
	user, err := uc.remote.GetUserByEmail(ctx, email)
	if err != nil {
		return models.LocalLedger{}, fmt.Errorf("failed to credit %s: %w", txType, err)
	}

	balance, err := uc.creditRemote(ctx, user, txType, amount, description)
	if err != nil {
		return models.LocalLedger{}, err
	}

	return uc.applyLocal(ctx, email, models.LedgerEntry{
		Type:        models.DirectionCredit,
		Amount:      amount,
		Description: description,
	}, balance)
}

// MonthlyBonuses returns the yearly bonus calendar of email, generating it on first use.
// Availability is recomputed from the current month on every call.
func (uc *walletUC) MonthlyBonuses(ctx context.Context, email string) ([]models.MonthlyBonus, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	unlock := uc.lockEmail(email)
	defer unlock()
	return uc.loadCalendar(ctx, email)
}

// loadCalendar expects the email lock to be held
func (uc *walletUC) loadCalendar(ctx context.Context, email string) ([]models.MonthlyBonus, error) {
	bonuses, err := uc.local.LoadMonthlyBonuses(ctx, email)
	if err != nil {
		return nil, err
	}

	if len(bonuses) != 12 {
		bonuses = make([]models.MonthlyBonus, 12)
		for i := range bonuses {
			bonuses[i] = models.MonthlyBonus{
				Month:  time.Month(i + 1).String(),
				Amount: uc.randomBonus(),
			}
		}
		if err := uc.local.SaveMonthlyBonuses(ctx, email, bonuses); err != nil {
			return nil, err
		}
	}

	current := uc.now().Month()
	for i := range bonuses {
		bonuses[i].Available = time.Month(i+1) <= current
	}
	return bonuses, nil
}

func (uc *walletUC) randomBonus() int64 {
	uc.rngMu.Lock()
	defer uc.rngMu.Unlock()
	return monthlyBonusMin + uc.rng.Int63n(monthlyBonusMax-monthlyBonusMin+1)
}

// ClaimMonthlyBonus credits the bonus of one calendar month
func (uc *walletUC) ClaimMonthlyBonus(ctx context.Context, email, month string) (models.LocalLedger, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return models.LocalLedger{}, err
	}

	bonus, err := uc.markMonthClaimed(ctx, email, month)
	if err != nil {
		return models.LocalLedger{}, err
	}

	l, err := uc.credit(ctx, email, models.TransactionTypeBonus, bonus.Amount, bonus.Month+" bonus claimed")
	if err != nil {
		uc.unmarkMonth(ctx, email, bonus.Month)
		return models.LocalLedger{}, err
	}
	return l, nil
}

// markMonthClaimed flips the claimed flag up front so that two concurrent
// claims cannot both be paid
func (uc *walletUC) markMonthClaimed(ctx context.Context, email, month string) (models.MonthlyBonus, error) {
	unlock := uc.lockEmail(email)
	defer unlock()

	bonuses, err := uc.loadCalendar(ctx, email)
	if err != nil {
		return models.MonthlyBonus{}, err
	}

	for i, b := range bonuses {
		if !strings.EqualFold(b.Month, strings.TrimSpace(month)) {
			continue
		}
		switch {
		case b.Claimed:
			return b, fmt.Errorf("%s: %w", b.Month, models.ErrAlreadyClaimed)
		case !b.Available:
			return b, fmt.Errorf("%s: %w", b.Month, models.ErrNotAvailable)
		}
		bonuses[i].Claimed = true
		if err := uc.local.SaveMonthlyBonuses(ctx, email, bonuses); err != nil {
			return b, err
		}
		return bonuses[i], nil
	}
	return models.MonthlyBonus{}, fmt.Errorf("month %q: %w", month, models.ErrNotFound)
}

func (uc *walletUC) unmarkMonth(ctx context.Context, email, month string) {
	unlock := uc.lockEmail(email)
	defer unlock()

	bonuses, err := uc.local.LoadMonthlyBonuses(ctx, email)
	if err == nil {
		for i := range bonuses {
			if bonuses[i].Month == month {
				bonuses[i].Claimed = false
			}
		}
		err = uc.local.SaveMonthlyBonuses(ctx, email, bonuses)
	}
	if err != nil {
		logger.Error("Failed to release monthly bonus claim",
			logger.String("month", month),
			logger.Err(err))
	}
}

// ReferralSummary returns the referral code, pending count and earnings of email
func (uc *walletUC) ReferralSummary(ctx context.Context, email string) (*models.ReferralSummary, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	code, err := uc.ensureReferralCode(ctx, email)
	if err != nil {
		return nil, err
	}
	pending, err := uc.local.PendingReferrals(ctx, code)
	if err != nil {
		return nil, err
	}
	data, err := uc.local.LoadReferralData(ctx, email)
	if err != nil {
		return nil, err
	}
	return &models.ReferralSummary{Code: code, Pending: pending, Data: data}, nil
}

// ClaimReferralBonuses pays the referral bonus for every pending referral and clears the counter
func (uc *walletUC) ClaimReferralBonuses(ctx context.Context, email string) (models.LocalLedger, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return models.LocalLedger{}, err
	}

	code, err := uc.ensureReferralCode(ctx, email)
	if err != nil {
		return models.LocalLedger{}, err
	}
	n, err := uc.local.TakePendingReferrals(ctx, code)
	if err != nil {
		return models.LocalLedger{}, err
	}
	if n == 0 {
		return models.LocalLedger{}, fmt.Errorf("no pending referrals: %w", models.ErrNotAvailable)
	}

	perReferral := uc.cfg.Wallet.ReferralBonus
	if perReferral <= 0 {
		perReferral = defaultReferralBonus
	}
	amount := perReferral * n

	noun := "referral"
	if n > 1 {
		noun = "referrals"
	}
	l, err := uc.credit(ctx, email, models.TransactionTypeReferralBonus, amount,
		fmt.Sprintf("Referral bonus (%d %s)", n, noun))
	if err != nil {
		if _, restoreErr := uc.local.AddPendingReferrals(ctx, code, n); restoreErr != nil {
			logger.Error("Failed to restore pending referrals",
				logger.String("code", code),
				logger.Int64("count", n),
				logger.Err(restoreErr))
		}
		return models.LocalLedger{}, err
	}

	data, err := uc.local.LoadReferralData(ctx, email)
	if err == nil {
		data.TotalReferrals += int(n)
		data.TotalEarnings += amount
		err = uc.local.SaveReferralData(ctx, email, data)
	}
	if err != nil {
		logger.Warn("Failed to update referral totals", logger.Err(err))
	}

	logger.Info("Referral bonuses claimed",
		logger.String("email", utils.MaskEmail(email)),
		logger.Int64("referrals", n),
		logger.Int64("amount", amount))
	return l, nil
}
