package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/fairpay/internal/pkg/ledger"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/utils"
)

const defaultRecentLimit = 10

// normalizeEmail lowercases and validates an email address
func normalizeEmail(raw string) (string, error) {
	email := utils.NormalizeEmail(raw)
	if !utils.IsValidEmail(email) {
		return "", fmt.Errorf("email %q: %w", raw, models.ErrMissingField)
	}
	return email, nil
}

// EnterSession signs a user in, registering them on first visit
func (uc *walletUC) EnterSession(ctx context.Context, req models.SessionRequest) (*models.Session, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	created := false
	user, err := uc.remote.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = email[:strings.Index(email, "@")]
		}
		user, err = uc.remote.CreateUser(ctx, &models.User{Email: email, Name: name})
		created = err == nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	if created && req.ReferralCode != "" {
		code := strings.ToUpper(strings.TrimSpace(req.ReferralCode))
		if _, err := uc.local.AddPendingReferrals(ctx, code, 1); err != nil {
			logger.Warn("Failed to record referral",
				logger.String("code", code),
				logger.Err(err))
		}
	}

	code, err := uc.ensureReferralCode(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := uc.local.MarkLandingVisited(ctx); err != nil {
		return nil, err
	}
	if err := uc.local.SetCurrentUser(ctx, email); err != nil {
		return nil, err
	}

	l, err := uc.SyncFromRemote(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := uc.Watch(ctx, email); err != nil {
		// the session still works off the synced cache
		logger.Warn("Failed to watch remote ledger",
			logger.String("email", utils.MaskEmail(email)),
			logger.Err(err))
	}

	logger.Info("Session opened",
		logger.String("email", utils.MaskEmail(email)),
		logger.Bool("created", created))

	return &models.Session{User: user, Ledger: l, ReferralCode: code, Created: created}, nil
}

// LeaveSession signs the current user out
func (uc *walletUC) LeaveSession(ctx context.Context) error {
	email, err := uc.local.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if email != "" {
		uc.Unwatch(email)
	}
	return uc.local.ClearCurrentUser(ctx)
}

func (uc *walletUC) ensureReferralCode(ctx context.Context, email string) (string, error) {
	code, err := uc.local.ReferralCode(ctx, email)
	if err != nil {
		return "", err
	}
	if code != "" {
		return code, nil
	}
	code = "FP" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	if err := uc.local.SetReferralCode(ctx, email, code); err != nil {
		return "", err
	}
	return code, nil
}

// Ledger returns the cached balance and transactions
func (uc *walletUC) Ledger(ctx context.Context, email string) (models.LocalLedger, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return models.LocalLedger{}, err
	}
	return uc.local.Load(ctx, email)
}

// Summary returns the dashboard totals and the most recent transactions
func (uc *walletUC) Summary(ctx context.Context, email string) (*models.LedgerSummary, error) {
	l, err := uc.Ledger(ctx, email)
	if err != nil {
		return nil, err
	}

	limit := uc.cfg.Wallet.RecentLimit
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	credits, debits := ledger.Totals(l.Transactions)

	return &models.LedgerSummary{
		Balance:      l.Balance,
		TotalCredits: credits,
		TotalDebits:  debits,
		Recent:       ledger.Recent(l.Transactions, limit),
	}, nil
}

func (uc *walletUC) Profile(ctx context.Context, email string) (models.UserProfile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return models.UserProfile{}, err
	}
	return uc.local.LoadProfile(ctx, email)
}

// UpdateProfile stores the editable profile fields; the phone number is normalised
func (uc *walletUC) UpdateProfile(ctx context.Context, email string, profile models.UserProfile) (models.UserProfile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile.Name = strings.TrimSpace(profile.Name)
	profile.Address = strings.TrimSpace(profile.Address)
	profile.BVN = strings.TrimSpace(profile.BVN)
	if profile.PhoneNumber != "" {
		phone, err := utils.NormalizePhone(profile.PhoneNumber)
		if err != nil {
			return models.UserProfile{}, err
		}
		profile.PhoneNumber = phone
	}

	if err := uc.local.SaveProfile(ctx, email, profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}
