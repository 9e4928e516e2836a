package wallet

import (
	"context"

	"github.com/piresc/fairpay/internal/pkg/models"
)

// LocalStore is the per-device ledger cache.
// Missing or malformed values load as their zero state; only transport failures are errors.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/fairpay/services/wallet LocalStore
type LocalStore interface {
	Load(ctx context.Context, email string) (models.LocalLedger, error)
	Save(ctx context.Context, email string, ledger models.LocalLedger) error

	LoadProfile(ctx context.Context, email string) (models.UserProfile, error)
	SaveProfile(ctx context.Context, email string, profile models.UserProfile) error

	MarkLandingVisited(ctx context.Context) error
	HasVisitedLanding(ctx context.Context) (bool, error)
	SetCurrentUser(ctx context.Context, email string) error
	CurrentUser(ctx context.Context) (string, error)
	ClearCurrentUser(ctx context.Context) error

	ReferralCode(ctx context.Context, email string) (string, error)
	SetReferralCode(ctx context.Context, email, code string) error
	PendingReferrals(ctx context.Context, code string) (int64, error)
	AddPendingReferrals(ctx context.Context, code string, n int64) (int64, error)
	TakePendingReferrals(ctx context.Context, code string) (int64, error)
	LoadReferralData(ctx context.Context, email string) (models.ReferralData, error)
	SaveReferralData(ctx context.Context, email string, data models.ReferralData) error

	LoadMonthlyBonuses(ctx context.Context, email string) ([]models.MonthlyBonus, error)
	SaveMonthlyBonuses(ctx context.Context, email string, bonuses []models.MonthlyBonus) error
}
