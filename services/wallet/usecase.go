package wallet

import (
	"context"

	"github.com/piresc/fairpay/internal/pkg/models"
)

// WalletUC defines the dashboard operations of a wallet holder
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fairpay/services/wallet WalletUC
type WalletUC interface {
	EnterSession(ctx context.Context, req models.SessionRequest) (*models.Session, error)
	LeaveSession(ctx context.Context) error

	Ledger(ctx context.Context, email string) (models.LocalLedger, error)
	Summary(ctx context.Context, email string) (*models.LedgerSummary, error)
	Profile(ctx context.Context, email string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, email string, profile models.UserProfile) (models.UserProfile, error)

	ClaimBonus(ctx context.Context, email string, amount int64) (models.LocalLedger, error)
	MonthlyBonuses(ctx context.Context, email string) ([]models.MonthlyBonus, error)
	ClaimMonthlyBonus(ctx context.Context, email, month string) (models.LocalLedger, error)
	ReferralSummary(ctx context.Context, email string) (*models.ReferralSummary, error)
	ClaimReferralBonuses(ctx context.Context, email string) (models.LocalLedger, error)

	RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) (*models.WithdrawalReceipt, error)
	AddMoney(ctx context.Context, req models.DepositRequest) (*models.DepositReceipt, error)
	BuyFaircode(ctx context.Context, req models.DepositRequest) (*models.DepositReceipt, error)
	BuyAirtime(ctx context.Context, req models.AirtimeRequest) (*models.PaymentLink, error)
	ApplyLoan(ctx context.Context, req models.LoanRequest) (*models.LoanApplication, error)

	SyncFromRemote(ctx context.Context, email string) (models.LocalLedger, error)
	Watch(ctx context.Context, email string) error
	Unwatch(email string)
	HandleLedgerEvent(ctx context.Context, event models.LedgerEvent) error

	Close() error
}
