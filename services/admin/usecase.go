package admin

import (
	"context"

	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
)

// AdminUC defines the reconciliation operations of the admin console
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/fairpay/services/admin AdminUC
type AdminUC interface {
	Login(ctx context.Context, req models.AdminLoginRequest) (*models.AdminSession, error)

	Stats(ctx context.Context) (*models.Stats, error)
	Pending(ctx context.Context) (*models.PendingItems, error)

	ApproveWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error)
	RejectWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error)
	ConfirmDeposit(ctx context.Context, id string) (*models.Deposit, error)
	RejectDeposit(ctx context.Context, id string) (*models.Deposit, error)
	ApproveLoan(ctx context.Context, id string) (*models.LoanApplication, error)
	RejectLoan(ctx context.Context, id string) (*models.LoanApplication, error)

	// Watch* deliver the pending queue (all users for WatchUsers) on every change
	WatchWithdrawals(ctx context.Context, cb func([]models.Withdrawal)) (remotestore.Unsubscribe, error)
	WatchDeposits(ctx context.Context, cb func([]models.Deposit)) (remotestore.Unsubscribe, error)
	WatchLoans(ctx context.Context, cb func([]models.LoanApplication)) (remotestore.Unsubscribe, error)
	WatchUsers(ctx context.Context, cb func([]models.User)) (remotestore.Unsubscribe, error)

	Sweep(ctx context.Context) (*models.SweepReport, error)
}
