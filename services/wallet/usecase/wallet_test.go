package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/pkg/pacer"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
	"github.com/piresc/fairpay/services/wallet"
	"github.com/piresc/fairpay/services/wallet/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "ada@fairpay.ng"

func testConfig() *models.Config {
	return &models.Config{
		Wallet: models.WalletConfig{
			FaircodeValue: "F-187377",
			ReferralBonus: 6500,
			RecentLimit:   10,
		},
	}
}

type fixture struct {
	uc     *walletUC
	remote *remotestore.MemoryStore
	local  wallet.LocalStore
}

func newFixture(t *testing.T, cfg *models.Config) *fixture {
	t.Helper()
	remote := remotestore.NewMemoryStore()
	local := repository.NewMemoryLocalStore()

	uc, err := newWalletUC(cfg, local, remote)
	require.NoError(t, err)
	t.Cleanup(func() { _ = uc.Close() })

	return &fixture{uc: uc, remote: remote, local: local}
}

// enter opens a session and credits the opening balance through a bonus claim
func (f *fixture) enter(t *testing.T, email string, balance int64) *models.User {
	t.Helper()
	session, err := f.uc.EnterSession(context.Background(), models.SessionRequest{Email: email, Name: "Ada Obi"})
	require.NoError(t, err)
	if balance > 0 {
		_, err = f.uc.ClaimBonus(context.Background(), email, balance)
		require.NoError(t, err)
	}
	return session.User
}

func (f *fixture) remoteBalance(t *testing.T, userID string) int64 {
	t.Helper()
	u, err := f.remote.GetUser(context.Background(), userID)
	require.NoError(t, err)
	return u.Balance
}

func TestNewWalletUC_RequiresDependencies(t *testing.T) {
	_, err := NewWalletUC(nil, repository.NewMemoryLocalStore(), remotestore.NewMemoryStore())
	assert.Error(t, err)
	_, err = NewWalletUC(testConfig(), nil, remotestore.NewMemoryStore())
	assert.Error(t, err)
	_, err = NewWalletUC(testConfig(), repository.NewMemoryLocalStore(), nil)
	assert.Error(t, err)
}

func TestEnterSession(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()

	session, err := f.uc.EnterSession(ctx, models.SessionRequest{Email: "  Ada@FairPay.ng "})
	require.NoError(t, err)
	assert.True(t, session.Created)
	assert.Equal(t, testEmail, session.User.Email)
	assert.Equal(t, "ada", session.User.Name)
	assert.Equal(t, int64(0), session.Ledger.Balance)
	assert.Empty(t, session.Ledger.Transactions)
	assert.Regexp(t, `^FP[0-9A-F]{6}$`, session.ReferralCode)

	current, err := f.local.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, testEmail, current)
	visited, err := f.local.HasVisitedLanding(ctx)
	require.NoError(t, err)
	assert.True(t, visited)

	again, err := f.uc.EnterSession(ctx, models.SessionRequest{Email: testEmail})
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, session.User.ID, again.User.ID)
	assert.Equal(t, session.ReferralCode, again.ReferralCode)
}

func TestEnterSession_InvalidEmail(t *testing.T) {
	f := newFixture(t, testConfig())

	_, err := f.uc.EnterSession(context.Background(), models.SessionRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, models.ErrMissingField)

	snap, err := f.remote.List(context.Background(), models.Query{Collection: models.CollectionUsers})
	require.NoError(t, err)
	assert.Zero(t, snap.Len())
}

func TestLeaveSession(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.enter(t, testEmail, 0)

	require.NoError(t, f.uc.LeaveSession(ctx))

	current, err := f.local.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)
	assert.Empty(t, f.uc.watches)

	// leaving twice is harmless
	require.NoError(t, f.uc.LeaveSession(ctx))
}

func TestClaimBonus(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	user := f.enter(t, testEmail, 0)

	l, err := f.uc.ClaimBonus(ctx, testEmail, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), l.Balance)
	require.Len(t, l.Transactions, 1)
	assert.Equal(t, models.DirectionCredit, l.Transactions[0].Type)
	assert.Equal(t, int64(5000), l.Transactions[0].Amount)
	assert.Equal(t, "Bonus claimed", l.Transactions[0].Description)

	assert.Equal(t, int64(5000), f.remoteBalance(t, user.ID))
	txs, err := f.remote.ListTransactions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TransactionTypeBonus, txs[0].Type)
	assert.Equal(t, models.TransactionStatusCompleted, txs[0].Status)

	_, err = f.uc.ClaimBonus(ctx, testEmail, 0)
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestClaimBonus_WithoutLiveWatch(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()

	// a user known remotely but never signed in on this device
	_, err := f.remote.CreateUser(ctx, &models.User{Email: testEmail, Name: "Ada"})
	require.NoError(t, err)

	l, err := f.uc.ClaimBonus(ctx, testEmail, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), l.Balance)
	require.Len(t, l.Transactions, 1)

	l, err = f.uc.ClaimBonus(ctx, testEmail, 700)
	require.NoError(t, err)
	assert.Equal(t, int64(5700), l.Balance)
	require.Len(t, l.Transactions, 2)
	assert.Greater(t, l.Transactions[0].ID, l.Transactions[1].ID)
}

func TestClaimBonus_UnknownUser(t *testing.T) {
	f := newFixture(t, testConfig())

	_, err := f.uc.ClaimBonus(context.Background(), "ghost@fairpay.ng", 5000)
	assert.ErrorIs(t, err, models.ErrNotFound)

	l, err := f.local.Load(context.Background(), "ghost@fairpay.ng")
	require.NoError(t, err)
	assert.Equal(t, int64(0), l.Balance)
}

func TestApplyLocal_ResyncsOnDrift(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	user := f.enter(t, testEmail, 10000)
	f.uc.Unwatch(testEmail)

	// the cache went stale: it believes the balance is 3
	require.NoError(t, f.local.Save(ctx, testEmail, models.LocalLedger{Balance: 3}))

	l, err := f.uc.ClaimBonus(ctx, testEmail, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(10500), l.Balance)
	assert.Equal(t, f.remoteBalance(t, user.ID), l.Balance)
	assert.Len(t, l.Transactions, 2)
}

func TestSummary(t *testing.T) {
	cfg := testConfig()
	cfg.Wallet.RecentLimit = 2
	f := newFixture(t, cfg)
	ctx := context.Background()
	f.enter(t, testEmail, 10000)

	_, err := f.uc.RequestWithdrawal(ctx, models.WithdrawalRequest{
		Email:       testEmail,
		Amount:      2500,
		BankAccount: models.BankAccount{BankName: "GTBank", AccountNumber: "0123456789", AccountName: "Ada Obi"},
	})
	require.NoError(t, err)
	_, err = f.uc.ClaimBonus(ctx, testEmail, 1000)
	require.NoError(t, err)

	summary, err := f.uc.Summary(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(8500), summary.Balance)
	assert.Equal(t, int64(11000), summary.TotalCredits)
	assert.Equal(t, int64(2500), summary.TotalDebits)
	require.Len(t, summary.Recent, 2)
	assert.Equal(t, "Bonus claimed", summary.Recent[0].Description)
	assert.Equal(t, "Withdrawal", summary.Recent[1].Description)
}

func TestProfile(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()

	saved, err := f.uc.UpdateProfile(ctx, testEmail, models.UserProfile{
		Name:        " Ada Obi ",
		PhoneNumber: "+234 803 123 4567",
		BVN:         "22233344455",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", saved.Name)
	assert.Equal(t, "08031234567", saved.PhoneNumber)

	loaded, err := f.uc.Profile(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	_, err = f.uc.UpdateProfile(ctx, testEmail, models.UserProfile{PhoneNumber: "12345"})
	assert.ErrorIs(t, err, models.ErrMissingField)
}

func TestPacedDelays_AreCancellable(t *testing.T) {
	cfg := testConfig()
	cfg.Wallet.AirtimeDelayMs = 60000
	f := newFixture(t, cfg)

	req := models.AirtimeRequest{
		Email:       testEmail,
		PhoneNumber: "08031234567",
		Network:     "MTN",
		Amount:      500,
		FairCode:    "F-187377",
	}

	t.Run("request cancelled", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := f.uc.BuyAirtime(ctx, req)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("usecase closed", func(t *testing.T) {
		errCh := make(chan error, 1)
		go func() {
			_, err := f.uc.BuyAirtime(context.Background(), req)
			errCh <- err
		}()

		time.Sleep(20 * time.Millisecond)
		require.NoError(t, f.uc.Close())

		select {
		case err := <-errCh:
			assert.True(t, errors.Is(err, pacer.ErrClosed))
		case <-time.After(2 * time.Second):
			t.Fatal("airtime order still waiting after Close")
		}
	})
}
