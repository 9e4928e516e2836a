package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLocal(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		{ID: "c", Direction: models.DirectionCredit, Amount: 700, Status: models.TransactionStatusCompleted, Description: "Refund", CreatedAt: at},
		{ID: "b", Direction: models.DirectionDebit, Amount: -300, Status: models.TransactionStatusFailed, Description: "Bounced", CreatedAt: at},
		{ID: "a", Direction: models.DirectionDebit, Amount: -700, Status: models.TransactionStatusPending, Description: "Withdrawal", CreatedAt: at},
	}

	l := toLocal(1000, txs)
	assert.Equal(t, int64(1000), l.Balance)
	require.Len(t, l.Transactions, 2)

	// same millisecond: ids are bumped, oldest keeps the timestamp
	assert.Equal(t, at.UnixMilli(), l.Transactions[1].ID)
	assert.Equal(t, at.UnixMilli()+1, l.Transactions[0].ID)

	assert.Equal(t, models.DirectionDebit, l.Transactions[1].Type)
	assert.Equal(t, int64(700), l.Transactions[1].Amount)
	assert.Equal(t, "Refund", l.Transactions[0].Description)
	assert.Equal(t, at, l.Transactions[0].Date)
}

func TestToLocal_Empty(t *testing.T) {
	l := toLocal(0, nil)
	assert.NotNil(t, l.Transactions)
	assert.Empty(t, l.Transactions)
}

// creditDirectly plays an admin confirming a deposit for userID
func creditDirectly(t *testing.T, remote remotestore.Store, userID string, amount int64) {
	t.Helper()
	err := remote.WithinTx(context.Background(), func(tx remotestore.Store) error {
		if _, err := tx.IncrementBalance(context.Background(), userID, amount); err != nil {
			return err
		}
		_, err := tx.CreateTransaction(context.Background(), &models.Transaction{
			UserID:      userID,
			Type:        models.TransactionTypeDeposit,
			Direction:   models.DirectionCredit,
			Amount:      amount,
			Status:      models.TransactionStatusCompleted,
			Description: "Deposit confirmed",
		})
		return err
	})
	require.NoError(t, err)
}

func TestSyncFromRemote(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()

	user, err := f.remote.CreateUser(ctx, &models.User{Email: testEmail, Name: "Ada"})
	require.NoError(t, err)
	creditDirectly(t, f.remote, user.ID, 4000)
	creditDirectly(t, f.remote, user.ID, 6000)

	// whatever the cache held is replaced
	require.NoError(t, f.local.Save(ctx, testEmail, models.LocalLedger{Balance: 99}))

	l, err := f.uc.SyncFromRemote(ctx, "ADA@fairpay.ng")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), l.Balance)
	require.Len(t, l.Transactions, 2)
	assert.Equal(t, int64(6000), l.Transactions[0].Amount)
	assert.Greater(t, l.Transactions[0].ID, l.Transactions[1].ID)

	cached, err := f.local.Load(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, l, cached)

	// ids issued afterwards stay ahead of the synced ones
	next, err := f.uc.ClaimBonus(ctx, testEmail, 1)
	require.NoError(t, err)
	assert.Greater(t, next.Transactions[0].ID, l.Transactions[0].ID)
}

func TestSyncFromRemote_UnknownUser(t *testing.T) {
	f := newFixture(t, testConfig())

	_, err := f.uc.SyncFromRemote(context.Background(), testEmail)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestWatch_FollowsRemoteChanges(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	user := f.enter(t, testEmail, 0)

	creditDirectly(t, f.remote, user.ID, 2500)

	l, err := f.uc.Ledger(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), l.Balance)
	require.Len(t, l.Transactions, 1)
	assert.Equal(t, "Deposit confirmed", l.Transactions[0].Description)

	// watching twice keeps a single subscription
	require.NoError(t, f.uc.Watch(ctx, testEmail))
	assert.Len(t, f.uc.watches, 1)

	f.uc.Unwatch(testEmail)
	creditDirectly(t, f.remote, user.ID, 500)

	l, err = f.uc.Ledger(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), l.Balance)
	assert.Zero(t, f.remote.Feed().Watchers(models.CollectionTransactions))
}

func TestWatch_OtherUsersIgnored(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.enter(t, testEmail, 0)

	other, err := f.remote.CreateUser(ctx, &models.User{Email: "bola@fairpay.ng", Name: "Bola"})
	require.NoError(t, err)
	creditDirectly(t, f.remote, other.ID, 9000)

	l, err := f.uc.Ledger(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(0), l.Balance)
	assert.Empty(t, l.Transactions)
}

func TestWatch_UnknownUser(t *testing.T) {
	f := newFixture(t, testConfig())

	err := f.uc.Watch(context.Background(), testEmail)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, f.uc.watches)
}

func TestClose_DetachesWatches(t *testing.T) {
	f := newFixture(t, testConfig())
	f.enter(t, testEmail, 0)
	require.Equal(t, 1, f.remote.Feed().Watchers(models.CollectionTransactions))

	require.NoError(t, f.uc.Close())
	assert.Zero(t, f.remote.Feed().Watchers(models.CollectionTransactions))
	assert.Empty(t, f.uc.watches)
}

func TestHandleLedgerEvent(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()

	user, err := f.remote.CreateUser(ctx, &models.User{Email: testEmail, Name: "Ada"})
	require.NoError(t, err)
	creditDirectly(t, f.remote, user.ID, 3000)

	t.Run("by user id", func(t *testing.T) {
		err := f.uc.HandleLedgerEvent(ctx, models.LedgerEvent{
			Event:  models.EventDepositConfirmed,
			UserID: user.ID,
			Amount: 3000,
		})
		require.NoError(t, err)

		l, err := f.local.Load(ctx, testEmail)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), l.Balance)
	})

	t.Run("by email", func(t *testing.T) {
		creditDirectly(t, f.remote, user.ID, 1000)
		err := f.uc.HandleLedgerEvent(ctx, models.LedgerEvent{Event: models.EventDepositConfirmed, Email: testEmail})
		require.NoError(t, err)

		l, err := f.local.Load(ctx, testEmail)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), l.Balance)
	})

	t.Run("no user", func(t *testing.T) {
		err := f.uc.HandleLedgerEvent(ctx, models.LedgerEvent{Event: models.EventDepositConfirmed})
		assert.ErrorIs(t, err, models.ErrMissingField)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := f.uc.HandleLedgerEvent(ctx, models.LedgerEvent{Event: models.EventDepositConfirmed, UserID: "nope"})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
