package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/fairpay/internal/pkg/constants"
	"github.com/piresc/fairpay/internal/pkg/database"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/services/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

// stores runs fn against every LocalStore implementation
func stores(t *testing.T, fn func(t *testing.T, store wallet.LocalStore)) {
	t.Run("redis", func(t *testing.T) {
		_, client := setupMiniredis(t)
		fn(t, NewRedisLocalStore(&database.RedisClient{Client: client}))
	})
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryLocalStore())
	})
}

func sampleLedger() models.LocalLedger {
	date := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return models.LocalLedger{
		Balance: 4500,
		Transactions: []models.LocalTransaction{
			{ID: 1714557600002, Type: models.DirectionDebit, Amount: 500, Description: "Withdrawal", Date: date},
			{ID: 1714557600001, Type: models.DirectionCredit, Amount: 5000, Description: "Bonus claimed", Date: date},
		},
	}
}

func TestLocalStore_LedgerRoundTrip(t *testing.T) {
	stores(t, func(t *testing.T, store wallet.LocalStore) {
		ctx := context.Background()

		empty, err := store.Load(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Equal(t, int64(0), empty.Balance)
		assert.Empty(t, empty.Transactions)

		require.NoError(t, store.Save(ctx, "ada@fairpay.ng", sampleLedger()))

		loaded, err := store.Load(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Equal(t, int64(4500), loaded.Balance)
		require.Len(t, loaded.Transactions, 2)
		assert.Equal(t, int64(1714557600002), loaded.Transactions[0].ID)
		assert.Equal(t, "Withdrawal", loaded.Transactions[0].Description)

		// other users are isolated
		other, err := store.Load(ctx, "bola@fairpay.ng")
		require.NoError(t, err)
		assert.Equal(t, int64(0), other.Balance)
	})
}

func TestLocalStore_LoadedLedgerIsACopy(t *testing.T) {
	stores(t, func(t *testing.T, store wallet.LocalStore) {
		ctx := context.Background()
		require.NoError(t, store.Save(ctx, "ada@fairpay.ng", sampleLedger()))

		first, err := store.Load(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		first.Transactions[0].Amount = 1

		second, err := store.Load(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Equal(t, int64(500), second.Transactions[0].Amount)
	})
}

func TestRedisStore_LoadFailsSoft(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		balance string
		txs     string
	}{
		{name: "unreadable balance", balance: "lots", txs: "[]"},
		{name: "unreadable transactions", balance: "100", txs: "{not json"},
		{name: "transactions without balance", txs: `[{"id":1,"type":"credit","amount":5}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr, client := setupMiniredis(t)
			store := NewRedisLocalStore(&database.RedisClient{Client: client})

			if tt.balance != "" {
				require.NoError(t, mr.Set(fmt.Sprintf(constants.KeyUserBalance, "ada@fairpay.ng"), tt.balance))
			}
			require.NoError(t, mr.Set(fmt.Sprintf(constants.KeyUserTransactions, "ada@fairpay.ng"), tt.txs))

			ledger, err := store.Load(ctx, "ada@fairpay.ng")
			require.NoError(t, err)
			assert.Equal(t, int64(0), ledger.Balance)
			assert.Empty(t, ledger.Transactions)
		})
	}
}

func TestRedisStore_BalanceWithoutTransactions(t *testing.T) {
	mr, client := setupMiniredis(t)
	store := NewRedisLocalStore(&database.RedisClient{Client: client})
	require.NoError(t, mr.Set(fmt.Sprintf(constants.KeyUserBalance, "ada@fairpay.ng"), "2500"))

	ledger, err := store.Load(context.Background(), "ada@fairpay.ng")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), ledger.Balance)
	assert.Empty(t, ledger.Transactions)
}

func TestRedisStore_KeyLayout(t *testing.T) {
	ctx := context.Background()
	mr, client := setupMiniredis(t)
	store := NewRedisLocalStore(&database.RedisClient{Client: client})

	require.NoError(t, store.Save(ctx, "ada@fairpay.ng", sampleLedger()))
	require.NoError(t, store.SaveProfile(ctx, "ada@fairpay.ng", models.UserProfile{Name: "Ada", BVN: "22233344455"}))
	require.NoError(t, store.SetCurrentUser(ctx, "ada@fairpay.ng"))
	require.NoError(t, store.MarkLandingVisited(ctx))

	balance, err := mr.Get("userBalance_ada@fairpay.ng")
	require.NoError(t, err)
	assert.Equal(t, "4500", balance)
	assert.True(t, mr.Exists("userTransactions_ada@fairpay.ng"))
	assert.Equal(t, "Ada", mr.HGet("userProfile_ada@fairpay.ng", constants.FieldName))

	current, err := mr.Get(constants.KeyCurrentUser)
	require.NoError(t, err)
	assert.Equal(t, "ada@fairpay.ng", current)
	visited, err := mr.Get(constants.KeyHasVisited)
	require.NoError(t, err)
	assert.Equal(t, "true", visited)
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr, client := setupMiniredis(t)
	store := NewRedisLocalStore(&database.RedisClient{Client: client})
	mr.Close()

	_, err := store.Load(context.Background(), "ada@fairpay.ng")
	assert.Error(t, err)
	assert.Error(t, store.Save(context.Background(), "ada@fairpay.ng", sampleLedger()))
}

func TestLocalStore_SessionKeys(t *testing.T) {
	stores(t, func(t *testing.T, store wallet.LocalStore) {
		ctx := context.Background()

		visited, err := store.HasVisitedLanding(ctx)
		require.NoError(t, err)
		assert.False(t, visited)
		require.NoError(t, store.MarkLandingVisited(ctx))
		visited, err = store.HasVisitedLanding(ctx)
		require.NoError(t, err)
		assert.True(t, visited)

		current, err := store.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Empty(t, current)

		require.NoError(t, store.SetCurrentUser(ctx, "ada@fairpay.ng"))
		current, err = store.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ada@fairpay.ng", current)

		require.NoError(t, store.ClearCurrentUser(ctx))
		current, err = store.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Empty(t, current)
	})
}

func TestLocalStore_Profile(t *testing.T) {
	stores(t, func(t *testing.T, store wallet.LocalStore) {
		ctx := context.Background()

		profile, err := store.LoadProfile(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Equal(t, models.UserProfile{}, profile)

		want := models.UserProfile{Name: "Ada Obi", PhoneNumber: "08031234567", BVN: "22233344455", Address: "12 Allen Ave, Ikeja"}
		require.NoError(t, store.SaveProfile(ctx, "ada@fairpay.ng", want))

		profile, err = store.LoadProfile(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Equal(t, want, profile)
	})
}

func TestLocalStore_Referrals(t *testing.T) {
	stores(t, func(t *testing.T, store wallet.LocalStore) {
		ctx := context.Background()

		code, err := store.ReferralCode(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Empty(t, code)

		require.NoError(t, store.SetReferralCode(ctx, "ada@fairpay.ng", "FP1A2B3C"))
		code, err = store.ReferralCode(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Equal(t, "FP1A2B3C", code)

		n, err := store.PendingReferrals(ctx, "FP1A2B3C")
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		n, err = store.AddPendingReferrals(ctx, "FP1A2B3C", 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		n, err = store.AddPendingReferrals(ctx, "FP1A2B3C", 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		n, err = store.PendingReferrals(ctx, "FP1A2B3C")
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		taken, err := store.TakePendingReferrals(ctx, "FP1A2B3C")
		require.NoError(t, err)
		assert.Equal(t, int64(3), taken)

		taken, err = store.TakePendingReferrals(ctx, "FP1A2B3C")
		require.NoError(t, err)
		assert.Equal(t, int64(0), taken)

		data, err := store.LoadReferralData(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Equal(t, models.ReferralData{}, data)

		require.NoError(t, store.SaveReferralData(ctx, "ada@fairpay.ng", models.ReferralData{TotalReferrals: 3, TotalEarnings: 19500}))
		data, err = store.LoadReferralData(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Equal(t, 3, data.TotalReferrals)
		assert.Equal(t, int64(19500), data.TotalEarnings)
	})
}

func TestLocalStore_MonthlyBonuses(t *testing.T) {
	stores(t, func(t *testing.T, store wallet.LocalStore) {
		ctx := context.Background()

		bonuses, err := store.LoadMonthlyBonuses(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Nil(t, bonuses)

		want := []models.MonthlyBonus{
			{Month: "January", Amount: 150000, Claimed: true, Available: true},
			{Month: "February", Amount: 420000, Available: false},
		}
		require.NoError(t, store.SaveMonthlyBonuses(ctx, "ada@fairpay.ng", want))

		bonuses, err = store.LoadMonthlyBonuses(ctx, "ada@fairpay.ng")
		require.NoError(t, err)
		assert.Equal(t, want, bonuses)

		// calendars are per user
		bonuses, err = store.LoadMonthlyBonuses(ctx, "bola@fairpay.ng")
		require.NoError(t, err)
		assert.Nil(t, bonuses)
	})
}
