package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyBonuses(t *testing.T) {
	f := newFixture(t, testConfig())
	f.uc.now = func() time.Time { return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	bonuses, err := f.uc.MonthlyBonuses(ctx, testEmail)
	require.NoError(t, err)
	require.Len(t, bonuses, 12)

	for i, b := range bonuses {
		assert.Equal(t, time.Month(i+1).String(), b.Month)
		assert.GreaterOrEqual(t, b.Amount, int64(150000))
		assert.LessOrEqual(t, b.Amount, int64(500000))
		assert.False(t, b.Claimed)
		assert.Equal(t, i < 3, b.Available, b.Month)
	}

	// the calendar is generated once
	again, err := f.uc.MonthlyBonuses(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, bonuses, again)

	// availability follows the clock
	f.uc.now = func() time.Time { return time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC) }
	later, err := f.uc.MonthlyBonuses(ctx, testEmail)
	require.NoError(t, err)
	assert.True(t, later[11].Available)
	assert.Equal(t, bonuses[11].Amount, later[11].Amount)
}

func TestClaimMonthlyBonus(t *testing.T) {
	f := newFixture(t, testConfig())
	f.uc.now = func() time.Time { return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()
	user := f.enter(t, testEmail, 0)

	bonuses, err := f.uc.MonthlyBonuses(ctx, testEmail)
	require.NoError(t, err)
	january := bonuses[0].Amount

	l, err := f.uc.ClaimMonthlyBonus(ctx, testEmail, "january")
	require.NoError(t, err)
	assert.Equal(t, january, l.Balance)
	assert.Equal(t, "January bonus claimed", l.Transactions[0].Description)
	assert.Equal(t, january, f.remoteBalance(t, user.ID))

	_, err = f.uc.ClaimMonthlyBonus(ctx, testEmail, "January")
	assert.ErrorIs(t, err, models.ErrAlreadyClaimed)

	_, err = f.uc.ClaimMonthlyBonus(ctx, testEmail, "December")
	assert.ErrorIs(t, err, models.ErrNotAvailable)

	_, err = f.uc.ClaimMonthlyBonus(ctx, testEmail, "Smarch")
	assert.ErrorIs(t, err, models.ErrNotFound)

	bonuses, err = f.uc.MonthlyBonuses(ctx, testEmail)
	require.NoError(t, err)
	assert.True(t, bonuses[0].Claimed)
	assert.False(t, bonuses[1].Claimed)
	assert.Equal(t, january, f.remoteBalance(t, user.ID))
}

func TestClaimMonthlyBonus_ReleasedWhenCreditFails(t *testing.T) {
	f := newFixture(t, testConfig())
	f.uc.now = func() time.Time { return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	// no remote user, so the credit cannot land
	_, err := f.uc.ClaimMonthlyBonus(ctx, testEmail, "February")
	assert.ErrorIs(t, err, models.ErrNotFound)

	bonuses, err := f.uc.MonthlyBonuses(ctx, testEmail)
	require.NoError(t, err)
	assert.False(t, bonuses[1].Claimed)
}

func TestReferralBonuses(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()

	referrer, err := f.uc.EnterSession(ctx, models.SessionRequest{Email: testEmail})
	require.NoError(t, err)
	code := referrer.ReferralCode

	_, err = f.uc.ClaimReferralBonuses(ctx, testEmail)
	assert.ErrorIs(t, err, models.ErrNotAvailable)

	for _, email := range []string{"bola@fairpay.ng", "chidi@fairpay.ng"} {
		_, err := f.uc.EnterSession(ctx, models.SessionRequest{Email: email, ReferralCode: " " + code})
		require.NoError(t, err)
	}
	// returning users do not count twice
	_, err = f.uc.EnterSession(ctx, models.SessionRequest{Email: "bola@fairpay.ng", ReferralCode: code})
	require.NoError(t, err)

	summary, err := f.uc.ReferralSummary(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, code, summary.Code)
	assert.Equal(t, int64(2), summary.Pending)

	l, err := f.uc.ClaimReferralBonuses(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(13000), l.Balance)
	assert.Equal(t, "Referral bonus (2 referrals)", l.Transactions[0].Description)
	assert.Equal(t, int64(13000), f.remoteBalance(t, referrer.User.ID))

	summary, err = f.uc.ReferralSummary(ctx, testEmail)
	require.NoError(t, err)
	assert.Zero(t, summary.Pending)
	assert.Equal(t, 2, summary.Data.TotalReferrals)
	assert.Equal(t, int64(13000), summary.Data.TotalEarnings)

	_, err = f.uc.ClaimReferralBonuses(ctx, testEmail)
	assert.ErrorIs(t, err, models.ErrNotAvailable)
}

func TestReferralBonuses_SingleReferral(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()

	referrer, err := f.uc.EnterSession(ctx, models.SessionRequest{Email: testEmail})
	require.NoError(t, err)
	_, err = f.uc.EnterSession(ctx, models.SessionRequest{Email: "bola@fairpay.ng", ReferralCode: referrer.ReferralCode})
	require.NoError(t, err)

	l, err := f.uc.ClaimReferralBonuses(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(6500), l.Balance)
	assert.Equal(t, "Referral bonus (1 referral)", l.Transactions[0].Description)
}
