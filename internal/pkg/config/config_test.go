package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wallet.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitConfig_Defaults(t *testing.T) {
	cfg := InitConfig("")

	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, int64(6500), cfg.Wallet.ReferralBonus)
	assert.Equal(t, 10, cfg.Wallet.RecentLimit)
	assert.Equal(t, 2000, cfg.Wallet.AirtimeDelayMs)
	assert.Equal(t, 3000, cfg.Wallet.LoanDelayMs)
	assert.Equal(t, "2348107516059", cfg.Wallet.SupportPhone)
	assert.Equal(t, "https://paystack.shop/pay/fairpay", cfg.Wallet.FaircodePayURL)
	assert.Equal(t, "https://paystack.shop/pay/i0nj8tjxcp", cfg.Wallet.WithdrawalFeeURL)
	assert.Equal(t, "ledger_events", cfg.NSQ.Topic)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "@every 15m", cfg.Admin.SweepSchedule)
}

func TestInitConfig_ReadsEnvFile(t *testing.T) {
	path := writeEnvFile(t, `APP_NAME=wallet-service
SERVER_PORT=9990
DB_HOST=db.internal
REDIS_HOST=cache.internal
FAIRCODE_VALUE=F-111111
AIRTIME_DELAY_MS=0
`)

	cfg := InitConfig(path)

	assert.Equal(t, "wallet-service", cfg.App.Name)
	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.Equal(t, "F-111111", cfg.Wallet.FaircodeValue)
	assert.Equal(t, 0, cfg.Wallet.AirtimeDelayMs)
}

func TestInitConfig_EnvironmentOverridesFile(t *testing.T) {
	path := writeEnvFile(t, "SERVER_PORT=9990\n")
	t.Setenv("SERVER_PORT", "7000")

	cfg := InitConfig(path)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestInitConfig_SkipsFileOutsideLocal(t *testing.T) {
	path := writeEnvFile(t, "APP_NAME=from-file\n")
	t.Setenv("APP_ENV", "production")

	cfg := InitConfig(path)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Empty(t, cfg.App.Name)
}

func TestInitConfig_MissingFileKeepsDefaults(t *testing.T) {
	cfg := InitConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "info", cfg.Logger.Level)
}
