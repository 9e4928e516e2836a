package config

import (
	"log"

	"github.com/piresc/fairpay/internal/pkg/constants"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the env file at configPath (local
// environment only) with process environment variables taking precedence.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("NATS_URL", "nats://127.0.0.1:4222")

	v.SetDefault("NSQ_ADDRESS", "127.0.0.1:4150")
	v.SetDefault("NSQ_TOPIC", constants.TopicLedgerEvents)
	v.SetDefault("NSQ_CHANNEL", constants.ChannelWallet)

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "fairpay")

	v.SetDefault("REFERRAL_BONUS", 6500)
	v.SetDefault("RECENT_TRANSACTIONS_LIMIT", 10)
	v.SetDefault("AIRTIME_DELAY_MS", 2000)
	v.SetDefault("GATE_RATE_LIMIT", 10)
	v.SetDefault("GATE_RATE_PERIOD_SECONDS", 60)
	v.SetDefault("LOAN_DELAY_MS", 3000)
	v.SetDefault("PAYOUT_DELAY_MS", 3000)
	v.SetDefault("SUPPORT_PHONE", "2348107516059")
	v.SetDefault("FAIRCODE_PAY_URL", "https://paystack.shop/pay/fairpay")
	v.SetDefault("WITHDRAWAL_FEE_URL", "https://paystack.shop/pay/i0nj8tjxcp")
	v.SetDefault("DEPOSIT_PAY_URL", "https://paystack.shop/pay/fairpay")
	v.SetDefault("LOCAL_STORE_BACKEND", "redis")

	v.SetDefault("ADMIN_SWEEP_SCHEDULE", "@every 15m")
	v.SetDefault("ADMIN_SWEEP_ENABLED", true)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "logs/fairpay.log")
	v.SetDefault("LOG_TYPE", "console")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.LookupdAddress = v.GetString("NSQ_LOOKUPD_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")
	configs.NSQ.Channel = v.GetString("NSQ_CHANNEL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// API keys
	configs.APIKey.WalletClient = v.GetString("WALLET_CLIENT_API_KEY")
	configs.APIKey.AdminClient = v.GetString("ADMIN_CLIENT_API_KEY")

	// Wallet config
	configs.Wallet.FaircodeValue = v.GetString("FAIRCODE_VALUE")
	configs.Wallet.FaircodeHash = v.GetString("FAIRCODE_HASH")
	configs.Wallet.ReferralBonus = v.GetInt64("REFERRAL_BONUS")
	configs.Wallet.RecentLimit = v.GetInt("RECENT_TRANSACTIONS_LIMIT")
	configs.Wallet.AirtimeDelayMs = v.GetInt("AIRTIME_DELAY_MS")
	configs.Wallet.LoanDelayMs = v.GetInt("LOAN_DELAY_MS")
	configs.Wallet.PayoutDelayMs = v.GetInt("PAYOUT_DELAY_MS")
	configs.Wallet.SupportPhone = v.GetString("SUPPORT_PHONE")
	configs.Wallet.FaircodePayURL = v.GetString("FAIRCODE_PAY_URL")
	configs.Wallet.WithdrawalFeeURL = v.GetString("WITHDRAWAL_FEE_URL")
	configs.Wallet.DepositPayURL = v.GetString("DEPOSIT_PAY_URL")
	configs.Wallet.LocalStoreBackend = v.GetString("LOCAL_STORE_BACKEND")
	configs.Wallet.GateRateLimit = v.GetInt("GATE_RATE_LIMIT")
	configs.Wallet.GateRatePeriodSec = v.GetInt("GATE_RATE_PERIOD_SECONDS")

	// Admin config
	configs.Admin.Email = v.GetString("ADMIN_EMAIL")
	configs.Admin.PasswordHash = v.GetString("ADMIN_PASSWORD_HASH")
	configs.Admin.SweepSchedule = v.GetString("ADMIN_SWEEP_SCHEDULE")
	configs.Admin.SweepEnabled = v.GetBool("ADMIN_SWEEP_ENABLED")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	return configs
}
