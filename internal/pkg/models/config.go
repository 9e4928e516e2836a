package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Wallet   WalletConfig
	Admin    AdminConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ daemon addresses and the ledger event topic
type NSQConfig struct {
	Address        string
	LookupdAddress string
	Topic          string
	Channel        string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig holds the keys accepted on the wallet API
type APIKeyConfig struct {
	WalletClient string
	AdminClient  string
}

// WalletConfig contains wallet service specific configuration
type WalletConfig struct {
	// FaircodeValue is the literal code; FaircodeHash wins when both are set.
	FaircodeValue string
	FaircodeHash  string

	ReferralBonus  int64
	RecentLimit    int
	AirtimeDelayMs int
	LoanDelayMs    int
	PayoutDelayMs  int

	SupportPhone      string
	FaircodePayURL    string
	WithdrawalFeeURL  string
	DepositPayURL     string
	LocalStoreBackend string // "redis" or "memory"

	// GateRateLimit caps FairCode-gated calls per client within GateRatePeriodSec
	GateRateLimit     int
	GateRatePeriodSec int
}

// AdminConfig contains admin service specific configuration
type AdminConfig struct {
	Email         string
	PasswordHash  string
	SweepSchedule string
	SweepEnabled  bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
