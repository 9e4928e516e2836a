package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/middleware"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/services/wallet/handler/http"
	"github.com/piresc/fairpay/services/wallet/handler/nsq"
)

// Handler coordinates all protocol handlers for the wallet service
type Handler struct {
	walletHandler *http.WalletHandler
	eventHandler  *nsq.LedgerEventHandler
	redisClient   *redis.Client
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers. redisClient may be nil,
// in which case gated routes are not rate limited.
func NewHandler(
	walletHandler *http.WalletHandler,
	eventHandler *nsq.LedgerEventHandler,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		walletHandler: walletHandler,
		eventHandler:  eventHandler,
		redisClient:   redisClient,
		cfg:           cfg,
	}
}

// InitNSQConsumers starts the ledger event consumer
func (h *Handler) InitNSQConsumers() error {
	return h.eventHandler.InitConsumer(h.cfg.NSQ)
}

// StopNSQConsumers drains the ledger event consumer
func (h *Handler) StopNSQConsumers() {
	h.eventHandler.Stop()
}

// gateLimiter throttles FairCode guesses per client
func (h *Handler) gateLimiter() []echo.MiddlewareFunc {
	if h.redisClient == nil || h.cfg.Wallet.GateRateLimit <= 0 {
		return nil
	}
	period := time.Duration(h.cfg.Wallet.GateRatePeriodSec) * time.Second
	return []echo.MiddlewareFunc{middleware.GateRateLimiter(h.cfg.Wallet.GateRateLimit, period, h.redisClient)}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1", middleware.ValidateAPIKey(h.cfg.APIKey.WalletClient))

	v1.POST("/session", h.walletHandler.EnterSession)
	v1.DELETE("/session", h.walletHandler.LeaveSession)

	walletGroup := v1.Group("/wallet/:email")
	walletGroup.GET("", h.walletHandler.GetLedger)
	walletGroup.GET("/summary", h.walletHandler.GetSummary)
	walletGroup.GET("/profile", h.walletHandler.GetProfile)
	walletGroup.PUT("/profile", h.walletHandler.UpdateProfile)
	walletGroup.POST("/bonus", h.walletHandler.ClaimBonus)
	walletGroup.GET("/bonuses", h.walletHandler.GetMonthlyBonuses)
	walletGroup.POST("/bonuses/:month/claim", h.walletHandler.ClaimMonthlyBonus)
	walletGroup.GET("/referrals", h.walletHandler.GetReferrals)
	walletGroup.POST("/referrals/claim", h.walletHandler.ClaimReferralBonuses)
	walletGroup.POST("/sync", h.walletHandler.Sync)

	v1.POST("/withdrawals", h.walletHandler.RequestWithdrawal)
	v1.POST("/deposits", h.walletHandler.AddMoney)
	v1.POST("/faircodes", h.walletHandler.BuyFaircode)

	v1.POST("/airtime", h.walletHandler.BuyAirtime, h.gateLimiter()...)
	v1.POST("/loans", h.walletHandler.ApplyLoan, h.gateLimiter()...)
}
