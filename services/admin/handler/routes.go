package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/jwt"
	"github.com/piresc/fairpay/internal/pkg/middleware"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/services/admin/handler/http"
	"github.com/piresc/fairpay/services/admin/handler/scheduler"
)

// Handler coordinates all protocol handlers for the admin service
type Handler struct {
	adminHandler *http.AdminHandler
	sweeper      *scheduler.SweepScheduler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers. sweeper may be nil when
// scheduled sweeps are disabled.
func NewHandler(
	adminHandler *http.AdminHandler,
	sweeper *scheduler.SweepScheduler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		adminHandler: adminHandler,
		sweeper:      sweeper,
		cfg:          cfg,
	}
}

// StartScheduler starts the periodic reconciliation sweep
func (h *Handler) StartScheduler() {
	if h.sweeper != nil {
		h.sweeper.Start()
	}
}

// Sweeper returns the scheduler, nil when disabled
func (h *Handler) Sweeper() *scheduler.SweepScheduler {
	return h.sweeper
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	e.POST("/v1/admin/session", h.adminHandler.Login)

	// Protected routes, admin tokens only
	protected := e.Group("/v1/admin",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		middleware.RequireRole(jwt.RoleAdmin),
	)
	protected.GET("/stats", h.adminHandler.GetStats)
	protected.GET("/pending", h.adminHandler.GetPending)
	protected.GET("/stream/:collection", h.adminHandler.Stream)
	protected.POST("/sweep", h.adminHandler.Sweep)

	protected.POST("/withdrawals/:id/approve", h.adminHandler.ApproveWithdrawal)
	protected.POST("/withdrawals/:id/reject", h.adminHandler.RejectWithdrawal)
	protected.POST("/deposits/:id/confirm", h.adminHandler.ConfirmDeposit)
	protected.POST("/deposits/:id/reject", h.adminHandler.RejectDeposit)
	protected.POST("/loans/:id/approve", h.adminHandler.ApproveLoan)
	protected.POST("/loans/:id/reject", h.adminHandler.RejectLoan)
}
