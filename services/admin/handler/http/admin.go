package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/middleware"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/pkg/remotestore"
	"github.com/piresc/fairpay/internal/utils"
	"github.com/piresc/fairpay/services/admin"
)

// AdminHandler handles HTTP requests for the admin console
type AdminHandler struct {
	adminUC admin.AdminUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUC admin.AdminUC) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
	}
}

// Login issues an admin token
func (h *AdminHandler) Login(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	session, err := h.adminUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Signed in", session)
}

// GetStats returns the dashboard aggregate
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.adminUC.Stats(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate stats", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stats retrieved successfully", stats)
}

// GetPending returns the review queues
func (h *AdminHandler) GetPending(c echo.Context) error {
	items, err := h.adminUC.Pending(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list pending items", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pending items retrieved successfully", items)
}

// decide runs one admin decision on the :id path segment
func decide[T any](c echo.Context, action string, fn func(ctx context.Context, id string) (T, error)) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "ID is required")
	}

	record, err := fn(c.Request().Context(), id)
	if err != nil {
		logger.Warn("Admin decision refused",
			logger.String("action", action),
			logger.String("id", id),
			logger.String("admin", fmt.Sprint(c.Get(middleware.ContextUserID))),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, action, record)
}

// ApproveWithdrawal handles withdrawal approval
func (h *AdminHandler) ApproveWithdrawal(c echo.Context) error {
	return decide(c, "Withdrawal approved", h.adminUC.ApproveWithdrawal)
}

// RejectWithdrawal handles withdrawal rejection
func (h *AdminHandler) RejectWithdrawal(c echo.Context) error {
	return decide(c, "Withdrawal rejected", h.adminUC.RejectWithdrawal)
}

// ConfirmDeposit handles deposit confirmation
func (h *AdminHandler) ConfirmDeposit(c echo.Context) error {
	return decide(c, "Deposit confirmed", h.adminUC.ConfirmDeposit)
}

// RejectDeposit handles deposit rejection
func (h *AdminHandler) RejectDeposit(c echo.Context) error {
	return decide(c, "Deposit rejected", h.adminUC.RejectDeposit)
}

// ApproveLoan handles loan approval
func (h *AdminHandler) ApproveLoan(c echo.Context) error {
	return decide(c, "Loan approved", h.adminUC.ApproveLoan)
}

// RejectLoan handles loan rejection
func (h *AdminHandler) RejectLoan(c echo.Context) error {
	return decide(c, "Loan rejected", h.adminUC.RejectLoan)
}

// Sweep runs the reconciliation sweep now
func (h *AdminHandler) Sweep(c echo.Context) error {
	report, err := h.adminUC.Sweep(c.Request().Context())
	if err != nil {
		logger.Error("Manual sweep failed", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sweep finished", report)
}

// Stream pushes a live queue as server-sent events until the client leaves.
// Each event carries the full current list.
func (h *AdminHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	updates := make(chan interface{}, 1)
	push := func(v interface{}) {
		// keep only the newest list
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- v:
		default:
		}
	}

	var (
		unsubscribe remotestore.Unsubscribe
		err         error
	)
	switch models.Collection(c.Param("collection")) {
	case models.CollectionWithdrawals:
		unsubscribe, err = h.adminUC.WatchWithdrawals(ctx, func(v []models.Withdrawal) { push(v) })
	case models.CollectionDeposits:
		unsubscribe, err = h.adminUC.WatchDeposits(ctx, func(v []models.Deposit) { push(v) })
	case models.CollectionLoans:
		unsubscribe, err = h.adminUC.WatchLoans(ctx, func(v []models.LoanApplication) { push(v) })
	case models.CollectionUsers:
		unsubscribe, err = h.adminUC.WatchUsers(ctx, func(v []models.User) { push(v) })
	default:
		return utils.BadRequestResponse(c, "Unknown collection")
	}
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	defer unsubscribe()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case v := <-updates:
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(res, "event: snapshot\ndata: %s\n\n", data); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
