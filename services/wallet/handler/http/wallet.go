package http

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/internal/utils"
	"github.com/piresc/fairpay/services/wallet"
)

// WalletHandler handles HTTP requests for the wallet dashboard
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{
		walletUC: walletUC,
	}
}

// emailParam reads the :email path segment
func emailParam(c echo.Context) string {
	raw := c.Param("email")
	if email, err := url.PathUnescape(raw); err == nil {
		return email
	}
	return raw
}

// EnterSession handles sign-in by email
func (h *WalletHandler) EnterSession(c echo.Context) error {
	var req models.SessionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for session",
			logger.Err(err),
			logger.String("endpoint", "EnterSession"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	session, err := h.walletUC.EnterSession(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to enter session",
			logger.Err(err),
			logger.String("email", req.Email),
		)
		return utils.DomainErrorResponse(c, err)
	}

	if session.Created {
		return utils.SuccessResponse(c, http.StatusCreated, "Account created", session)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Welcome back", session)
}

// LeaveSession handles sign-out
func (h *WalletHandler) LeaveSession(c echo.Context) error {
	if err := h.walletUC.LeaveSession(c.Request().Context()); err != nil {
		logger.Error("Failed to leave session", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Signed out", nil)
}

// GetLedger returns the cached balance and transactions
func (h *WalletHandler) GetLedger(c echo.Context) error {
	email := emailParam(c)
	if email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	l, err := h.walletUC.Ledger(c.Request().Context(), email)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ledger retrieved successfully", l)
}

// GetSummary returns totals and the most recent transactions
func (h *WalletHandler) GetSummary(c echo.Context) error {
	email := emailParam(c)
	if email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	summary, err := h.walletUC.Summary(c.Request().Context(), email)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Summary retrieved successfully", summary)
}

// GetProfile returns the saved profile
func (h *WalletHandler) GetProfile(c echo.Context) error {
	profile, err := h.walletUC.Profile(c.Request().Context(), emailParam(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile replaces the saved profile
func (h *WalletHandler) UpdateProfile(c echo.Context) error {
	var profile models.UserProfile
	if err := c.Bind(&profile); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	saved, err := h.walletUC.UpdateProfile(c.Request().Context(), emailParam(c), profile)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", saved)
}

// ClaimBonus credits a one-off bonus
func (h *WalletHandler) ClaimBonus(c echo.Context) error {
	var req models.BonusClaimRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	email := emailParam(c)
	l, err := h.walletUC.ClaimBonus(c.Request().Context(), email, req.Amount)
	if err != nil {
		logger.Warn("Bonus claim refused",
			logger.String("email", email),
			logger.Int64("amount", req.Amount),
			logger.Err(err),
		)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bonus claimed", l)
}

// GetMonthlyBonuses returns the yearly bonus calendar
func (h *WalletHandler) GetMonthlyBonuses(c echo.Context) error {
	bonuses, err := h.walletUC.MonthlyBonuses(c.Request().Context(), emailParam(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Monthly bonuses retrieved successfully", bonuses)
}

// ClaimMonthlyBonus credits one month of the calendar
func (h *WalletHandler) ClaimMonthlyBonus(c echo.Context) error {
	l, err := h.walletUC.ClaimMonthlyBonus(c.Request().Context(), emailParam(c), c.Param("month"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Monthly bonus claimed", l)
}

// GetReferrals returns the referral code and counters
func (h *WalletHandler) GetReferrals(c echo.Context) error {
	summary, err := h.walletUC.ReferralSummary(c.Request().Context(), emailParam(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Referrals retrieved successfully", summary)
}

// ClaimReferralBonuses pays out every pending referral
func (h *WalletHandler) ClaimReferralBonuses(c echo.Context) error {
	l, err := h.walletUC.ClaimReferralBonuses(c.Request().Context(), emailParam(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Referral bonuses claimed", l)
}

// Sync replaces the cached ledger with the remote one
func (h *WalletHandler) Sync(c echo.Context) error {
	email := emailParam(c)
	l, err := h.walletUC.SyncFromRemote(c.Request().Context(), email)
	if err != nil {
		logger.Error("Failed to sync ledger",
			logger.String("email", email),
			logger.Err(err),
		)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ledger synced", l)
}

// RequestWithdrawal holds funds for an admin-approved payout
func (h *WalletHandler) RequestWithdrawal(c echo.Context) error {
	var req models.WithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	receipt, err := h.walletUC.RequestWithdrawal(c.Request().Context(), req)
	if err != nil {
		logger.Warn("Withdrawal refused",
			logger.String("email", req.Email),
			logger.Int64("amount", req.Amount),
			logger.Err(err),
		)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Withdrawal submitted for review", receipt)
}

// AddMoney records a deposit claim and returns the payment page
func (h *WalletHandler) AddMoney(c echo.Context) error {
	var req models.DepositRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	receipt, err := h.walletUC.AddMoney(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Deposit submitted for review", receipt)
}

// BuyFaircode records a FairCode purchase claim
func (h *WalletHandler) BuyFaircode(c echo.Context) error {
	var req models.DepositRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	receipt, err := h.walletUC.BuyFaircode(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "FairCode purchase submitted for review", receipt)
}

// BuyAirtime returns the support chat link for a gated airtime order
func (h *WalletHandler) BuyAirtime(c echo.Context) error {
	var req models.AirtimeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	link, err := h.walletUC.BuyAirtime(c.Request().Context(), req)
	if err != nil {
		logger.Warn("Airtime order refused",
			logger.String("email", req.Email),
			logger.Err(err),
		)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Airtime order ready", link)
}

// ApplyLoan submits a gated loan application
func (h *WalletHandler) ApplyLoan(c echo.Context) error {
	var req models.LoanRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	loan, err := h.walletUC.ApplyLoan(c.Request().Context(), req)
	if err != nil {
		logger.Warn("Loan application refused",
			logger.String("email", req.Email),
			logger.Err(err),
		)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Loan application submitted", loan)
}
