package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/piresc/fairpay/services/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestEnterSession_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	c, rec := newContext(http.MethodPost, "/v1/session", `{"email":"ada@fairpay.ng","name":"Ada"}`)

	mockWalletUC.EXPECT().
		EnterSession(gomock.Any(), models.SessionRequest{Email: "ada@fairpay.ng", Name: "Ada"}).
		Return(&models.Session{
			User:         &models.User{ID: "u-1", Email: "ada@fairpay.ng", Name: "Ada"},
			ReferralCode: "FP0A1B2C",
			Created:      true,
		}, nil)

	err := h.EnterSession(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	response := decode(t, rec)
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "FP0A1B2C", data["referral_code"])
}

func TestEnterSession_Returning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	c, rec := newContext(http.MethodPost, "/v1/session", `{"email":"ada@fairpay.ng"}`)
	mockWalletUC.EXPECT().EnterSession(gomock.Any(), gomock.Any()).
		Return(&models.Session{User: &models.User{ID: "u-1"}}, nil)

	assert.NoError(t, h.EnterSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome back", decode(t, rec)["message"])
}

func TestEnterSession_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletUC(ctrl))
	c, rec := newContext(http.MethodPost, "/v1/session", `{invalid_json}`)

	assert.NoError(t, h.EnterSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	response := decode(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Invalid request payload", response["error"])
}

func TestEnterSession_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	c, rec := newContext(http.MethodPost, "/v1/session", `{"email":"nope"}`)
	mockWalletUC.EXPECT().EnterSession(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrMissingField)

	assert.NoError(t, h.EnterSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	c, rec := newContext(http.MethodDelete, "/v1/session", "")
	mockWalletUC.EXPECT().LeaveSession(gomock.Any()).Return(nil)

	assert.NoError(t, h.LeaveSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	c, rec := newContext(http.MethodGet, "/", "")
	c.SetPath("/v1/wallet/:email")
	c.SetParamNames("email")
	c.SetParamValues("ada%40fairpay.ng")

	mockWalletUC.EXPECT().Ledger(gomock.Any(), "ada@fairpay.ng").Return(models.LocalLedger{
		Balance:      2500,
		Transactions: []models.LocalTransaction{{ID: 1, Type: models.DirectionCredit, Amount: 2500, Description: "Bonus claimed"}},
	}, nil)

	assert.NoError(t, h.GetLedger(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(2500), data["balance"])
}

func TestGetLedger_MissingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletUC(ctrl))
	c, rec := newContext(http.MethodGet, "/", "")

	assert.NoError(t, h.GetLedger(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSummary_InternalErrorHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("email")
	c.SetParamValues("ada@fairpay.ng")
	mockWalletUC.EXPECT().Summary(gomock.Any(), "ada@fairpay.ng").
		Return(nil, errors.New("dial tcp 10.0.0.3:6379: i/o timeout"))

	assert.NoError(t, h.GetSummary(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["error"])
}

func TestClaimBonus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "credited", body: `{"amount":5000}`, wantStatus: http.StatusOK},
		{name: "invalid amount", body: `{"amount":0}`, err: models.ErrInvalidAmount, wantStatus: http.StatusBadRequest},
		{name: "unknown user", body: `{"amount":5000}`, err: models.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockWalletUC := mocks.NewMockWalletUC(ctrl)
			h := NewWalletHandler(mockWalletUC)

			c, rec := newContext(http.MethodPost, "/", tt.body)
			c.SetParamNames("email")
			c.SetParamValues("ada@fairpay.ng")

			mockWalletUC.EXPECT().ClaimBonus(gomock.Any(), "ada@fairpay.ng", gomock.Any()).
				Return(models.LocalLedger{Balance: 5000}, tt.err)

			assert.NoError(t, h.ClaimBonus(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestClaimMonthlyBonus_AlreadyClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	c, rec := newContext(http.MethodPost, "/", "")
	c.SetParamNames("email", "month")
	c.SetParamValues("ada@fairpay.ng", "january")
	mockWalletUC.EXPECT().ClaimMonthlyBonus(gomock.Any(), "ada@fairpay.ng", "january").
		Return(models.LocalLedger{}, models.ErrAlreadyClaimed)

	assert.NoError(t, h.ClaimMonthlyBonus(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestClaimReferralBonuses_NonePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	c, rec := newContext(http.MethodPost, "/", "")
	c.SetParamNames("email")
	c.SetParamValues("ada@fairpay.ng")
	mockWalletUC.EXPECT().ClaimReferralBonuses(gomock.Any(), "ada@fairpay.ng").
		Return(models.LocalLedger{}, models.ErrNotAvailable)

	assert.NoError(t, h.ClaimReferralBonuses(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRequestWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	body := `{"email":"ada@fairpay.ng","amount":1500,"bank_name":"GTBank","account_number":"0123456789","account_name":"Ada Obi"}`
	c, rec := newContext(http.MethodPost, "/v1/withdrawals", body)

	mockWalletUC.EXPECT().
		RequestWithdrawal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req models.WithdrawalRequest) (*models.WithdrawalReceipt, error) {
			assert.Equal(t, int64(1500), req.Amount)
			assert.Equal(t, "GTBank", req.BankName)
			assert.Equal(t, "0123456789", req.AccountNumber)
			return &models.WithdrawalReceipt{
				Withdrawal: &models.Withdrawal{ID: "w-1", Amount: 1500, Status: models.WithdrawalStatusPending},
				Link:       &models.PaymentLink{URL: "https://paystack.shop/pay/i0nj8tjxcp"},
			}, nil
		})

	assert.NoError(t, h.RequestWithdrawal(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	link := data["validation_link"].(map[string]interface{})
	assert.Equal(t, "https://paystack.shop/pay/i0nj8tjxcp", link["url"])
}

func TestRequestWithdrawal_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	c, rec := newContext(http.MethodPost, "/v1/withdrawals", `{"email":"ada@fairpay.ng","amount":999999}`)
	mockWalletUC.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrInsufficientBalance)

	assert.NoError(t, h.RequestWithdrawal(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddMoney_AndBuyFaircode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	receipt := &models.DepositReceipt{
		Deposit: &models.Deposit{ID: "d-1", Amount: 5000, Status: models.DepositStatusPending},
		Link:    &models.PaymentLink{URL: "https://paystack.shop/pay/fairpay"},
	}

	c, rec := newContext(http.MethodPost, "/v1/deposits", `{"email":"ada@fairpay.ng","amount":5000,"type":"Deposit"}`)
	mockWalletUC.EXPECT().AddMoney(gomock.Any(), models.DepositRequest{
		Email: "ada@fairpay.ng", Amount: 5000, Category: models.DepositCategoryDeposit,
	}).Return(receipt, nil)
	assert.NoError(t, h.AddMoney(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newContext(http.MethodPost, "/v1/faircodes", `{"email":"ada@fairpay.ng","amount":5000}`)
	mockWalletUC.EXPECT().BuyFaircode(gomock.Any(), gomock.Any()).Return(receipt, nil)
	assert.NoError(t, h.BuyFaircode(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBuyAirtime_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	body := `{"email":"ada@fairpay.ng","phone_number":"08031234567","network":"MTN","amount":500,"faircode":"F-000000"}`
	c, rec := newContext(http.MethodPost, "/v1/airtime", body)
	mockWalletUC.EXPECT().BuyAirtime(gomock.Any(), gomock.Any()).Return(nil, models.ErrInvalidFairCode)

	assert.NoError(t, h.BuyAirtime(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBuyAirtime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	body := `{"email":"ada@fairpay.ng","phone_number":"08031234567","network":"MTN","amount":500,"faircode":"F-187377"}`
	c, rec := newContext(http.MethodPost, "/v1/airtime", body)
	mockWalletUC.EXPECT().BuyAirtime(gomock.Any(), gomock.Any()).
		Return(&models.PaymentLink{URL: "https://wa.me/2348107516059?text=Hello"}, nil)

	assert.NoError(t, h.BuyAirtime(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplyLoan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	body := `{"email":"ada@fairpay.ng","amount":50000,"purpose":"Rent","duration":6,"employment_status":"employed","monthly_income":200000,"faircode":"F-187377"}`
	c, rec := newContext(http.MethodPost, "/v1/loans", body)
	mockWalletUC.EXPECT().
		ApplyLoan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req models.LoanRequest) (*models.LoanApplication, error) {
			assert.Equal(t, 6, req.Duration)
			assert.Equal(t, int64(200000), req.MonthlyIncome)
			assert.Equal(t, "F-187377", req.FairCode)
			return &models.LoanApplication{ID: "l-1", Amount: req.Amount, Status: models.LoanStatusPending}, nil
		})

	assert.NoError(t, h.ApplyLoan(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSync_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)

	c, rec := newContext(http.MethodPost, "/", "")
	c.SetParamNames("email")
	c.SetParamValues("ghost@fairpay.ng")
	mockWalletUC.EXPECT().SyncFromRemote(gomock.Any(), "ghost@fairpay.ng").
		Return(models.LocalLedger{}, models.ErrNotFound)

	assert.NoError(t, h.Sync(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfile_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletUC := mocks.NewMockWalletUC(ctrl)
	h := NewWalletHandler(mockWalletUC)
	profile := models.UserProfile{Name: "Ada Obi", PhoneNumber: "08031234567"}

	c, rec := newContext(http.MethodPut, "/", `{"name":"Ada Obi","phone_number":"08031234567"}`)
	c.SetParamNames("email")
	c.SetParamValues("ada@fairpay.ng")
	mockWalletUC.EXPECT().UpdateProfile(gomock.Any(), "ada@fairpay.ng", profile).Return(profile, nil)
	assert.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/", "")
	c.SetParamNames("email")
	c.SetParamValues("ada@fairpay.ng")
	mockWalletUC.EXPECT().Profile(gomock.Any(), "ada@fairpay.ng").Return(profile, nil)
	assert.NoError(t, h.GetProfile(c))
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "Ada Obi", data["name"])
}
