package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/jwt"
	"github.com/piresc/fairpay/internal/pkg/models"
	adminhttp "github.com/piresc/fairpay/services/admin/handler/http"
	"github.com/piresc/fairpay/services/admin/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "fairpay-admin"}

func setupRoutes(t *testing.T) (*echo.Echo, *mocks.MockAdminUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdminUC := mocks.NewMockAdminUC(ctrl)

	h := NewHandler(adminhttp.NewAdminHandler(mockAdminUC), nil, &models.Config{JWT: testJWT})
	e := echo.New()
	h.RegisterRoutes(e)
	return e, mockAdminUC
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, _, err := jwt.GenerateToken("ops@fairpay.ng", role, testJWT)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(e *echo.Echo, method, target, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_AdminOnly(t *testing.T) {
	e, mockAdminUC := setupRoutes(t)

	rec := serve(e, http.MethodGet, "/v1/admin/stats", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodGet, "/v1/admin/stats", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodGet, "/v1/admin/stats", bearer(t, "user"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	mockAdminUC.EXPECT().Stats(gomock.Any()).Return(&models.Stats{}, nil)
	rec = serve(e, http.MethodGet, "/v1/admin/stats", bearer(t, jwt.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_DecisionPaths(t *testing.T) {
	e, mockAdminUC := setupRoutes(t)
	auth := bearer(t, jwt.RoleAdmin)

	mockAdminUC.EXPECT().ApproveWithdrawal(gomock.Any(), "w-1").Return(&models.Withdrawal{ID: "w-1"}, nil)
	mockAdminUC.EXPECT().ConfirmDeposit(gomock.Any(), "d-1").Return(&models.Deposit{ID: "d-1"}, nil)
	mockAdminUC.EXPECT().RejectLoan(gomock.Any(), "l-1").Return(&models.LoanApplication{ID: "l-1"}, nil)

	assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/v1/admin/withdrawals/w-1/approve", auth).Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/v1/admin/deposits/d-1/confirm", auth).Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/v1/admin/loans/l-1/reject", auth).Code)
}

func TestRoutes_LoginIsPublic(t *testing.T) {
	e, mockAdminUC := setupRoutes(t)

	mockAdminUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, models.ErrMissingField)
	rec := serve(e, http.MethodPost, "/v1/admin/session", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
