package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "fairpay-test",
	}
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	cfg := getTestConfig()

	tokenString, expiresAt, err := GenerateToken("admin@fairpay.ng", RoleAdmin, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	expected := time.Now().Add(60 * time.Minute).Unix()
	assert.InDelta(t, expected, expiresAt, 5)

	claims, err := ValidateToken(tokenString, cfg)
	require.NoError(t, err)
	assert.Equal(t, "admin@fairpay.ng", claims.Email)
	assert.Equal(t, "admin@fairpay.ng", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "fairpay-test", claims.Issuer)
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	valid, _, err := GenerateToken("admin@fairpay.ng", RoleAdmin, cfg)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.Expiration = -5
	expired, _, err := GenerateToken("admin@fairpay.ng", RoleAdmin, expiredCfg)
	require.NoError(t, err)

	otherIssuerCfg := cfg
	otherIssuerCfg.Issuer = "someone-else"
	otherIssuer, _, err := GenerateToken("admin@fairpay.ng", RoleAdmin, otherIssuerCfg)
	require.NoError(t, err)

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "admin@fairpay.ng", Role: RoleAdmin})
	unsigned, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		cfg     models.JWTConfig
		wantErr bool
	}{
		{"valid", valid, cfg, false},
		{"wrong secret", valid, models.JWTConfig{Secret: "other", Issuer: cfg.Issuer}, true},
		{"expired", expired, cfg, true},
		{"other issuer", otherIssuer, cfg, true},
		{"alg none", unsigned, cfg, true},
		{"garbage", "not.a.token", cfg, true},
		{"empty", "", cfg, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, claims)
		})
	}
}
