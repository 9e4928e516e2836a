package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	jwtpkg "github.com/piresc/fairpay/internal/pkg/jwt"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the console credentials and issues an admin token
func (uc *adminUC) Login(ctx context.Context, req models.AdminLoginRequest) (*models.AdminSession, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password: %w", models.ErrMissingField)
	}

	want := strings.ToLower(strings.TrimSpace(uc.cfg.Admin.Email))
	if want == "" || uc.cfg.Admin.PasswordHash == "" {
		logger.Warn("Admin login attempted but no admin account is configured")
		return nil, models.ErrInvalidCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(want)) == 1
	// compared even when the email is wrong
	pwErr := bcrypt.CompareHashAndPassword([]byte(uc.cfg.Admin.PasswordHash), []byte(req.Password))
	if !emailOK || pwErr != nil {
		logger.Warn("Admin login failed", logger.String("email", email))
		return nil, models.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(email, jwtpkg.RoleAdmin, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to issue admin token: %w", err)
	}

	logger.Info("Admin signed in", logger.String("email", email))
	return &models.AdminSession{Token: token, ExpiresAt: expiresAt}, nil
}
