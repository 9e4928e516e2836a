// Package faircode gates airtime and loan flows behind a configured action code.
package faircode

import (
	"crypto/subtle"

	"github.com/piresc/fairpay/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCode is used when neither a literal nor a hash is configured
const DefaultCode = "F-187377"

// Validator decides whether a submitted action code is accepted
type Validator interface {
	Validate(code string) bool
}

// LiteralValidator accepts exactly one code
type LiteralValidator struct {
	code []byte
}

// NewLiteralValidator creates a validator for a plain code
func NewLiteralValidator(code string) *LiteralValidator {
	return &LiteralValidator{code: []byte(code)}
}

// Validate compares in constant time. No trimming: the match is exact.
func (v *LiteralValidator) Validate(code string) bool {
	if len(v.code) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(v.code, []byte(code)) == 1
}

// HashValidator accepts codes matching a bcrypt hash
type HashValidator struct {
	hash []byte
}

// NewHashValidator creates a validator for a bcrypt hash
func NewHashValidator(hash string) *HashValidator {
	return &HashValidator{hash: []byte(hash)}
}

// Validate checks code against the stored hash
func (v *HashValidator) Validate(code string) bool {
	return bcrypt.CompareHashAndPassword(v.hash, []byte(code)) == nil
}

// NewValidator builds the validator described by the wallet config.
// A configured hash takes precedence over a literal value.
func NewValidator(cfg models.WalletConfig) Validator {
	if cfg.FaircodeHash != "" {
		return NewHashValidator(cfg.FaircodeHash)
	}
	if cfg.FaircodeValue != "" {
		return NewLiteralValidator(cfg.FaircodeValue)
	}
	return NewLiteralValidator(DefaultCode)
}

// Check returns ErrInvalidFairCode when v rejects code
func Check(v Validator, code string) error {
	if code == "" || !v.Validate(code) {
		return models.ErrInvalidFairCode
	}
	return nil
}

// HashCode returns a bcrypt hash suitable for FAIRCODE_HASH
func HashCode(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
