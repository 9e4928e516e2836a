package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ada@example.com", true},
		{"ada.lovelace+pay@mail.example.ng", true},
		{"", false},
		{"ada@", false},
		{".ada@example.com", false},
		{"ada@example", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "ad*@example.com", MaskEmail("ada@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "******6789", MaskAccountNumber("0123456789"))
	assert.Equal(t, "123", MaskAccountNumber("123"))
}
