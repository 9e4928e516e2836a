package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)

// NormalizeEmail lower-cases and trims an email so it can be used as a storage key
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// MaskEmail masks the local part of an email address for logs
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	if len(local) > 2 {
		local = local[:2] + strings.Repeat("*", len(local)-2)
	}
	return local + "@" + parts[1]
}

// MaskAccountNumber keeps only the last 4 digits of a bank account number
func MaskAccountNumber(account string) string {
	if len(account) <= 4 {
		return account
	}
	return strings.Repeat("*", len(account)-4) + account[len(account)-4:]
}
