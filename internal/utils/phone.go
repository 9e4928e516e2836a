package utils

import (
	"fmt"
	"strings"

	"github.com/piresc/fairpay/internal/pkg/models"
)

// Networks are the airtime networks that can be ordered
var Networks = []string{"MTN", "Airtel", "Glo", "9mobile"}

var localPrefixes = []string{"070", "080", "081", "090", "091"}

// NormalizePhone returns a Nigerian mobile number in 0XXXXXXXXXX form
func NormalizePhone(phone string) (string, error) {
	stripped := strings.NewReplacer("-", "", " ", "", "+", "").Replace(phone)

	if strings.HasPrefix(stripped, "234") {
		stripped = "0" + stripped[3:]
	}

	if len(stripped) != 11 {
		return "", fmt.Errorf("phone number %q must have 11 digits: %w", phone, models.ErrMissingField)
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("phone number %q has non-digit characters: %w", phone, models.ErrMissingField)
		}
	}

	for _, p := range localPrefixes {
		if strings.HasPrefix(stripped, p) {
			return stripped, nil
		}
	}
	return "", fmt.Errorf("phone number %q is not a mobile number: %w", phone, models.ErrMissingField)
}

// CanonicalNetwork matches a network name case-insensitively
func CanonicalNetwork(network string) (string, bool) {
	for _, n := range Networks {
		if strings.EqualFold(strings.TrimSpace(network), n) {
			return n, true
		}
	}
	return "", false
}
