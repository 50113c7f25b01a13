package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var PaymentMethods = []string{"cash", "card", "bkash", "nagad", "bank"}

// ProcessPaymentStub simulates a successful gateway charge and returns the
// transaction reference.
func ProcessPaymentStub(amount float64, method, bookingRef string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("invalid payment amount %.2f", amount)
	}
	known := false
	for _, m := range PaymentMethods {
		if m == method {
			known = true
			break
		}
	}
	if !known {
		return "", fmt.Errorf("unsupported payment method %q", method)
	}
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	return fmt.Sprintf("PAY-%s-%s", bookingRef, id), nil
}
