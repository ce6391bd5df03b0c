package entity

import "strings"

// PaymentMethod represents how a payment was made.
type PaymentMethod string

const (
	// MethodCash is a cash payment at the counter.
	MethodCash PaymentMethod = "CASH"
	// MethodCard is a debit or credit card payment.
	MethodCard PaymentMethod = "CARD"
	// MethodEwallet is an electronic wallet payment.
	MethodEwallet PaymentMethod = "EWALLET"
)

// String returns the string representation of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the payment method is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodEwallet:
		return true
	default:
		return false
	}
}

// ParsePaymentMethod converts a string to a PaymentMethod, ignoring case.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	method := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))

	return method, method.IsValid()
}
