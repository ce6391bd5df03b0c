package repository

import (
	"context"
	"errors"

	"clinic/internal/domain/entity"
)

// ErrPaymentNotFound is a domain-specific error returned when a payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the standard operations for payment persistence.
type PaymentRepository interface {
	// ListAll returns every stored payment in insertion order.
	ListAll(ctx context.Context) ([]entity.Payment, error)

	// ListByAppointment returns the payments linked to one appointment,
	// preserving their relative stored order.
	ListByAppointment(ctx context.Context, appointmentID string) ([]entity.Payment, error)

	// FindByID retrieves a single payment by its id, e.g. "P001".
	FindByID(ctx context.Context, id string) (*entity.Payment, error)

	// SaveOrUpdate replaces the stored payment with the same id in place, or
	// appends the payment when no record matches. The existence check runs
	// once, after the full scan, so a miss can never append more than one copy.
	SaveOrUpdate(ctx context.Context, payment *entity.Payment) error
}
