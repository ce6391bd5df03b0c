package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// RecordPaymentInput defines the data required to record a payment.
type RecordPaymentInput struct {
	AppointmentID string  `json:"appointmentId" validate:"required"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	Method        string  `json:"method" validate:"required"`
}

// PaymentUsecase defines the interface for payment-related business operations.
type PaymentUsecase interface {
	// Record creates a new payment with a generated id and the current
	// timestamp. The appointment reference is not validated.
	Record(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error)

	// ListByAppointment returns the payments linked to one appointment.
	// A blank appointment id yields an empty list.
	ListByAppointment(ctx context.Context, appointmentID string) ([]entity.Payment, error)

	// ListAll returns every payment in insertion order.
	ListAll(ctx context.Context) ([]entity.Payment, error)
}
