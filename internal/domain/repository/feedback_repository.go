package repository

import (
	"context"

	"clinic/internal/domain/entity"
)

// FeedbackRepository defines the standard operations for feedback persistence.
// Feedback records are append-only; there is no update or delete.
type FeedbackRepository interface {
	// ListAll returns every stored feedback record in insertion order.
	ListAll(ctx context.Context) ([]entity.Feedback, error)

	// ListForDoctor returns the feedback addressed to one doctor.
	ListForDoctor(ctx context.Context, doctorUserID string) ([]entity.Feedback, error)

	// ListForCustomer returns the feedback written by one customer.
	ListForCustomer(ctx context.Context, customerUserID string) ([]entity.Feedback, error)

	// Create appends a new feedback record.
	Create(ctx context.Context, feedback *entity.Feedback) error
}
