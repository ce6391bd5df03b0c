package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// SubmitFeedbackInput defines the data required to submit feedback.
// FromUserID records the acting user and is taken from the session claims.
type SubmitFeedbackInput struct {
	FromUserID    string `json:"-"`
	ToUserID      string `json:"toUserId" validate:"required"`
	AppointmentID string `json:"appointmentId" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"required"`
}

// FeedbackUsecase defines the interface for feedback-related business operations.
type FeedbackUsecase interface {
	// Submit creates a new feedback record. The rating must be 1 to 5
	// inclusive and the comment must not be blank after trimming. The id is
	// generated against the set of ids already stored, so a damaged counter
	// file can never produce a colliding feedback id.
	Submit(ctx context.Context, input *SubmitFeedbackInput) (*entity.Feedback, error)

	// ListForDoctor returns the feedback addressed to one doctor.
	// A blank doctor id yields an empty list.
	ListForDoctor(ctx context.Context, doctorUserID string) ([]entity.Feedback, error)

	// ListForCustomer returns the feedback written by one customer.
	// A blank customer id yields an empty list.
	ListForCustomer(ctx context.Context, customerUserID string) ([]entity.Feedback, error)

	// ListAll returns every feedback record in insertion order.
	ListAll(ctx context.Context) ([]entity.Feedback, error)
}
