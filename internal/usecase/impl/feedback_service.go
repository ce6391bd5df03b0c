package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedbackIDPrefix is the sequence prefix for feedback identifiers.
const feedbackIDPrefix = "F"

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	idGen        service.IDGenerator
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for feedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	IDGen        service.IDGenerator
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: params.FeedbackRepo,
		idGen:        params.IDGen,
		logger:       params.Logger,
	}
}

func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit creates a new feedback record. The id is generated against the ids
// already stored, so a stale counter file cannot produce a collision.
func (srv *feedbackService) Submit(ctx context.Context, input *usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating.WrapMessage("rating must be 1 to 5")
	}

	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, domainerrors.ErrEmptyComment.WrapMessage("submit feedback")
	}

	fromID := strings.TrimSpace(input.FromUserID)
	toID := strings.TrimSpace(input.ToUserID)
	appointmentID := strings.TrimSpace(input.AppointmentID)
	if fromID == "" || toID == "" || appointmentID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("feedback requires from, to and appointment ids")
	}

	existing, err := srv.feedbackRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback for id generation")
	}

	ids := make([]string, 0, len(existing))
	for _, record := range existing {
		ids = append(ids, record.ID)
	}

	id, err := srv.idGen.NextIDExcluding(feedbackIDPrefix, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate feedback id")
	}

	feedback := &entity.Feedback{
		ID:            id,
		FromUserID:    fromID,
		ToUserID:      toID,
		AppointmentID: appointmentID,
		Rating:        input.Rating,
		Comment:       comment,
		Timestamp:     nowIso(),
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to save feedback")
	}

	srv.log(ctx).Info("Submitted feedback",
		slog.String("feedbackID", feedback.ID),
		slog.String("toUserID", feedback.ToUserID),
		slog.Int("rating", feedback.Rating))

	return feedback, nil
}

// ListForDoctor returns the feedback addressed to one doctor.
// A blank doctor id yields an empty list rather than an error.
func (srv *feedbackService) ListForDoctor(ctx context.Context, doctorUserID string) ([]entity.Feedback, error) {
	if strings.TrimSpace(doctorUserID) == "" {
		return []entity.Feedback{}, nil
	}

	feedback, err := srv.feedbackRepo.ListForDoctor(ctx, doctorUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback for doctor")
	}

	return feedback, nil
}

// ListForCustomer returns the feedback written by one customer.
// A blank customer id yields an empty list rather than an error.
func (srv *feedbackService) ListForCustomer(ctx context.Context, customerUserID string) ([]entity.Feedback, error) {
	if strings.TrimSpace(customerUserID) == "" {
		return []entity.Feedback{}, nil
	}

	feedback, err := srv.feedbackRepo.ListForCustomer(ctx, customerUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback for customer")
	}

	return feedback, nil
}

// ListAll returns every feedback record in insertion order.
func (srv *feedbackService) ListAll(ctx context.Context) ([]entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return feedback, nil
}
