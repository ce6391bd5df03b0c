package jsonfile

import (
	"context"
	"path/filepath"
	"strings"

	"clinic/config"
	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/jsonstore"
	"clinic/internal/infra/persistence/model"
)

// feedbackRepository implements repository.FeedbackRepository over feedbackData.json.
type feedbackRepository struct {
	store *jsonstore.Collection[model.FeedbackRecord]
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(cfg *config.Config) repository.FeedbackRepository {
	return &feedbackRepository{
		store: jsonstore.NewCollection[model.FeedbackRecord](
			filepath.Join(cfg.Storage.DataPath, feedbackDataFile),
		),
	}
}

func (repo *feedbackRepository) ListAll(ctx context.Context) ([]entity.Feedback, error) {
	return repo.list(func(model.FeedbackRecord) bool { return true })
}

func (repo *feedbackRepository) ListForDoctor(ctx context.Context, doctorUserID string) ([]entity.Feedback, error) {
	return repo.list(func(record model.FeedbackRecord) bool {
		return strings.EqualFold(record.ToUserID, doctorUserID)
	})
}

func (repo *feedbackRepository) ListForCustomer(ctx context.Context, customerUserID string) ([]entity.Feedback, error) {
	return repo.list(func(record model.FeedbackRecord) bool {
		return strings.EqualFold(record.FromUserID, customerUserID)
	})
}

func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	record := fromFeedbackEntity(feedback)

	return repo.store.Update(func(records []model.FeedbackRecord) ([]model.FeedbackRecord, error) {
		return append(records, record), nil
	})
}

func (repo *feedbackRepository) list(match func(model.FeedbackRecord) bool) ([]entity.Feedback, error) {
	records, err := repo.store.ReadAll()
	if err != nil {
		return nil, err
	}

	feedback := make([]entity.Feedback, 0, len(records))
	for _, record := range records {
		if match(record) {
			feedback = append(feedback, toFeedbackEntity(record))
		}
	}

	return feedback, nil
}

func toFeedbackEntity(record model.FeedbackRecord) entity.Feedback {
	return entity.Feedback{
		ID:            record.FeedbackID,
		FromUserID:    record.FromUserID,
		ToUserID:      record.ToUserID,
		AppointmentID: record.AppointmentID,
		Rating:        record.Rating,
		Comment:       record.Comment,
		Timestamp:     record.TimestampIso,
	}
}

func fromFeedbackEntity(feedback *entity.Feedback) model.FeedbackRecord {
	return model.FeedbackRecord{
		FeedbackID:    feedback.ID,
		FromUserID:    feedback.FromUserID,
		ToUserID:      feedback.ToUserID,
		AppointmentID: feedback.AppointmentID,
		Rating:        feedback.Rating,
		Comment:       feedback.Comment,
		TimestampIso:  feedback.Timestamp,
	}
}
