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

// paymentRepository implements repository.PaymentRepository over paymentData.json.
type paymentRepository struct {
	store *jsonstore.Collection[model.PaymentRecord]
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(cfg *config.Config) repository.PaymentRepository {
	return &paymentRepository{
		store: jsonstore.NewCollection[model.PaymentRecord](
			filepath.Join(cfg.Storage.DataPath, paymentDataFile),
		),
	}
}

func (repo *paymentRepository) ListAll(ctx context.Context) ([]entity.Payment, error) {
	return repo.list(func(model.PaymentRecord) bool { return true })
}

func (repo *paymentRepository) ListByAppointment(ctx context.Context, appointmentID string) ([]entity.Payment, error) {
	return repo.list(func(record model.PaymentRecord) bool {
		return strings.EqualFold(record.AppointmentID, appointmentID)
	})
}

func (repo *paymentRepository) FindByID(ctx context.Context, id string) (*entity.Payment, error) {
	records, err := repo.store.ReadAll()
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if strings.EqualFold(record.PaymentID, id) {
			payment := toPaymentEntity(record)

			return &payment, nil
		}
	}

	return nil, repository.ErrPaymentNotFound
}

// SaveOrUpdate replaces the record with a matching id in place. The append
// decision is taken once, after the full scan; a missing id appends exactly
// one record no matter where the scan would have matched.
func (repo *paymentRepository) SaveOrUpdate(ctx context.Context, payment *entity.Payment) error {
	record := fromPaymentEntity(payment)

	return repo.store.Update(func(records []model.PaymentRecord) ([]model.PaymentRecord, error) {
		replaced := false
		for i := range records {
			if strings.EqualFold(records[i].PaymentID, record.PaymentID) {
				records[i] = record
				replaced = true
			}
		}
		if !replaced {
			records = append(records, record)
		}

		return records, nil
	})
}

func (repo *paymentRepository) list(match func(model.PaymentRecord) bool) ([]entity.Payment, error) {
	records, err := repo.store.ReadAll()
	if err != nil {
		return nil, err
	}

	payments := make([]entity.Payment, 0, len(records))
	for _, record := range records {
		if match(record) {
			payments = append(payments, toPaymentEntity(record))
		}
	}

	return payments, nil
}

func toPaymentEntity(record model.PaymentRecord) entity.Payment {
	return entity.Payment{
		ID:            record.PaymentID,
		AppointmentID: record.AppointmentID,
		Amount:        record.Amount,
		Method:        entity.PaymentMethod(record.Method),
		Timestamp:     record.TimestampIso,
	}
}

func fromPaymentEntity(payment *entity.Payment) model.PaymentRecord {
	return model.PaymentRecord{
		PaymentID:     payment.ID,
		AppointmentID: payment.AppointmentID,
		Amount:        payment.Amount,
		Method:        payment.Method.String(),
		TimestampIso:  payment.Timestamp,
	}
}
