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

// appointmentRepository implements repository.AppointmentRepository over
// appointmentData.json.
type appointmentRepository struct {
	store *jsonstore.Collection[model.AppointmentRecord]
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(cfg *config.Config) repository.AppointmentRepository {
	return &appointmentRepository{
		store: jsonstore.NewCollection[model.AppointmentRecord](
			filepath.Join(cfg.Storage.DataPath, appointmentDataFile),
		),
	}
}

func (repo *appointmentRepository) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	return repo.list(func(model.AppointmentRecord) bool { return true })
}

func (repo *appointmentRepository) ListByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	return repo.list(func(record model.AppointmentRecord) bool {
		return strings.EqualFold(record.DoctorID, doctorID)
	})
}

func (repo *appointmentRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.Appointment, error) {
	return repo.list(func(record model.AppointmentRecord) bool {
		return strings.EqualFold(record.CustomerID, customerID)
	})
}

func (repo *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	records, err := repo.store.ReadAll()
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if strings.EqualFold(record.AppointmentID, id) {
			appointment := toAppointmentEntity(record)

			return &appointment, nil
		}
	}

	return nil, repository.ErrAppointmentNotFound
}

func (repo *appointmentRepository) SaveOrUpdate(ctx context.Context, appointment *entity.Appointment) error {
	record := fromAppointmentEntity(appointment)

	return repo.store.Update(func(records []model.AppointmentRecord) ([]model.AppointmentRecord, error) {
		replaced := false
		for i := range records {
			if strings.EqualFold(records[i].AppointmentID, record.AppointmentID) {
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

func (repo *appointmentRepository) list(match func(model.AppointmentRecord) bool) ([]entity.Appointment, error) {
	records, err := repo.store.ReadAll()
	if err != nil {
		return nil, err
	}

	appointments := make([]entity.Appointment, 0, len(records))
	for _, record := range records {
		if match(record) {
			appointments = append(appointments, toAppointmentEntity(record))
		}
	}

	return appointments, nil
}

func toAppointmentEntity(record model.AppointmentRecord) entity.Appointment {
	return entity.Appointment{
		ID:         record.AppointmentID,
		CustomerID: record.CustomerID,
		DoctorID:   record.DoctorID,
		DateTime:   record.DateTimeIso,
		Status:     entity.AppointmentStatus(record.Status),
		Charge:     record.Charge,
		Notes:      record.Notes,
		CreatedBy:  record.CreatedBy,
	}
}

func fromAppointmentEntity(appointment *entity.Appointment) model.AppointmentRecord {
	return model.AppointmentRecord{
		AppointmentID: appointment.ID,
		CustomerID:    appointment.CustomerID,
		DoctorID:      appointment.DoctorID,
		DateTimeIso:   appointment.DateTime,
		Status:        appointment.Status.String(),
		Charge:        appointment.Charge,
		Notes:         appointment.Notes,
		CreatedBy:     appointment.CreatedBy,
	}
}
