package repository

import (
	"context"
	"errors"

	"clinic/internal/domain/entity"
)

// ErrAppointmentNotFound is a domain-specific error returned when an appointment is not found.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository defines the standard operations for appointment persistence.
type AppointmentRepository interface {
	// ListAll returns every stored appointment in insertion order.
	ListAll(ctx context.Context) ([]entity.Appointment, error)

	// ListByDoctor returns the appointments assigned to one doctor,
	// preserving their relative stored order.
	ListByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error)

	// ListByCustomer returns the appointments booked by one customer,
	// preserving their relative stored order.
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Appointment, error)

	// FindByID retrieves a single appointment by its id, e.g. "A001".
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)

	// SaveOrUpdate replaces the stored appointment with the same id in place,
	// or appends the appointment when no record matches.
	SaveOrUpdate(ctx context.Context, appointment *entity.Appointment) error
}
