package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// BookAppointmentInput defines the data required to book an appointment.
// CreatedBy records the acting user and is taken from the session claims,
// never from the request body.
type BookAppointmentInput struct {
	CustomerID string  `json:"customerId" validate:"required"`
	DoctorID   string  `json:"doctorId" validate:"required"`
	DateTime   string  `json:"dateTime" validate:"required"`
	Charge     float64 `json:"charge" validate:"gte=0"`
	Notes      string  `json:"notes"`
	CreatedBy  string  `json:"-"`
}

// UpdateAppointmentDetailsInput carries optional appointment edits.
// Empty strings and nil values are left unchanged.
type UpdateAppointmentDetailsInput struct {
	DateTime string   `json:"dateTime"`
	Notes    string   `json:"notes"`
	Charge   *float64 `json:"charge" validate:"omitempty,gte=0"`
}

// AppointmentUsecase defines the interface for appointment-related business operations.
type AppointmentUsecase interface {
	// Book creates a new PENDING appointment with a generated id.
	// Customer and doctor references are not validated against the user
	// store; dangling references are tolerated by readers.
	Book(ctx context.Context, input *BookAppointmentInput) (*entity.Appointment, error)

	// UpdateStatus moves the appointment to the given status. Any known
	// status value is accepted from any other; there is no transition graph.
	UpdateStatus(ctx context.Context, id, status string) (*entity.Appointment, error)

	// UpdateDetails applies the non-empty fields of input to the appointment.
	UpdateDetails(ctx context.Context, id string, input *UpdateAppointmentDetailsInput) (*entity.Appointment, error)

	// FindByID returns one appointment by id.
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)

	// ListAll returns every appointment in insertion order.
	ListAll(ctx context.Context) ([]entity.Appointment, error)

	// ListByDoctor returns the appointments for one doctor.
	// A blank doctor id yields an empty list.
	ListByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error)

	// ListByCustomer returns the appointments for one customer.
	// A blank customer id yields an empty list.
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Appointment, error)
}
