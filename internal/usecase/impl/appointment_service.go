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

// appointmentIDPrefix is the sequence prefix for appointment identifiers.
const appointmentIDPrefix = "A"

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	idGen           service.IDGenerator
	logger          *slog.Logger
}

// AppointmentServiceParams holds dependencies for appointmentService, injected by Fx.
type AppointmentServiceParams struct {
	fx.In

	AppointmentRepo repository.AppointmentRepository
	IDGen           service.IDGenerator
	Logger          *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(params AppointmentServiceParams) usecase.AppointmentUsecase {
	return &appointmentService{
		appointmentRepo: params.AppointmentRepo,
		idGen:           params.IDGen,
		logger:          params.Logger,
	}
}

func (srv *appointmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Book creates a new appointment in PENDING status with a generated id.
// Customer and doctor ids are recorded as given; they are not checked against
// the user store.
func (srv *appointmentService) Book(ctx context.Context, input *usecase.BookAppointmentInput) (*entity.Appointment, error) {
	if input.Charge < 0 {
		return nil, domainerrors.ErrNegativeCharge.WrapMessage("book appointment")
	}

	if _, err := parseIsoDateTime(input.DateTime); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid dateTime " + input.DateTime)
	}

	id, err := srv.idGen.NextID(appointmentIDPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate appointment id")
	}

	appointment := &entity.Appointment{
		ID:         id,
		CustomerID: strings.TrimSpace(input.CustomerID),
		DoctorID:   strings.TrimSpace(input.DoctorID),
		DateTime:   input.DateTime,
		Status:     entity.StatusPending,
		Charge:     input.Charge,
		Notes:      input.Notes,
		CreatedBy:  input.CreatedBy,
	}

	if err := srv.appointmentRepo.SaveOrUpdate(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to save appointment")
	}

	srv.log(ctx).Info("Booked appointment",
		slog.String("appointmentID", appointment.ID),
		slog.String("customerID", appointment.CustomerID),
		slog.String("doctorID", appointment.DoctorID))

	return appointment, nil
}

// UpdateStatus moves the appointment to the given status. Any known status is
// reachable from any other; there is no transition graph.
func (srv *appointmentService) UpdateStatus(ctx context.Context, id, status string) (*entity.Appointment, error) {
	parsed, ok := entity.ParseAppointmentStatus(status)
	if !ok {
		return nil, domainerrors.ErrInvalidStatus.WrapMessage("unknown status " + status)
	}

	appointment, err := srv.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment.Status = parsed
	if err := srv.appointmentRepo.SaveOrUpdate(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to save appointment status")
	}

	srv.log(ctx).Info("Updated appointment status",
		slog.String("appointmentID", appointment.ID),
		slog.String("status", parsed.String()))

	return appointment, nil
}

// UpdateDetails applies the non-empty fields of input to the appointment.
func (srv *appointmentService) UpdateDetails(ctx context.Context, id string, input *usecase.UpdateAppointmentDetailsInput) (*entity.Appointment, error) {
	appointment, err := srv.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DateTime != "" {
		if _, err := parseIsoDateTime(input.DateTime); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid dateTime " + input.DateTime)
		}
		appointment.DateTime = input.DateTime
	}
	if input.Notes != "" {
		appointment.Notes = input.Notes
	}
	if input.Charge != nil {
		if *input.Charge < 0 {
			return nil, domainerrors.ErrNegativeCharge.WrapMessage("update appointment")
		}
		appointment.Charge = *input.Charge
	}

	if err := srv.appointmentRepo.SaveOrUpdate(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to save appointment details")
	}

	return appointment, nil
}

// FindByID returns one appointment by id.
func (srv *appointmentService) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	return srv.findExisting(ctx, id)
}

// ListAll returns every appointment in insertion order.
func (srv *appointmentService) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return appointments, nil
}

// ListByDoctor returns the appointments assigned to one doctor.
// A blank doctor id yields an empty list rather than an error.
func (srv *appointmentService) ListByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	if strings.TrimSpace(doctorID) == "" {
		return []entity.Appointment{}, nil
	}

	appointments, err := srv.appointmentRepo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments by doctor")
	}

	return appointments, nil
}

// ListByCustomer returns the appointments booked by one customer.
// A blank customer id yields an empty list rather than an error.
func (srv *appointmentService) ListByCustomer(ctx context.Context, customerID string) ([]entity.Appointment, error) {
	if strings.TrimSpace(customerID) == "" {
		return []entity.Appointment{}, nil
	}

	appointments, err := srv.appointmentRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments by customer")
	}

	return appointments, nil
}

func (srv *appointmentService) findExisting(ctx context.Context, id string) (*entity.Appointment, error) {
	appointment, err := srv.appointmentRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAppointmentNotFound) {
		return nil, domainerrors.ErrAppointmentNotFound.WrapMessage("appointment " + id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up appointment")
	}

	return appointment, nil
}
