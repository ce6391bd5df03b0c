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

// paymentIDPrefix is the sequence prefix for payment identifiers.
const paymentIDPrefix = "P"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	paymentRepo repository.PaymentRepository
	idGen       service.IDGenerator
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	IDGen       service.IDGenerator
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: params.PaymentRepo,
		idGen:       params.IDGen,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record creates a new payment with a generated id and the current timestamp.
// The referenced appointment is not checked; a payment may point at an
// appointment id that no longer resolves.
func (srv *paymentService) Record(ctx context.Context, input *usecase.RecordPaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount.WrapMessage("record payment")
	}

	method, ok := entity.ParsePaymentMethod(input.Method)
	if !ok {
		return nil, domainerrors.ErrInvalidPaymentMethod.WrapMessage("unknown method " + input.Method)
	}

	id, err := srv.idGen.NextID(paymentIDPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment id")
	}

	payment := &entity.Payment{
		ID:            id,
		AppointmentID: strings.TrimSpace(input.AppointmentID),
		Amount:        input.Amount,
		Method:        method,
		Timestamp:     nowIso(),
	}

	if err := srv.paymentRepo.SaveOrUpdate(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to save payment")
	}

	srv.log(ctx).Info("Recorded payment",
		slog.String("paymentID", payment.ID),
		slog.String("appointmentID", payment.AppointmentID),
		slog.Float64("amount", payment.Amount))

	return payment, nil
}

// ListByAppointment returns the payments linked to one appointment.
// A blank appointment id yields an empty list rather than an error.
func (srv *paymentService) ListByAppointment(ctx context.Context, appointmentID string) ([]entity.Payment, error) {
	if strings.TrimSpace(appointmentID) == "" {
		return []entity.Payment{}, nil
	}

	payments, err := srv.paymentRepo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by appointment")
	}

	return payments, nil
}

// ListAll returns every payment in insertion order.
func (srv *paymentService) ListAll(ctx context.Context) ([]entity.Payment, error) {
	payments, err := srv.paymentRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}
