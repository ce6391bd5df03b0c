package handler

import (
	"net/http"

	"clinic/internal/delivery/http/response"
	"clinic/internal/domain/entity"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Record handles the payment recording request.
func (h *PaymentHandler) Record(c echo.Context) error {
	var input usecase.RecordPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	payment, err := h.uc.Record(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPaymentView(payment), "Payment recorded successfully")
}

// List returns payments, optionally narrowed by appointmentId.
func (h *PaymentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		payments []entity.Payment
		err      error
	)
	if appointmentID := c.QueryParam("appointmentId"); appointmentID != "" {
		payments, err = h.uc.ListByAppointment(ctx, appointmentID)
	} else {
		payments, err = h.uc.ListAll(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPaymentViews(payments), "")
}
