package handler

import (
	"net/http"

	httpmiddleware "clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/response"
	"clinic/internal/domain/entity"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AppointmentHandler holds dependencies for appointment-related handlers.
type AppointmentHandler struct {
	uc usecase.AppointmentUsecase
}

// NewAppointmentHandler is the constructor for AppointmentHandler, injected by Fx.
func NewAppointmentHandler(uc usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Book handles the appointment booking request. The acting user comes from
// the session claims, never from the request body.
func (h *AppointmentHandler) Book(c echo.Context) error {
	var input usecase.BookAppointmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	claims := httpmiddleware.SessionClaims(c)
	if claims == nil {
		return response.Unauthorized(c, "SESSION_MISSING", "Login required")
	}
	input.CreatedBy = claims.UserID

	appointment, err := h.uc.Book(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAppointmentView(appointment), "Appointment booked successfully")
}

// List returns appointments, optionally narrowed by doctorId or customerId.
func (h *AppointmentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		appointments []entity.Appointment
		err          error
	)
	switch {
	case c.QueryParam("doctorId") != "":
		appointments, err = h.uc.ListByDoctor(ctx, c.QueryParam("doctorId"))
	case c.QueryParam("customerId") != "":
		appointments, err = h.uc.ListByCustomer(ctx, c.QueryParam("customerId"))
	default:
		appointments, err = h.uc.ListAll(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAppointmentViews(appointments), "")
}

// Get returns one appointment by id.
func (h *AppointmentHandler) Get(c echo.Context) error {
	appointment, err := h.uc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAppointmentView(appointment), "")
}

// updateStatusInput carries the requested target status.
type updateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an appointment to a new status.
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	var input updateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	appointment, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAppointmentView(appointment), "Status updated successfully")
}

// UpdateDetails applies a partial edit to an appointment.
func (h *AppointmentHandler) UpdateDetails(c echo.Context) error {
	var input usecase.UpdateAppointmentDetailsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	appointment, err := h.uc.UpdateDetails(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAppointmentView(appointment), "Appointment updated successfully")
}
