package handler

import (
	"net/http"

	httpmiddleware "clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/response"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for feedback-related handlers.
type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// Submit handles the feedback submission request. The author is always the
// session user.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var input usecase.SubmitFeedbackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	claims := httpmiddleware.SessionClaims(c)
	if claims == nil {
		return response.Unauthorized(c, "SESSION_MISSING", "Login required")
	}
	input.FromUserID = claims.UserID

	feedback, err := h.uc.Submit(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newFeedbackView(feedback), "Feedback submitted successfully")
}

// ListAll returns every feedback record.
func (h *FeedbackHandler) ListAll(c echo.Context) error {
	feedback, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFeedbackViews(feedback), "")
}

// ListForDoctor returns the feedback addressed to one doctor.
func (h *FeedbackHandler) ListForDoctor(c echo.Context) error {
	feedback, err := h.uc.ListForDoctor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFeedbackViews(feedback), "")
}

// ListForCustomer returns the feedback written by one customer.
func (h *FeedbackHandler) ListForCustomer(c echo.Context) error {
	feedback, err := h.uc.ListForCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFeedbackViews(feedback), "")
}
