package handler

import (
	"net/http"

	httpmiddleware "clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/response"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for report-related handlers.
type ReportHandler struct {
	uc usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate computes and stores a new report snapshot.
func (h *ReportHandler) Generate(c echo.Context) error {
	var input usecase.GenerateReportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	claims := httpmiddleware.SessionClaims(c)
	if claims == nil {
		return response.Unauthorized(c, "SESSION_MISSING", "Login required")
	}
	input.GeneratedBy = claims.UserID

	report, err := h.uc.Generate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newReportView(report), "Report generated successfully")
}

// List returns every saved report.
func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newReportViews(reports), "")
}
