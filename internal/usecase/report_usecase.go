package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// GenerateReportInput defines the data required to generate a report.
// GeneratedBy records the acting user and is taken from the session claims.
type GenerateReportInput struct {
	Title       string `json:"title" validate:"required"`
	GeneratedBy string `json:"-"`
}

// ReportUsecase defines the interface for report-related business operations.
type ReportUsecase interface {
	// Generate computes a snapshot over the appointment store (total
	// appointment count plus the revenue summed from completed appointments)
	// and persists it with a generated id.
	Generate(ctx context.Context, input *GenerateReportInput) (*entity.Report, error)

	// ListAll returns every saved report in insertion order.
	ListAll(ctx context.Context) ([]entity.Report, error)
}
