package repository

import (
	"context"

	"clinic/internal/domain/entity"
)

// ReportRepository defines the standard operations for report persistence.
// Report records are append-only; there is no update or delete.
type ReportRepository interface {
	// ListAll returns every stored report in insertion order.
	ListAll(ctx context.Context) ([]entity.Report, error)

	// Create appends a new report record.
	Create(ctx context.Context, report *entity.Report) error
}
