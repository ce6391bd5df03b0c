package jsonfile

import (
	"context"
	"path/filepath"

	"clinic/config"
	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/jsonstore"
	"clinic/internal/infra/persistence/model"
)

// reportRepository implements repository.ReportRepository over reportData.json.
type reportRepository struct {
	store *jsonstore.Collection[model.ReportRecord]
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(cfg *config.Config) repository.ReportRepository {
	return &reportRepository{
		store: jsonstore.NewCollection[model.ReportRecord](
			filepath.Join(cfg.Storage.DataPath, reportDataFile),
		),
	}
}

func (repo *reportRepository) ListAll(ctx context.Context) ([]entity.Report, error) {
	records, err := repo.store.ReadAll()
	if err != nil {
		return nil, err
	}

	reports := make([]entity.Report, 0, len(records))
	for _, record := range records {
		reports = append(reports, toReportEntity(record))
	}

	return reports, nil
}

func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	record := fromReportEntity(report)

	return repo.store.Update(func(records []model.ReportRecord) ([]model.ReportRecord, error) {
		return append(records, record), nil
	})
}

func toReportEntity(record model.ReportRecord) entity.Report {
	return entity.Report{
		ID:                record.ReportID,
		Title:             record.Title,
		GeneratedBy:       record.GeneratedByUserID,
		GeneratedAt:       record.GeneratedAtIso,
		TotalAppointments: record.TotalAppointments,
		TotalRevenue:      record.TotalRevenue,
	}
}

func fromReportEntity(report *entity.Report) model.ReportRecord {
	return model.ReportRecord{
		ReportID:          report.ID,
		Title:             report.Title,
		GeneratedByUserID: report.GeneratedBy,
		GeneratedAtIso:    report.GeneratedAt,
		TotalAppointments: report.TotalAppointments,
		TotalRevenue:      report.TotalRevenue,
	}
}
