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

// reportIDPrefix is the sequence prefix for report identifiers.
const reportIDPrefix = "R"

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo      repository.ReportRepository
	appointmentRepo repository.AppointmentRepository
	idGen           service.IDGenerator
	logger          *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo      repository.ReportRepository
	AppointmentRepo repository.AppointmentRepository
	IDGen           service.IDGenerator
	Logger          *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo:      params.ReportRepo,
		appointmentRepo: params.AppointmentRepo,
		idGen:           params.IDGen,
		logger:          params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate snapshots the appointment store and persists the totals. Every
// appointment counts toward the total regardless of status; only completed
// appointments contribute to revenue.
func (srv *reportService) Generate(ctx context.Context, input *usecase.GenerateReportInput) (*entity.Report, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("report title must not be blank")
	}

	appointments, err := srv.appointmentRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments for report")
	}

	var revenue float64
	for _, appointment := range appointments {
		if appointment.Status == entity.StatusCompleted {
			revenue += appointment.Charge
		}
	}

	id, err := srv.idGen.NextID(reportIDPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate report id")
	}

	report := &entity.Report{
		ID:                id,
		Title:             title,
		GeneratedBy:       input.GeneratedBy,
		GeneratedAt:       nowIso(),
		TotalAppointments: len(appointments),
		TotalRevenue:      revenue,
	}

	if err := srv.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to save report")
	}

	srv.log(ctx).Info("Generated report",
		slog.String("reportID", report.ID),
		slog.Int("totalAppointments", report.TotalAppointments),
		slog.Float64("totalRevenue", report.TotalRevenue))

	return report, nil
}

// ListAll returns every saved report in insertion order.
func (srv *reportService) ListAll(ctx context.Context) ([]entity.Report, error) {
	reports, err := srv.reportRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return reports, nil
}
