package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"clinic/config"
	"clinic/internal/delivery"
	"clinic/internal/delivery/http"
	httpmiddleware "clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/router/handler"
	deliverymiddleware "clinic/internal/delivery/middleware"
	"clinic/internal/domain/service"
	"clinic/internal/infra/auth"
	"clinic/internal/infra/idgen"
	logs "clinic/internal/infra/log"
	"clinic/internal/infra/persistence/jsonfile"
	"clinic/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			jsonfile.NewUserRepository,
			jsonfile.NewAppointmentRepository,
			jsonfile.NewPaymentRepository,
			jsonfile.NewFeedbackRepository,
			jsonfile.NewReportRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newIDGenerator,
		),
	)
}

// newIDGenerator keeps the identifier counters next to the data files they
// protect.
func newIDGenerator(cfg *config.Config, logger *slog.Logger) service.IDGenerator {
	statePath := filepath.Join(cfg.Storage.DataPath, jsonfile.TemporaryIDFile)

	return idgen.New(statePath, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAuthService,
			impl.NewAppointmentService,
			impl.NewPaymentService,
			impl.NewFeedbackService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewAppointmentHandler,
			handler.NewPaymentHandler,
			handler.NewFeedbackHandler,
			handler.NewReportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
