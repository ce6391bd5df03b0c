package impl

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"clinic/config"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/infra/auth"
	"clinic/internal/infra/idgen"
	"clinic/internal/infra/persistence/jsonfile"
	"clinic/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testEnv wires the real file-backed repositories and generators against a
// temporary directory, so service tests exercise the full persistence path.
type testEnv struct {
	cfg *config.Config

	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	paymentRepo     repository.PaymentRepository
	feedbackRepo    repository.FeedbackRepository
	reportRepo      repository.ReportRepository

	hasher       service.PasswordHasher
	tokenService service.TokenService
	idGen        service.IDGenerator
	logger       *slog.Logger

	users        usecase.UserUsecase
	auth         usecase.AuthUsecase
	appointments usecase.AppointmentUsecase
	payments     usecase.PaymentUsecase
	feedback     usecase.FeedbackUsecase
	reports      usecase.ReportUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.DataPath = t.TempDir()
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	env := &testEnv{
		cfg:             cfg,
		userRepo:        jsonfile.NewUserRepository(cfg),
		appointmentRepo: jsonfile.NewAppointmentRepository(cfg),
		paymentRepo:     jsonfile.NewPaymentRepository(cfg),
		feedbackRepo:    jsonfile.NewFeedbackRepository(cfg),
		reportRepo:      jsonfile.NewReportRepository(cfg),
		hasher:          auth.NewBcryptHasher(cfg),
		tokenService:    tokenService,
		idGen:           idgen.New(filepath.Join(cfg.Storage.DataPath, jsonfile.TemporaryIDFile), logger),
		logger:          logger,
	}

	env.users = NewUserService(UserServiceParams{
		UserRepo: env.userRepo,
		Hasher:   env.hasher,
		IDGen:    env.idGen,
		Logger:   logger,
	})
	env.auth = NewAuthService(AuthServiceParams{
		UserRepo:     env.userRepo,
		Hasher:       env.hasher,
		TokenService: env.tokenService,
		Logger:       logger,
	})
	env.appointments = NewAppointmentService(AppointmentServiceParams{
		AppointmentRepo: env.appointmentRepo,
		IDGen:           env.idGen,
		Logger:          logger,
	})
	env.payments = NewPaymentService(PaymentServiceParams{
		PaymentRepo: env.paymentRepo,
		IDGen:       env.idGen,
		Logger:      logger,
	})
	env.feedback = NewFeedbackService(FeedbackServiceParams{
		FeedbackRepo: env.feedbackRepo,
		IDGen:        env.idGen,
		Logger:       logger,
	})
	env.reports = NewReportService(ReportServiceParams{
		ReportRepo:      env.reportRepo,
		AppointmentRepo: env.appointmentRepo,
		IDGen:           env.idGen,
		Logger:          logger,
	})

	return env
}
