package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"clinic/config"
	httpmiddleware "clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/router/handler"
	"clinic/internal/delivery/http/validator"
	"clinic/internal/infra/auth"
	"clinic/internal/infra/idgen"
	"clinic/internal/infra/persistence/jsonfile"
	"clinic/internal/usecase"
	"clinic/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestApp wires the full HTTP stack against a temp data directory and
// seeds one user per role. No fx, no network listener.
func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.DataPath = t.TempDir()
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := jsonfile.NewUserRepository(cfg)
	appointmentRepo := jsonfile.NewAppointmentRepository(cfg)
	paymentRepo := jsonfile.NewPaymentRepository(cfg)
	feedbackRepo := jsonfile.NewFeedbackRepository(cfg)
	reportRepo := jsonfile.NewReportRepository(cfg)

	hasher := auth.NewBcryptHasher(cfg)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	idGen := idgen.New(filepath.Join(cfg.Storage.DataPath, jsonfile.TemporaryIDFile), logger)

	users := impl.NewUserService(impl.UserServiceParams{
		UserRepo: userRepo, Hasher: hasher, IDGen: idGen, Logger: logger,
	})
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo: userRepo, Hasher: hasher, TokenService: tokenService, Logger: logger,
	})
	appointments := impl.NewAppointmentService(impl.AppointmentServiceParams{
		AppointmentRepo: appointmentRepo, IDGen: idGen, Logger: logger,
	})
	payments := impl.NewPaymentService(impl.PaymentServiceParams{
		PaymentRepo: paymentRepo, IDGen: idGen, Logger: logger,
	})
	feedback := impl.NewFeedbackService(impl.FeedbackServiceParams{
		FeedbackRepo: feedbackRepo, IDGen: idGen, Logger: logger,
	})
	reports := impl.NewReportService(impl.ReportServiceParams{
		ReportRepo: reportRepo, AppointmentRepo: appointmentRepo, IDGen: idGen, Logger: logger,
	})

	ctx := context.Background()
	for _, seed := range []usecase.RegisterUserInput{
		{Role: "MANAGER", Name: "Mona", Email: "manager@clinic.test", Password: "secret1"},
		{Role: "DOCTOR", Name: "Dora", Email: "doctor@clinic.test", Password: "secret1"},
		{Role: "CUSTOMER", Name: "Carl", Email: "customer@clinic.test", Password: "secret1"},
	} {
		_, err := users.Register(ctx, &seed)
		require.NoError(t, err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:        handler.NewAuthHandler(authUC),
		UserHandler:        handler.NewUserHandler(users),
		AppointmentHandler: handler.NewAppointmentHandler(appointments),
		PaymentHandler:     handler.NewPaymentHandler(payments),
		FeedbackHandler:    handler.NewFeedbackHandler(feedback),
		ReportHandler:      handler.NewReportHandler(reports),
		AuthMiddleware:     httpmiddleware.NewAuthMiddleware(tokenService),
	}).RegisterRoutes(e)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func loginAs(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/auth/login", "",
		`{"email":"`+email+`","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)

	return envelope.Data.AccessToken
}

func TestRouter_HealthIsPublic(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(t, e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LoginAndBookingFlow(t *testing.T) {
	e := newTestApp(t)

	customerToken := loginAs(t, e, "customer@clinic.test")

	rec := doJSON(t, e, http.MethodPost, "/appointments", customerToken,
		`{"customerId":"U003","doctorId":"U002","dateTime":"2025-08-21T10:00","charge":50}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"appointmentId":"A001"`)
	assert.Contains(t, rec.Body.String(), `"createdBy":"U003"`)

	// Customers cannot flip statuses; that is a staff or manager action.
	rec = doJSON(t, e, http.MethodPatch, "/appointments/A001/status", customerToken,
		`{"status":"COMPLETED"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	managerToken := loginAs(t, e, "manager@clinic.test")
	rec = doJSON(t, e, http.MethodPatch, "/appointments/A001/status", managerToken,
		`{"status":"COMPLETED"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"COMPLETED"`)
}

func TestRouter_AuthRequired(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(t, e, http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/users", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RoleGates(t *testing.T) {
	e := newTestApp(t)

	customerToken := loginAs(t, e, "customer@clinic.test")
	managerToken := loginAs(t, e, "manager@clinic.test")

	// Only managers create users.
	body := `{"role":"STAFF","name":"Sam","email":"staff@clinic.test","password":"secret1"}`
	rec := doJSON(t, e, http.MethodPost, "/users", customerToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/users", managerToken, body)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Reports are manager-only, both ways.
	rec = doJSON(t, e, http.MethodGet, "/reports", customerToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/reports", managerToken, `{"title":"Q3"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"reportId":"R001"`)
}

func TestRouter_FeedbackAuthorComesFromSession(t *testing.T) {
	e := newTestApp(t)

	customerToken := loginAs(t, e, "customer@clinic.test")

	// The body claims another author; the session wins.
	rec := doJSON(t, e, http.MethodPost, "/feedback", customerToken,
		`{"toUserId":"U002","appointmentId":"A001","rating":5,"comment":"great","fromUserId":"U999"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"fromUserId":"U003"`)
}

func TestRouter_PasswordHashNeverLeaves(t *testing.T) {
	e := newTestApp(t)

	managerToken := loginAs(t, e, "manager@clinic.test")

	rec := doJSON(t, e, http.MethodGet, "/users", managerToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRouter_ValidationFailuresAre400(t *testing.T) {
	e := newTestApp(t)

	customerToken := loginAs(t, e, "customer@clinic.test")

	// Rating outside 1..5 fails the input validator before the usecase runs.
	rec := doJSON(t, e, http.MethodPost, "/feedback", customerToken,
		`{"toUserId":"U002","appointmentId":"A001","rating":9,"comment":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/auth/login", "", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
