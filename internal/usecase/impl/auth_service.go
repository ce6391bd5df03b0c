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

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues a token pair. A missing user and
// a failed password check produce the same error, so callers cannot probe
// which emails exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.String("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return srv.issueTokens(ctx, user)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The user is
// re-read so revoked accounts and role changes take effect immediately.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("validate refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user for refresh")
	}

	return srv.issueTokens(ctx, user)
}

func (srv *authService) issueTokens(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String(), user.Name, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("Issued session tokens",
		slog.String("userID", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}
