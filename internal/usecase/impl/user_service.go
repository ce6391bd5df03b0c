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

// userIDPrefix is the sequence prefix for user identifiers.
const userIDPrefix = "U"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	idGen    service.IDGenerator
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	IDGen    service.IDGenerator
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		idGen:    params.IDGen,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user with a generated id and a hashed password.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("unknown role " + input.Role)
	}

	email := strings.TrimSpace(input.Email)
	if err := srv.ensureEmailIsFree(ctx, email, ""); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("hash password")
	}

	// Generate against the live id set so a damaged counter file cannot
	// hand out an id that is already taken.
	existing, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users for id generation")
	}
	ids := make([]string, 0, len(existing))
	for _, u := range existing {
		ids = append(ids, u.ID)
	}

	id, err := srv.idGen.NextIDExcluding(userIDPrefix, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user id")
	}

	user := &entity.User{
		ID:           id,
		Role:         role,
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		PasswordHash: hash,
	}

	if err := srv.userRepo.SaveOrUpdate(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save new user")
	}

	srv.log(ctx).Info("Registered user", slog.String("userID", user.ID), slog.String("role", role.String()))

	return user, nil
}

func (srv *userService) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, repository.ErrUserNotFound
	}

	return srv.userRepo.FindByID(ctx, id)
}

func (srv *userService) ListAll(ctx context.Context) ([]entity.User, error) {
	return srv.userRepo.ListAll(ctx)
}

// ListByRole matches the role string case-insensitively. An unknown role
// simply matches nothing.
func (srv *userService) ListByRole(ctx context.Context, role string) ([]entity.User, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]entity.User, 0, len(users))
	for _, user := range users {
		if strings.EqualFold(user.Role.String(), role) {
			matches = append(matches, user)
		}
	}

	return matches, nil
}

// UpdateProfile applies the non-empty fields of input to the stored user.
func (srv *userService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if email := strings.TrimSpace(input.Email); email != "" && !strings.EqualFold(email, user.Email) {
		if !looksLikeEmail(email) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("malformed email " + email)
		}
		if err := srv.ensureEmailIsFree(ctx, email, user.ID); err != nil {
			return nil, err
		}
		user.Email = email
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		user.Phone = phone
	}
	if address := strings.TrimSpace(input.Address); address != "" {
		user.Address = address
	}
	if password := input.Password; password != "" {
		hash, err := srv.hasher.Hash(password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("hash password")
		}
		user.PasswordHash = hash
	}

	if err := srv.userRepo.SaveOrUpdate(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save updated profile")
	}

	srv.log(ctx).Debug("Updated profile", slog.String("userID", user.ID))

	return user, nil
}

func (srv *userService) Delete(ctx context.Context, id string) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("Deleted user", slog.String("userID", id))

	return nil
}

// ensureEmailIsFree rejects an email already used by a user other than
// excludeID. Comparison is case-insensitive.
func (srv *userService) ensureEmailIsFree(ctx context.Context, email, excludeID string) error {
	other, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check email uniqueness")
	}
	if excludeID != "" && strings.EqualFold(other.ID, excludeID) {
		return nil
	}

	return domainerrors.ErrEmailAlreadyUsed.WrapMessage("email " + email)
}

// looksLikeEmail performs a shallow shape check: one non-blank local part,
// one "@", a dotted domain. Full RFC validation is out of scope here.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")

	return dot > 0 && dot < len(domain)-1 && !strings.ContainsAny(s, " \t")
}
