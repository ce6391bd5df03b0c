package handler

import (
	"net/http"
	"strings"

	httpmiddleware "clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/response"
	"clinic/internal/domain/entity"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(user), "User registered successfully")
}

// List returns users, optionally narrowed by the role query parameter.
func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	role := c.QueryParam("role")

	var (
		users []entity.User
		err   error
	)
	if role != "" {
		users, err = h.uc.ListByRole(ctx, role)
	} else {
		users, err = h.uc.ListAll(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserViews(users), "")
}

// Get returns one user by id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.uc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "")
}

// UpdateProfile applies a partial profile update. Users may edit their own
// profile; managers may edit anyone's.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	targetID := c.Param("id")

	claims := httpmiddleware.SessionClaims(c)
	if claims == nil {
		return response.Unauthorized(c, "SESSION_MISSING", "Login required")
	}
	if !strings.EqualFold(claims.UserID, targetID) && !strings.EqualFold(claims.Role, entity.RoleManager.String()) {
		return response.Forbidden(c, "NOT_PROFILE_OWNER", "You may only edit your own profile")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), targetID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Profile updated successfully")
}

// Delete removes one user by id.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}
