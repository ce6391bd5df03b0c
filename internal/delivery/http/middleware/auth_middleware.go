package middleware

import (
	"strings"

	deliverycontext "clinic/internal/delivery/context"
	"clinic/internal/delivery/http/response"
	"clinic/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// keyClaims is the echo context key holding the validated session claims.
const keyClaims = "sessionClaims"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the session claims in
// both the echo context and the request context, so handlers and services
// read the acting user from the token rather than any shared state.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MALFORMED", "Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(keyClaims, claims)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithSession(c.Request().Context(), claims)))

		return next(c)
	}
}

// RequireRole restricts a route to users holding one of the given roles.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := SessionClaims(c)
			if claims == nil {
				return response.Forbidden(c, "SESSION_MISSING", "Permission denied: session information missing")
			}

			for _, role := range roles {
				if strings.EqualFold(claims.Role, role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "ROLE_REQUIRED",
				"Permission denied: requires one of the roles "+strings.Join(roles, ", "))
		}
	}
}

// SessionClaims returns the validated claims stored by Authenticate, or nil.
func SessionClaims(c echo.Context) *service.Claims {
	if claims, ok := c.Get(keyClaims).(*service.Claims); ok {
		return claims
	}

	return nil
}
