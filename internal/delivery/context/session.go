package context

import (
	"context"

	"clinic/internal/domain/service"
)

// KeySession is the key for storing the authenticated session claims in context.
const KeySession ContextKey = "session"

// WithSession returns a new context carrying the authenticated user's claims.
func WithSession(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, KeySession, claims)
}

// GetSession extracts the authenticated user's claims from the context.
// It returns nil when no one is logged in on this request.
func GetSession(ctx context.Context) *service.Claims {
	if claims, ok := ctx.Value(KeySession).(*service.Claims); ok {
		return claims
	}

	return nil
}
