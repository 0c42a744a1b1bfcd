package http

import (
	"context"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
)

type contextKey int

const userContextKey contextKey = iota

// WithUser stores the authenticated actor in the request context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext extracts the authenticated actor placed there by the auth
// middleware.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}
