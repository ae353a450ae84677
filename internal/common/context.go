package common

import (
	"context"

	"hospsupply/internal/models"
)

type contextKey string

const (
	userKey  contextKey = "current_user"
	scopeKey contextKey = "hospital_scope"
)

// WithUser stores the authenticated user and its hospital scope in the
// request context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, scopeKey, NewHospitalScope(user))
}

// GetUserFromContext extracts the authenticated user from the request context.
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// GetScopeFromContext extracts the hospital scope from the request context.
func GetScopeFromContext(ctx context.Context) (HospitalScope, bool) {
	scope, ok := ctx.Value(scopeKey).(HospitalScope)
	return scope, ok
}
