package handlers

import "context"

type contextKey string

// Context keys populated by the bearer-auth middleware.
const (
	UserIDKey contextKey = "user_id"
	EmailKey  contextKey = "email"
	RolesKey  contextKey = "roles"
)

// UserIDFromContext returns the authenticated user id, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}

// EmailFromContext returns the authenticated user's email, if present.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// RolesFromContext returns the authenticated user's roles, if present.
func RolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(RolesKey).([]string)
	return roles, ok
}
