package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hopmate/hopmate/internal/server/handlers"
	"github.com/hopmate/hopmate/internal/server/jwt"
)

// Auth creates middleware that validates the bearer access token and puts
// the user id, email and roles into the request context.
func Auth(logger *slog.Logger, cfg jwt.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := jwt.ValidateAccessToken(cfg, parts[1])
			if err != nil {
				logger.Warn("invalid access token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.Subject)
			ctx = context.WithValue(ctx, handlers.EmailKey, claims.Email)
			ctx = context.WithValue(ctx, handlers.RolesKey, claims.Roles)

			logger.Debug("user authenticated",
				"user_id", claims.Subject,
				"email", claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
