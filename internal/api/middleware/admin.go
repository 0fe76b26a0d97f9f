package middleware

import (
	"context"
	"net/http"

	"github.com/shvic/booking-service/internal/api/handlers"
)

const msgAdminOnly = "admin access required"

// WithAdminFlag помечает в контексте пользователей из списка администраторов
// Должен стоять после Auth
func WithAdminFlag(adminIDs []string) func(http.Handler) http.Handler {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if userID, ok := GetUserID(ctx); ok {
				if _, isAdmin := admins[userID]; isAdmin {
					ctx = context.WithValue(ctx, isAdminKey, true)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly пропускает только администраторов
// Должен стоять после Auth и WithAdminFlag
func AdminOnly(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdmin(r.Context()) {
				logger.Warn("%s %s - Admin access denied", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
