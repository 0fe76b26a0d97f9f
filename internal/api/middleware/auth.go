package middleware

import (
	"context"
	"net/http"

	"github.com/shvic/booking-service/internal/api/handlers"
)

// HeaderUserID заголовок с ID пользователя, выставляется API-шлюзом
// после проверки сессии
const HeaderUserID = "X-User-ID"

const msgMissingUserID = "missing user id"

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isAdminKey contextKey = "isAdmin"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет наличие заголовка X-User-ID и кладет ID пользователя
// в контекст запроса
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(HeaderUserID)
			if userID == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, HeaderUserID)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// IsAdmin сообщает, является ли пользователь администратором
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(isAdminKey).(bool)
	return ok && isAdmin
}
