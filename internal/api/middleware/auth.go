package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
)

const msgUnauthorized = "authentication credentials were not provided or are invalid"

type contextKey string

const userIDKey contextKey = "userID"

// TokenParser интерфейс проверки токенов доступа
type TokenParser interface {
	Parse(tokenString string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет JWT из заголовка Authorization и кладет ID пользователя
// в контекст запроса. Без валидного токена запрос отклоняется с 401
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn("%s %s - Missing or malformed Authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			userID, err := parser.Parse(token)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID возвращает ID аутентифицированного пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
