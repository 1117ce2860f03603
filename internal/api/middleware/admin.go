package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
)

const (
	adminTokenHeader = "X-Admin-Token"

	msgForbidden = "admin token is missing or invalid"
)

// AdminAuth проверяет статический административный токен из заголовка
// X-Admin-Token. Сравнение токенов за постоянное время
func AdminAuth(adminToken string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(adminToken)) != 1 {
				logger.Warn("%s %s - Invalid admin token", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
