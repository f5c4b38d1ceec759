package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
)

// Заголовки, выставляемые внешним сессионным шлюзом.
// Ядро не занимается аутентификацией: оно лишь проверяет уже
// прикрепленные к запросу флаги сессии и роли.
const (
	HeaderAuthUser = "X-Auth-User"
	HeaderAuthRole = "X-Auth-Role"

	RoleAdmin = "admin"
)

const (
	msgAuthRequired = "требуется аутентификация"
	msgAdminOnly    = "требуется доступ администратора"
)

// RequireAuth пропускает только аутентифицированные запросы
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderAuthUser) == "" {
			handlers.RespondUnauthorized(w, msgAuthRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin пропускает только запросы с ролью администратора
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderAuthUser) == "" {
			handlers.RespondUnauthorized(w, msgAuthRequired)
			return
		}
		if r.Header.Get(HeaderAuthRole) != RoleAdmin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IsAdmin возвращает true, если запрос выполняется администратором.
// Используется хендлерами со смешанным доступом.
func IsAdmin(r *http.Request) bool {
	return r.Header.Get(HeaderAuthUser) != "" && r.Header.Get(HeaderAuthRole) == RoleAdmin
}
