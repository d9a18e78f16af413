package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sifat-99/driverly/internal/api/handlers"
)

type contextKey string

const (
	// userIDKey ключ контекста с идентификатором пользователя
	userIDKey contextKey = "userID"

	// HeaderUserID заголовок с идентификатором аутентифицированного пользователя
	// Проставляется фронтовым шлюзом после проверки токена
	HeaderUserID = "X-User-ID"

	// HeaderUserRole заголовок с ролью аутентифицированного пользователя
	HeaderUserRole = "X-User-Role"

	// RoleAdmin роль администратора
	RoleAdmin = "admin"
)

// Auth требует заголовок X-User-ID с корректным идентификатором пользователя
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(HeaderUserID)
		if rawID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid user identifier")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly требует роль admin в дополнение к аутентификации
// Проверка выполняется перед каждой административной операцией
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderUserRole) != RoleAdmin {
			handlers.RespondError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext возвращает идентификатор пользователя из контекста запроса
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
