package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/campusbook/VenueBookingService/internal/api/handlers"
)

type ctxKey int

const userIDKey ctxKey = iota

// HeaderUserID заголовок с ID аутентифицированного пользователя
// Выставляется шлюзом аутентификации перед этим сервисом
const HeaderUserID = "X-User-ID"

// Auth проверяет наличие корректного X-User-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+HeaderUserID+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid "+HeaderUserID+" header")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
