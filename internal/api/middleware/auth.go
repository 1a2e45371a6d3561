package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SNK-BookingService/internal/api/handlers"
)

// staffIDHeader заголовок с ID сотрудника; выставляется API-шлюзом
// после аутентификации
const staffIDHeader = "X-Staff-ID"

const msgMissingStaffID = "отсутствует идентификатор сотрудника"

type contextKey string

const staffIDKey contextKey = "staffID"

// Auth проверяет наличие заголовка X-Staff-ID и кладет ID сотрудника
// в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(staffIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID извлекает ID сотрудника из контекста запроса
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey).(int64)
	return staffID, ok
}
