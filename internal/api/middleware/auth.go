package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
)

type contextKey string

const individualIDKey contextKey = "individualID"

// HeaderIndividualID заголовок с идентификатором жильца
// Аутентификацию выполняет внешний шлюз, сервис доверяет заголовку
const HeaderIndividualID = "X-Individual-ID"

// Auth извлекает ID жильца из заголовка и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderIndividualID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+HeaderIndividualID)
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondUnauthorized(w, "некорректный идентификатор жильца")
			return
		}

		ctx := context.WithValue(r.Context(), individualIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIndividualID возвращает ID жильца из контекста запроса
func GetIndividualID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(individualIDKey).(int64)
	return id, ok
}
