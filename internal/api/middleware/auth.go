package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

const (
	// HeaderUserID идентификатор сотрудника, проставляется шлюзом
	HeaderUserID = "X-User-ID"
	// HeaderUserRole роль пользователя
	HeaderUserRole = "X-User-Role"

	// RoleStaff роль сотрудника объекта размещения
	RoleStaff = "staff"
)

type userIDKey struct{}

// StaffOnly пропускает только запросы сотрудников (X-User-Role: staff).
// X-User-ID, если передан, кладется в context
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderUserRole) != RoleStaff {
			respondError(w, http.StatusForbidden, "доступ только для сотрудников")
			return
		}

		ctx := r.Context()
		if raw := r.Header.Get(HeaderUserID); raw != "" {
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				respondError(w, http.StatusUnauthorized, "некорректный ID пользователя")
				return
			}
			ctx = context.WithValue(ctx, userIDKey{}, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID сотрудника из context
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    status,
		"message": message,
	})
}
