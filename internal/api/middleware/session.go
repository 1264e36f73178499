package middleware

import (
	"context"
	"net/http"
	"strings"
)

// SessionHeader заголовок с идентификатором сессии дашборда
const SessionHeader = "X-Session-ID"

type contextKey string

const sessionIDKey contextKey = "session_id"

// maxSessionIDLength ограничивает размер ключа в реестре сессий
const maxSessionIDLength = 128

// Session кладет ID сессии из заголовка X-Session-ID в контекст.
// Без заголовка используется defaultSession.
func Session(defaultSession string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(SessionHeader))
			if sessionID == "" || len(sessionID) > maxSessionIDLength {
				sessionID = defaultSession
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionID извлекает ID сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}

// WithSessionID кладет ID сессии в контекст (для тестов обработчиков)
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}
