package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"github.com/textdesk/textdesk/internal/session"
)

const userIDKey contextKey = "userID"

// RequireAuth gates protected routes. It resolves the cookie-carried
// session token and stores the authenticated user's id in the request
// context; requests without a live session are rejected with 401 before
// any handler logic runs.
func RequireAuth(manager *session.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := manager.Resolve(r.Context(), r)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, map[string]interface{}{
					"error":   ErrorCodeUnauthorized,
					"message": ErrorMessageUnauthorized,
				})
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, sess.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the authenticated user's id from the request context,
// or the empty string when the request was not gated by RequireAuth.
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}
