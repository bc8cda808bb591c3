package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	sessionCookie            = "cart_session"
	SessionIDKey  contextKey = "sessionID"
)

// SessionMiddleware guarantees every request carries a cart session id.
// The id lives in a cookie so the cart survives across requests without
// requiring the visitor to be logged in.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string

		if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				sessionID = cookie.Value
			}
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionIDFrom returns the cart session id bound to the request.
func SessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}
