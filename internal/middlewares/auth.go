package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/vkamarthi/heritage-collect/internal/sessions"
)

// SessionLoader decodes the per-session state from a request.
type SessionLoader interface {
	Load(r *http.Request) *sessions.Session
}

// AuthMiddleware returns a middleware that loads the session and requires a
// logged-in identity. The session object is placed in the request context for
// downstream handlers.
func AuthMiddleware(loader SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := loader.Load(r)
			if !sess.LoggedIn {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Please login first.",
				})
				return
			}

			ctx := sessions.NewContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware requires an admin session. Being logged in without admin
// rights is a distinct access-denied outcome, not an authentication failure.
func AdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessions.FromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Please login first.",
				})
				return
			}
			if !sess.IsAdmin {
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Access denied: Admins only!",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
