package middleware

import (
	"net/http"
	"strings"

	"github.com/draftops/mflgate/internal/api/presenter"
	"github.com/draftops/mflgate/internal/session"
)

// SessionAuth guards every route it wraps with bearer-token authentication against the
// session store. A malformed header and an unknown token produce the exact same
// rejection, so callers cannot probe the store's contents. On success a copy of the
// session entry is attached to the request context for the handler to read.
func SessionAuth(store *session.Store) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil {
				// misconfiguration, not a client auth failure: fail closed
				presenter.Error(w, r, "session store not configured", http.StatusInternalServerError)
				return
			}

			auth := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || token == "" {
				presenter.Error(w, r, "unauthorized", http.StatusUnauthorized)
				return
			}

			entry, ok := store.Get(token)
			if !ok {
				presenter.Error(w, r, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), entry)))
		})
	}
}
