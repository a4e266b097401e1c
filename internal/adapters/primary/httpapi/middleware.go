package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/warblehq/warble/internal/core/domain"
)

type contextKey struct{ name string }

var viewerCtxKey = &contextKey{"viewer"}

// viewerMiddleware resolves the Authorization header into a viewer. No
// header means an anonymous viewer and the request proceeds; a malformed
// or invalid token is rejected here, before any handler runs.
func (s *Server) viewerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r.WithContext(withViewer(r.Context(), domain.Anonymous())))
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		userID, err := s.identity.ValidateToken(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withViewer(r.Context(), domain.Authenticated(userID))))
	})
}

func withViewer(ctx context.Context, v domain.Viewer) context.Context {
	return context.WithValue(ctx, viewerCtxKey, v)
}

func viewerFrom(ctx context.Context) domain.Viewer {
	v, _ := ctx.Value(viewerCtxKey).(domain.Viewer)
	return v
}

// requireActor returns the authenticated caller's id, or writes a 401 and
// reports false.
func requireActor(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := viewerFrom(r.Context()).ID()
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return id, true
}
