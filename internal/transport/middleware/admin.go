package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden for authenticated callers without the admin role.
// Use in handlers whose access depends on the request, e.g. a query parameter.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.SubjectFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly rejects every request that does not carry an admin identity.
// It must run after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch err := RequireAdmin(r.Context()); err {
		case nil:
			next.ServeHTTP(w, r)
		case domain.ErrUnauthorized:
			writeError(w, r, http.StatusUnauthorized, "unauthorized")
		default:
			writeError(w, r, http.StatusForbidden, "forbidden")
		}
	})
}
