package role

import (
	"net/http"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"go.uber.org/zap"
)

// AdminMiddleware rejects requests whose token doesn't carry the admin role.
// It runs after the token parser, so the context value is always present.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, ok := r.Context().Value(entity.UserIDCtxKey{}).(entity.UserIDCtx)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if userIDCtx.StatusCode != http.StatusOK {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if !userIDCtx.IsAdmin() {
			zap.L().Info("non-admin user tried to access admin endpoint", zap.String("user_id", userIDCtx.UserID.String()))
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
