package middlewares

import (
	"net/http"

	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
)

// AuthMiddleware rejects requests whose session carries no user.
func AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSessionFromContext(r.Context())
			if !ok || !session.Authenticated() {
				logger.Log.Infow("authorization failed", "uri", r.RequestURI)
				WriteError(w, r, apperrors.ErrUnauthenticated)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
