package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// RecoveryMiddleware turns a handler panic into a generic 500 response.
func RecoveryMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Log.Errorw("panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					WriteJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
