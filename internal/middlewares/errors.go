package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

const internalErrorMessage = "Internal server error"

// HandlerFunc is an HTTP handler that reports failures by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// HandleErrors adapts h to http.HandlerFunc, turning a returned error into a JSON error response.
func HandleErrors(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			WriteError(w, r, err)
		}
	}
}

// WriteError maps err onto a status code and writes {"error", "field"}.
// Unknown errors become a generic 500 and are logged.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("request failed",
			"request_id", GetRequestIDFromContext(r.Context()),
			"method", r.Method,
			"uri", r.RequestURI,
			"error", err,
		)
	}
	WriteJSON(w, status, body)
}

func errorResponse(err error) (int, models.ErrorResponse) {
	var (
		validationErr *apperrors.ValidationError
		authErr       *apperrors.AuthError
		upstreamErr   *apperrors.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, models.ErrorResponse{Error: validationErr.Message, Field: validationErr.Field}
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, models.ErrorResponse{Error: authErr.Message}
	case errors.As(err, &upstreamErr):
		return upstreamStatus(upstreamErr.Kind)
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, models.ErrorResponse{Error: "Not found"}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage}
	}
}

func upstreamStatus(kind apperrors.UpstreamKind) (int, models.ErrorResponse) {
	switch kind {
	case apperrors.UpstreamTimeout:
		return http.StatusServiceUnavailable, models.ErrorResponse{Error: "Food analysis timed out, please try again"}
	case apperrors.UpstreamRateLimited:
		return http.StatusTooManyRequests, models.ErrorResponse{Error: "Food analysis is busy, please try again later"}
	case apperrors.UpstreamUnauthorized:
		return http.StatusInternalServerError, models.ErrorResponse{Error: "Food analysis is misconfigured"}
	case apperrors.UpstreamMalformed:
		return http.StatusBadGateway, models.ErrorResponse{Error: "Food analysis returned an unreadable answer"}
	default:
		return http.StatusBadGateway, models.ErrorResponse{Error: "Food analysis failed"}
	}
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// WriteSuccess writes the {"success": true, "data": ...} envelope.
func WriteSuccess(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, models.SuccessResponse{Success: true, Data: data})
}
