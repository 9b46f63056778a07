package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Validation",
			err:            apperrors.NewValidationError("username", "Username already taken"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Username already taken","field":"username"}`,
		},
		{
			name:           "WrappedValidation",
			err:            fmt.Errorf("register: %w", apperrors.NewValidationError("password", "too short")),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"too short","field":"password"}`,
		},
		{
			name:           "InvalidCredentials",
			err:            apperrors.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid username or password"}`,
		},
		{
			name:           "NotFound",
			err:            apperrors.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Not found"}`,
		},
		{
			name:           "UpstreamTimeout",
			err:            apperrors.NewUpstreamError(apperrors.UpstreamTimeout, nil),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"Food analysis timed out, please try again"}`,
		},
		{
			name:           "UpstreamRateLimited",
			err:            apperrors.NewUpstreamError(apperrors.UpstreamRateLimited, nil),
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"Food analysis is busy, please try again later"}`,
		},
		{
			name:           "UpstreamUnauthorized",
			err:            apperrors.NewUpstreamError(apperrors.UpstreamUnauthorized, errors.New("bad key sk-123")),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Food analysis is misconfigured"}`,
		},
		{
			name:           "UpstreamMalformed",
			err:            apperrors.NewUpstreamError(apperrors.UpstreamMalformed, nil),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"Food analysis returned an unreadable answer"}`,
		},
		{
			name:           "UpstreamUnknown",
			err:            apperrors.NewUpstreamError(apperrors.UpstreamUnknown, nil),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"Food analysis failed"}`,
		},
		{
			name:           "Unknown",
			err:            errors.New("pq: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
				return tt.err
			})

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestHandleErrors_NoError(t *testing.T) {
	h := HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		WriteSuccess(w, http.StatusCreated, map[string]string{"id": "1"})
		return nil
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"1"}}`, rr.Body.String())
}
