package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// CredentialVerifier defines the interface that the login service must implement.
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, username, password string) (*models.UserDB, error)
}

// HistoryTransferer moves a session's breadcrumbs to another session.
type HistoryTransferer interface {
	Transfer(ctx context.Context, fromSessionID, toSessionID string) error
}

// NewLoginHandler returns an HTTP handler for user login.
// The caller's session is replaced by a new one bound to the user and its search history
// moves along.
// @Summary User login
// @Description Verifies credentials and replaces the session cookie with one bound to the user
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.SuccessResponse{data=models.UserResponse} "Logged in"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Router /api/auth/login [post]
func NewLoginHandler(svc CredentialVerifier, history HistoryTransferer, sessions SessionIssuer) http.HandlerFunc {
	return middlewares.HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		session, err := currentSession(r)
		if err != nil {
			return err
		}

		var req models.LoginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return err
		}

		user, err := svc.VerifyCredentials(r.Context(), req.Username, req.Password)
		if err != nil {
			return err
		}

		rotated, err := sessions.Rotate(r.Context(), w, session.ID, user.UserID.String())
		if err != nil {
			return err
		}
		if err := history.Transfer(r.Context(), session.ID, rotated.ID); err != nil {
			return err
		}

		logger.Log.Infow("user logged in", "user_id", user.UserID)
		middlewares.WriteSuccess(w, http.StatusOK, models.NewUserResponse(user))
		return nil
	})
}
