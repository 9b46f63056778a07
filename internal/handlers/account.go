package handlers

//go:generate mockgen -source=account.go -destination=mock_account.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
)

// AccountDeleter removes a user account.
type AccountDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// NewDeleteAccountHandler returns an HTTP handler that deletes the current user.
// The session's history goes with it and a fresh anonymous session is issued.
// @Summary Delete account
// @Tags users
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse "Not logged in"
// @Router /api/users/me [delete]
func NewDeleteAccountHandler(svc AccountDeleter, history HistoryClearer, sessions SessionIssuer) http.HandlerFunc {
	return middlewares.HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		session, err := currentSession(r)
		if err != nil {
			return err
		}
		userID, err := currentUserID(r)
		if err != nil {
			return err
		}

		if err := svc.Delete(r.Context(), userID); err != nil {
			return accountGone(err)
		}
		if err := history.Clear(r.Context(), session.ID); err != nil {
			return err
		}
		if err := sessions.Destroy(r.Context(), session.ID); err != nil {
			return err
		}
		if _, err := sessions.IssueFresh(r.Context(), w); err != nil {
			return err
		}

		logger.Log.Infow("account deleted", "user_id", userID)
		middlewares.WriteSuccess(w, http.StatusOK, nil)
		return nil
	})
}
