package handlers

import (
	"net/http"

	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
)

// NewLogoutHandler returns an HTTP handler that destroys the current session.
// @Summary Log out
// @Description Clears the session's history, revokes the session and starts a fresh anonymous one
// @Tags auth
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/auth/logout [post]
func NewLogoutHandler(history HistoryClearer, sessions SessionIssuer) http.HandlerFunc {
	return middlewares.HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		session, err := currentSession(r)
		if err != nil {
			return err
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

		middlewares.WriteSuccess(w, http.StatusOK, nil)
		return nil
	})
}
