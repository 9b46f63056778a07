package handlers

//go:generate mockgen -source=password.go -destination=mock_password.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// PasswordChanger replaces a user's password after checking the current one.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param changePasswordRequest body models.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid new password"
// @Failure 401 {object} models.ErrorResponse "Not logged in or wrong current password"
// @Router /api/users/me/password [put]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return middlewares.HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		userID, err := currentUserID(r)
		if err != nil {
			return err
		}

		var req models.ChangePasswordRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return err
		}

		if err := svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			return accountGone(err)
		}

		logger.Log.Infow("password changed", "user_id", userID)
		middlewares.WriteSuccess(w, http.StatusOK, nil)
		return nil
	})
}
