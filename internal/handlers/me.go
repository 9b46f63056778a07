package handlers

//go:generate mockgen -source=me.go -destination=mock_me.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// UserGetter loads a user by id.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewMeHandler returns an HTTP handler for the current user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.SuccessResponse{data=models.UserResponse}
// @Failure 401 {object} models.ErrorResponse "No user in session"
// @Router /api/auth/me [get]
func NewMeHandler(svc UserGetter) http.HandlerFunc {
	return middlewares.HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		userID, err := currentUserID(r)
		if err != nil {
			return err
		}

		user, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			return accountGone(err)
		}

		middlewares.WriteSuccess(w, http.StatusOK, models.NewUserResponse(user))
		return nil
	})
}
