package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, nickname string) (*models.UserDB, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Usernames are lower-cased and must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.SuccessResponse{data=models.UserResponse} "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Invalid field or username already taken"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return middlewares.HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		var req models.RegisterRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return err
		}

		user, err := svc.Register(r.Context(), req.Username, req.Password, req.Nickname)
		if err != nil {
			return err
		}

		logger.Log.Infow("user registered", "user_id", user.UserID, "username", user.Username)
		middlewares.WriteSuccess(w, http.StatusCreated, models.NewUserResponse(user))
		return nil
	})
}
