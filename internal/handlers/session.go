package handlers

//go:generate mockgen -source=session.go -destination=mock_session.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

const maxBodyBytes = 1 << 20

var errNoSession = errors.New("no session in request context")

// SessionIssuer sets the session cookie on a response and revokes sessions.
type SessionIssuer interface {
	IssueFresh(ctx context.Context, w http.ResponseWriter) (models.Session, error)
	Rotate(ctx context.Context, w http.ResponseWriter, oldSessionID, userID string) (models.Session, error)
	Destroy(ctx context.Context, sessionID string) error
}

func currentSession(r *http.Request) (models.Session, error) {
	session, ok := middlewares.GetSessionFromContext(r.Context())
	if !ok {
		return models.Session{}, errNoSession
	}
	return session, nil
}

func currentUserID(r *http.Request) (uuid.UUID, error) {
	session, ok := middlewares.GetSessionFromContext(r.Context())
	if !ok || !session.Authenticated() {
		return uuid.Nil, apperrors.ErrUnauthenticated
	}
	id, err := uuid.Parse(session.UserID)
	if err != nil {
		return uuid.Nil, apperrors.ErrUnauthenticated
	}
	return id, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewValidationError("", "Invalid request body")
	}
	return nil
}

// accountGone treats a session bound to a deleted user as unauthenticated.
func accountGone(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.ErrUnauthenticated
	}
	return err
}
