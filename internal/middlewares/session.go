package middlewares

//go:generate mockgen -source=session.go -destination=mock_session.go -package=middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/calorie-tracker/internal/jwt"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// SessionTokener signs and reads session tokens.
type SessionTokener interface {
	Generate(ctx context.Context, sessionID, userID string) (string, time.Time, error)
	Parse(ctx context.Context, tokenString string) (*jwt.Claims, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionStore keeps the server-side record of live sessions. A token is only honoured
// while its record exists.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type sessionKey struct{}

// SessionManager issues session cookies and resolves them on incoming requests.
type SessionManager struct {
	tokener SessionTokener
	store   SessionStore
	secure  bool
}

// NewSessionManager creates a SessionManager. secure marks cookies HTTPS-only.
func NewSessionManager(tokener SessionTokener, store SessionStore, secure bool) *SessionManager {
	return &SessionManager{tokener: tokener, store: store, secure: secure}
}

// Issue signs a token binding sessionID to userID (which may be empty), records the session
// and sets it as the session cookie.
func (m *SessionManager) Issue(ctx context.Context, w http.ResponseWriter, sessionID, userID string) (models.Session, error) {
	token, expiresAt, err := m.tokener.Generate(ctx, sessionID, userID)
	if err != nil {
		return models.Session{}, err
	}

	session := models.Session{ID: sessionID, UserID: userID, ExpiresAt: expiresAt}
	if err := m.store.Save(ctx, session); err != nil {
		logger.Log.Errorw("failed to save session", "session_id", sessionID, "error", err)
		return models.Session{}, err
	}

	http.SetCookie(w, jwt.NewCookie(token, expiresAt, m.secure))
	return session, nil
}

// IssueFresh starts a new anonymous session.
func (m *SessionManager) IssueFresh(ctx context.Context, w http.ResponseWriter) (models.Session, error) {
	return m.Issue(ctx, w, jwt.NewSessionID(), "")
}

// Rotate replaces oldSessionID with a new session bound to userID. The old token stops
// working immediately.
func (m *SessionManager) Rotate(ctx context.Context, w http.ResponseWriter, oldSessionID, userID string) (models.Session, error) {
	session, err := m.Issue(ctx, w, jwt.NewSessionID(), userID)
	if err != nil {
		return models.Session{}, err
	}
	if err := m.Destroy(ctx, oldSessionID); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Destroy revokes the session. Its token is rejected from then on.
func (m *SessionManager) Destroy(ctx context.Context, sessionID string) error {
	if err := m.store.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", sessionID, "error", err)
		return err
	}
	return nil
}

func (m *SessionManager) resolve(ctx context.Context, r *http.Request) (models.Session, bool, error) {
	token, err := m.tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return models.Session{}, false, nil
	}
	claims, err := m.tokener.Parse(ctx, token)
	if err != nil {
		logger.Log.Infow("discarding invalid session token", "error", err)
		return models.Session{}, false, nil
	}

	record, err := m.store.Get(ctx, claims.SessionID)
	if err != nil {
		return models.Session{}, false, err
	}
	if record == nil || record.UserID != claims.UserID {
		logger.Log.Infow("discarding revoked session token", "session_id", claims.SessionID)
		return models.Session{}, false, nil
	}

	return models.Session{ID: claims.SessionID, UserID: claims.UserID, ExpiresAt: claims.ExpiresAt}, true, nil
}

// SessionMiddleware puts the caller's session into the request context, starting a new
// anonymous session when the cookie is missing, expired, forged or revoked.
func SessionMiddleware(m *SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			session, ok, err := m.resolve(ctx, r)
			if err != nil {
				WriteError(w, r, err)
				return
			}
			if !ok {
				session, err = m.IssueFresh(ctx, w)
				if err != nil {
					WriteError(w, r, err)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
		})
	}
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext returns the session stored by SessionMiddleware.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(models.Session)
	return session, ok && session.ID != ""
}
