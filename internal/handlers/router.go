package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// AuthService is everything the account endpoints need from the user store.
type AuthService interface {
	Register(ctx context.Context, username, password, nickname string) (*models.UserDB, error)
	VerifyCredentials(ctx context.Context, username, password string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// HistoryService is everything the history endpoints need from the breadcrumb tracker.
type HistoryService interface {
	GetBreadcrumbs(ctx context.Context, sessionID string) ([]models.Breadcrumb, error)
	GetHistory(ctx context.Context, sessionID string, page, pageSize int) (*models.History, error)
	Clear(ctx context.Context, sessionID string) error
	Transfer(ctx context.Context, fromSessionID, toSessionID string) error
}

// RouterDeps holds what NewRouter wires together. DB, RateLimiter, Metrics and
// MetricsHandler are optional.
type RouterDeps struct {
	AppName        string
	Log            *zap.SugaredLogger
	DB             *sqlx.DB
	Sessions       *middlewares.SessionManager
	Auth           AuthService
	History        HistoryService
	Analysis       Analyzer
	RateLimiter    *middlewares.RateLimiter
	Metrics        middlewares.HTTPMetricsRecorder
	MetricsHandler http.Handler
}

// NewRouter builds the HTTP routes of the service.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Security headers go first so 404s and recovered panics carry them too
	r.Use(middlewares.SecurityHeadersMiddleware())
	r.Use(middlewares.RecoveryMiddleware())
	if deps.Log != nil {
		r.Use(middlewares.LoggingMiddleware(deps.Log))
	}
	if deps.Metrics != nil {
		r.Use(middlewares.MetricsMiddleware(deps.Metrics))
	}

	notFound := NewNotFoundHandler()
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/health", NewHealthHandler())
	r.Get("/", NewIndexHandler(deps.AppName))
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	withTx := func(h http.Handler) http.Handler { return h }
	if deps.DB != nil {
		withTx = middlewares.TxMiddleware(deps.DB)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(deps.Sessions))

		r.Get("/breadcrumbs", NewGetBreadcrumbsHandler(deps.History))
		r.Delete("/breadcrumbs", NewClearBreadcrumbsHandler(deps.History))
		r.Get("/history", NewGetHistoryHandler(deps.History))

		r.Group(func(r chi.Router) {
			if deps.RateLimiter != nil {
				r.Use(deps.RateLimiter.Middleware())
			}
			r.Post("/analyze", NewAnalyzeHandler(deps.Analysis))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(withTx).Post("/register", NewRegisterHandler(deps.Auth))
			r.Post("/login", NewLoginHandler(deps.Auth, deps.History, deps.Sessions))
			r.Post("/logout", NewLogoutHandler(deps.History, deps.Sessions))
			r.With(middlewares.AuthMiddleware()).Get("/me", NewMeHandler(deps.Auth))
		})

		r.Route("/users/me", func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware())
			r.Put("/password", NewChangePasswordHandler(deps.Auth))
			r.With(withTx).Delete("/", NewDeleteAccountHandler(deps.Auth, deps.History, deps.Sessions))
		})
	})

	return r
}
