package handlers

//go:generate mockgen -source=breadcrumbs.go -destination=mock_breadcrumbs.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// BreadcrumbLister returns a session's breadcrumbs, oldest first.
type BreadcrumbLister interface {
	GetBreadcrumbs(ctx context.Context, sessionID string) ([]models.Breadcrumb, error)
}

// HistoryClearer drops a session's breadcrumbs.
type HistoryClearer interface {
	Clear(ctx context.Context, sessionID string) error
}

// NewGetBreadcrumbsHandler returns an HTTP handler listing the session's breadcrumbs.
// @Summary List breadcrumbs
// @Description Returns every retained search of the current session, most recent last
// @Tags history
// @Produce json
// @Success 200 {object} models.SuccessResponse{data=[]models.Breadcrumb}
// @Failure 500 {object} models.ErrorResponse
// @Router /api/breadcrumbs [get]
func NewGetBreadcrumbsHandler(svc BreadcrumbLister) http.HandlerFunc {
	return middlewares.HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		session, err := currentSession(r)
		if err != nil {
			return err
		}

		items, err := svc.GetBreadcrumbs(r.Context(), session.ID)
		if err != nil {
			return err
		}
		if items == nil {
			items = []models.Breadcrumb{}
		}

		middlewares.WriteSuccess(w, http.StatusOK, items)
		return nil
	})
}

// NewClearBreadcrumbsHandler returns an HTTP handler that empties the session's history.
// @Summary Clear breadcrumbs
// @Tags history
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/breadcrumbs [delete]
func NewClearBreadcrumbsHandler(svc HistoryClearer) http.HandlerFunc {
	return middlewares.HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		session, err := currentSession(r)
		if err != nil {
			return err
		}

		if err := svc.Clear(r.Context(), session.ID); err != nil {
			return err
		}

		middlewares.WriteSuccess(w, http.StatusOK, nil)
		return nil
	})
}
