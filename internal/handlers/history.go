package handlers

//go:generate mockgen -source=history.go -destination=mock_history.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
	"github.com/sbilibin2017/calorie-tracker/internal/services"
)

// HistoryGetter returns one page of a session's history.
type HistoryGetter interface {
	GetHistory(ctx context.Context, sessionID string, page, pageSize int) (*models.History, error)
}

// NewGetHistoryHandler returns an HTTP handler for the paginated history view.
// @Summary Paginated search history
// @Description Returns the session's searches most recent first, with pagination and stats
// @Tags history
// @Produce json
// @Param page query int false "Page number, starting at 1" default(1)
// @Param pageSize query int false "Items per page, 1-100" default(10)
// @Success 200 {object} models.SuccessResponse{data=models.History}
// @Failure 400 {object} models.ErrorResponse "Invalid page or pageSize"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/history [get]
func NewGetHistoryHandler(svc HistoryGetter) http.HandlerFunc {
	return middlewares.HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		session, err := currentSession(r)
		if err != nil {
			return err
		}

		page, err := queryInt(r, "page", 1)
		if err != nil {
			return err
		}
		pageSize, err := queryInt(r, "pageSize", services.DefaultPageSize)
		if err != nil {
			return err
		}

		history, err := svc.GetHistory(r.Context(), session.ID, page, pageSize)
		if err != nil {
			return err
		}

		middlewares.WriteSuccess(w, http.StatusOK, history)
		return nil
	})
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(key, key+" must be an integer")
	}
	return v, nil
}
