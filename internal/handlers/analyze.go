package handlers

//go:generate mockgen -source=analyze.go -destination=mock_analyze.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// Analyzer estimates a food description and records it in the session history.
type Analyzer interface {
	AnalyzeAndRecord(ctx context.Context, sessionID, description string) (*models.AnalysisResult, error)
}

// NewAnalyzeHandler returns an HTTP handler for food analysis.
// @Summary Analyze a food description
// @Description Estimates calories and macros for a free-text description and records the search in the session history.
// @Description Incomplete upstream answers come back with degraded=true and confidence=low.
// @Tags analysis
// @Accept json
// @Produce json
// @Param analyzeRequest body models.AnalyzeRequest true "Food description"
// @Success 200 {object} models.SuccessResponse{data=models.AnalysisResult}
// @Failure 400 {object} models.ErrorResponse "Empty or too long description"
// @Failure 429 {object} models.ErrorResponse "Rate limited"
// @Failure 502 {object} models.ErrorResponse "Upstream answer unusable"
// @Failure 503 {object} models.ErrorResponse "Upstream timed out"
// @Router /api/analyze [post]
func NewAnalyzeHandler(svc Analyzer) http.HandlerFunc {
	return middlewares.HandleErrors(func(w http.ResponseWriter, r *http.Request) error {
		session, err := currentSession(r)
		if err != nil {
			return err
		}

		var req models.AnalyzeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return err
		}

		result, err := svc.AnalyzeAndRecord(r.Context(), session.ID, req.Description)
		if err != nil {
			return err
		}

		middlewares.WriteSuccess(w, http.StatusOK, result)
		return nil
	})
}
