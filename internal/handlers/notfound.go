package handlers

import (
	"net/http"

	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// NewNotFoundHandler answers every unmatched route, including a known path with the wrong method.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middlewares.WriteJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Route not found"})
	}
}
