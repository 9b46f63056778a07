package handlers

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// monotonicClock hands out strictly increasing timestamps even if the wall clock stalls.
type monotonicClock struct {
	last atomic.Int64
	now  func() time.Time
}

func (c *monotonicClock) next() time.Time {
	for {
		prev := c.last.Load()
		n := c.now().UnixNano()
		if n <= prev {
			n = prev + 1
		}
		if c.last.CompareAndSwap(prev, n) {
			return time.Unix(0, n).UTC()
		}
	}
}

// NewHealthHandler returns an HTTP handler for liveness checks.
// @Summary Health check
// @Description Reports that the service is up. Timestamps strictly increase between calls.
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return newHealthHandler(time.Now)
}

func newHealthHandler(now func() time.Time) http.HandlerFunc {
	clock := &monotonicClock{now: now}
	return func(w http.ResponseWriter, r *http.Request) {
		middlewares.WriteJSON(w, http.StatusOK, models.HealthResponse{
			Status:    "OK",
			Timestamp: clock.next().Format(time.RFC3339Nano),
		})
	}
}
