package services

//go:generate mockgen -source=history.go -destination=mock_history.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// BreadcrumbStore persists the ordered breadcrumb list of each session.
type BreadcrumbStore interface {
	Append(ctx context.Context, sessionID string, b models.Breadcrumb) error
	List(ctx context.Context, sessionID string) ([]models.Breadcrumb, error)
	Clear(ctx context.Context, sessionID string) error
}

// HistoryService records analysis outcomes per session and builds the history views.
type HistoryService struct {
	store BreadcrumbStore
	now   func() time.Time
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(store BreadcrumbStore) *HistoryService {
	return &HistoryService{store: store, now: time.Now}
}

// AppendBreadcrumb stores b at the end of the session list, filling in id and timestamp when unset.
func (s *HistoryService) AppendBreadcrumb(ctx context.Context, sessionID string, b models.Breadcrumb) (models.Breadcrumb, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Timestamp.IsZero() {
		b.Timestamp = s.now().UTC()
	}
	if b.Result.Breakdown == nil {
		b.Result.Breakdown = []models.FoodItem{}
	}

	if err := s.store.Append(ctx, sessionID, b); err != nil {
		logger.Log.Errorw("failed to append breadcrumb", "session_id", sessionID, "error", err)
		return models.Breadcrumb{}, err
	}
	return b, nil
}

// GetBreadcrumbs returns the session's breadcrumbs, most recent last. Never nil.
func (s *HistoryService) GetBreadcrumbs(ctx context.Context, sessionID string) ([]models.Breadcrumb, error) {
	items, err := s.store.List(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to list breadcrumbs", "session_id", sessionID, "error", err)
		return nil, err
	}
	if items == nil {
		items = []models.Breadcrumb{}
	}
	return items, nil
}

// GetHistory returns one page of the session's searches, most recent first, with stats over
// the whole retained list. Pages past the end are empty but keep correct metadata.
func (s *HistoryService) GetHistory(ctx context.Context, sessionID string, page, pageSize int) (*models.History, error) {
	if page < 1 {
		return nil, apperrors.NewValidationError("page", "Page must be a positive integer")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, apperrors.NewValidationError("pageSize", "Page size must be between 1 and 100")
	}

	// One snapshot serves pagination and stats alike.
	snapshot, err := s.GetBreadcrumbs(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	total := len(snapshot)
	totalPages := (total + pageSize - 1) / pageSize

	searches := []models.Breadcrumb{}
	// page is bounded by totalPages before multiplying so large values cannot overflow.
	if page <= totalPages {
		start := (page - 1) * pageSize
		end := start + pageSize
		if end > total {
			end = total
		}
		for i := start; i < end; i++ {
			searches = append(searches, snapshot[total-1-i])
		}
	}

	return &models.History{
		Searches: searches,
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalItems: total,
		},
		Stats: computeStats(snapshot),
	}, nil
}

// Transfer moves every breadcrumb of fromSessionID to the end of toSessionID's list, keeping
// ids, timestamps and order, and then clears fromSessionID.
func (s *HistoryService) Transfer(ctx context.Context, fromSessionID, toSessionID string) error {
	items, err := s.store.List(ctx, fromSessionID)
	if err != nil {
		logger.Log.Errorw("failed to list breadcrumbs", "session_id", fromSessionID, "error", err)
		return err
	}

	for _, b := range items {
		if err := s.store.Append(ctx, toSessionID, b); err != nil {
			logger.Log.Errorw("failed to transfer breadcrumb", "session_id", toSessionID, "error", err)
			return err
		}
	}

	return s.Clear(ctx, fromSessionID)
}

// Clear drops the session's history.
func (s *HistoryService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to clear breadcrumbs", "session_id", sessionID, "error", err)
		return err
	}
	return nil
}

func computeStats(items []models.Breadcrumb) models.HistoryStats {
	stats := models.HistoryStats{Count: len(items)}
	if len(items) == 0 {
		return stats
	}

	first, last := items[0].Timestamp, items[0].Timestamp
	for _, b := range items {
		stats.TotalCalories += b.Result.TotalCalories
		if b.Timestamp.Before(first) {
			first = b.Timestamp
		}
		if b.Timestamp.After(last) {
			last = b.Timestamp
		}
	}
	stats.AvgCalories = stats.TotalCalories / float64(len(items))
	stats.FirstSearchAt = &first
	stats.LastSearchAt = &last

	return stats
}
