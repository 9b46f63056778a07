package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

type memorySession struct {
	items     []models.Breadcrumb
	expiresAt time.Time
}

// BreadcrumbMemoryRepository is an in-process breadcrumb store with the same retention and
// expiry rules as the Redis one. Expired sessions are evicted lazily on access.
type BreadcrumbMemoryRepository struct {
	mu         sync.Mutex
	sessions   map[string]*memorySession
	maxEntries int
	exp        time.Duration
	now        func() time.Time
}

// NewBreadcrumbMemoryRepository creates a repository retaining at most maxEntries per session.
func NewBreadcrumbMemoryRepository(maxEntries int, expiration time.Duration) *BreadcrumbMemoryRepository {
	return &BreadcrumbMemoryRepository{
		sessions:   make(map[string]*memorySession),
		maxEntries: maxEntries,
		exp:        expiration,
		now:        time.Now,
	}
}

// lookup returns the live session entry or nil. Callers hold mu.
func (r *BreadcrumbMemoryRepository) lookup(sessionID string) *memorySession {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	if r.exp > 0 && !r.now().Before(s.expiresAt) {
		delete(r.sessions, sessionID)
		return nil
	}
	return s
}

func (r *BreadcrumbMemoryRepository) Append(ctx context.Context, sessionID string, b models.Breadcrumb) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.lookup(sessionID)
	if s == nil {
		s = &memorySession{}
		r.sessions[sessionID] = s
	}

	s.items = append(s.items, b)
	if over := len(s.items) - r.maxEntries; over > 0 {
		s.items = append([]models.Breadcrumb(nil), s.items[over:]...)
	}
	s.expiresAt = r.now().Add(r.exp)

	return nil
}

// List returns a copy of the session's breadcrumbs, oldest first.
func (r *BreadcrumbMemoryRepository) List(ctx context.Context, sessionID string) ([]models.Breadcrumb, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.lookup(sessionID)
	if s == nil {
		return []models.Breadcrumb{}, nil
	}

	out := make([]models.Breadcrumb, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (r *BreadcrumbMemoryRepository) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
