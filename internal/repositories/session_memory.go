package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// sweepInterval is the minimum time between full scans for expired sessions.
const sweepInterval = time.Minute

// SessionMemoryRepository is an in-process session store. Expired records are evicted
// lazily on access and swept at most once per sweepInterval on save.
type SessionMemoryRepository struct {
	mu        sync.Mutex
	sessions  map[string]models.Session
	lastSweep time.Time
	now       func() time.Time
}

// NewSessionMemoryRepository creates a new SessionMemoryRepository.
func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (r *SessionMemoryRepository) Save(ctx context.Context, session models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= sweepInterval {
		for id, s := range r.sessions {
			if !now.Before(s.ExpiresAt) {
				delete(r.sessions, id)
			}
		}
		r.lastSweep = now
	}

	if now.Before(session.ExpiresAt) {
		r.sessions[session.ID] = session
	}
	return nil
}

func (r *SessionMemoryRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if !r.now().Before(s.ExpiresAt) {
		delete(r.sessions, sessionID)
		return nil, nil
	}
	return &s, nil
}

func (r *SessionMemoryRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
