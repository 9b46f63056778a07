package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// SessionRedisRepository keeps the server-side record of live sessions in Redis.
// A record expires together with its token.
type SessionRedisRepository struct {
	client *redis.Client
}

// NewSessionRedisRepository creates a new SessionRedisRepository.
func NewSessionRedisRepository(client *redis.Client) *SessionRedisRepository {
	return &SessionRedisRepository{client: client}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save stores the session until its expiry. Already expired sessions are not stored.
func (r *SessionRedisRepository) Save(ctx context.Context, session models.Session) error {
	key := sessionKey(session.ID)

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, payload, ttl).Err()

	logger.Log.Infow(
		"key", key,
		"result", "saved",
		"error", err,
	)

	return err
}

// Get returns the live session or nil when it was never stored, expired or was deleted.
func (r *SessionRedisRepository) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get session", "key", key, "error", err)
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(val, &session); err != nil {
		logger.Log.Errorw("discarding undecodable session", "key", key, "error", err)
		return nil, nil
	}
	return &session, nil
}

// Delete removes the session record.
func (r *SessionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
