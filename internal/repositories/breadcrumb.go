package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
)

// BreadcrumbRedisRepository keeps each session's breadcrumbs in a Redis list.
type BreadcrumbRedisRepository struct {
	client     *redis.Client
	maxEntries int
	exp        time.Duration // expiration of a session list, refreshed on append
}

// NewBreadcrumbRedisRepository creates a repository retaining at most maxEntries per session.
func NewBreadcrumbRedisRepository(client *redis.Client, maxEntries int, expiration time.Duration) *BreadcrumbRedisRepository {
	return &BreadcrumbRedisRepository{
		client:     client,
		maxEntries: maxEntries,
		exp:        expiration,
	}
}

func breadcrumbKey(sessionID string) string {
	return fmt.Sprintf("breadcrumbs:%s", sessionID)
}

// Append pushes b to the end of the session list, trims the oldest entries and refreshes the TTL
// in a single MULTI/EXEC.
func (r *BreadcrumbRedisRepository) Append(ctx context.Context, sessionID string, b models.Breadcrumb) error {
	key := breadcrumbKey(sessionID)

	payload, err := json.Marshal(b)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		pipe.LTrim(ctx, key, int64(-r.maxEntries), -1)
		if r.exp > 0 {
			pipe.Expire(ctx, key, r.exp)
		}
		return nil
	})

	logger.Log.Infow(
		"key", key,
		"breadcrumb_id", b.ID,
		"result", "ok",
		"error", err,
	)

	return err
}

// List returns the session's breadcrumbs, oldest first. An unknown session yields an empty slice.
func (r *BreadcrumbRedisRepository) List(ctx context.Context, sessionID string) ([]models.Breadcrumb, error) {
	key := breadcrumbKey(sessionID)

	vals, err := r.client.LRange(ctx, key, 0, -1).Result()
	logger.Log.Infow(
		"key", key,
		"result", len(vals),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	out := make([]models.Breadcrumb, 0, len(vals))
	for _, v := range vals {
		var b models.Breadcrumb
		if err := json.Unmarshal([]byte(v), &b); err != nil {
			logger.Log.Errorw("skipping undecodable breadcrumb", "key", key, "error", err)
			continue
		}
		out = append(out, b)
	}

	return out, nil
}

// Clear drops the session list.
func (r *BreadcrumbRedisRepository) Clear(ctx context.Context, sessionID string) error {
	key := breadcrumbKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
