package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/sbilibin2017/calorie-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRedisRepository(t *testing.T) {
	rdb := setupRedisContainer(t)
	ctx := context.Background()

	repo := NewSessionRedisRepository(rdb)

	t.Run("unknown session", func(t *testing.T) {
		got, err := repo.Get(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("save and get", func(t *testing.T) {
		session := models.Session{ID: "sid-1", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second)}
		require.NoError(t, repo.Save(ctx, session))

		got, err := repo.Get(ctx, "sid-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "user-1", got.UserID)
		assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))

		ttl, err := rdb.TTL(ctx, "session:sid-1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 59*time.Minute)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, models.Session{ID: "sid-2", ExpiresAt: time.Now().Add(time.Hour)}))
		require.NoError(t, repo.Delete(ctx, "sid-2"))

		got, err := repo.Get(ctx, "sid-2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired session is not stored", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, models.Session{ID: "sid-3", ExpiresAt: time.Now().Add(-time.Minute)}))

		got, err := repo.Get(ctx, "sid-3")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("record expires with the token", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, models.Session{ID: "sid-4", ExpiresAt: time.Now().Add(1500 * time.Millisecond)}))

		time.Sleep(2500 * time.Millisecond)

		got, err := repo.Get(ctx, "sid-4")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
