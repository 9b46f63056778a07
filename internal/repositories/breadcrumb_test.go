package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/calorie-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) *redis.Client {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { redisC.Terminate(ctx) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	t.Cleanup(func() { rdb.Close() })

	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

func newTestBreadcrumb(i int) models.Breadcrumb {
	return models.Breadcrumb{
		ID:        fmt.Sprintf("b-%d", i),
		Timestamp: time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
		Query:     fmt.Sprintf("query %d", i),
		Result: models.AnalysisSummary{
			TotalCalories: float64(i * 10),
			ServingSize:   "1 plate",
			Breakdown:     []models.FoodItem{},
			Confidence:    models.ConfidenceHigh,
		},
	}
}

func TestBreadcrumbRedisRepository(t *testing.T) {
	rdb := setupRedisContainer(t)
	ctx := context.Background()

	repo := NewBreadcrumbRedisRepository(rdb, 5, 2*time.Second)

	t.Run("unknown session is empty", func(t *testing.T) {
		got, err := repo.List(ctx, "nobody")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("append keeps order", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			require.NoError(t, repo.Append(ctx, "s1", newTestBreadcrumb(i)))
		}

		got, err := repo.List(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "b-1", got[0].ID)
		assert.Equal(t, "b-3", got[2].ID)
		assert.Equal(t, float64(30), got[2].Result.TotalCalories)
	})

	t.Run("oldest entries are trimmed", func(t *testing.T) {
		for i := 1; i <= 8; i++ {
			require.NoError(t, repo.Append(ctx, "s2", newTestBreadcrumb(i)))
		}

		got, err := repo.List(ctx, "s2")
		require.NoError(t, err)
		require.Len(t, got, 5)
		assert.Equal(t, "b-4", got[0].ID)
		assert.Equal(t, "b-8", got[4].ID)
	})

	t.Run("concurrent appends are not lost", func(t *testing.T) {
		big := NewBreadcrumbRedisRepository(rdb, 100, time.Minute)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, big.Append(ctx, "s3", newTestBreadcrumb(i)))
			}(i)
		}
		wg.Wait()

		got, err := big.List(ctx, "s3")
		require.NoError(t, err)
		assert.Len(t, got, 20)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, repo.Append(ctx, "s4", newTestBreadcrumb(1)))
		require.NoError(t, repo.Clear(ctx, "s4"))

		got, err := repo.List(ctx, "s4")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("list expires", func(t *testing.T) {
		require.NoError(t, repo.Append(ctx, "s5", newTestBreadcrumb(1)))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		got, err := repo.List(ctx, "s5")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
