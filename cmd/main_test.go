package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/sbilibin2017/calorie-tracker/internal/config"
	"github.com/sbilibin2017/calorie-tracker/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestNewStores_Memory(t *testing.T) {
	cfg := &config.Config{
		HistoryStore:      config.HistoryStoreMemory,
		HistoryMaxEntries: 5,
		SessionTTL:        time.Hour,
	}

	store, sessionStore, closer, err := newStores(context.Background(), cfg)
	require.NoError(t, err)
	defer closer()

	assert.IsType(t, &repositories.BreadcrumbMemoryRepository{}, store)
	assert.IsType(t, &repositories.SessionMemoryRepository{}, sessionStore)
}

func TestNewStores_RedisUnreachable(t *testing.T) {
	cfg := &config.Config{
		HistoryStore: config.HistoryStoreRedis,
		RedisHost:    "127.0.0.1",
		RedisPort:    1,
		SessionTTL:   time.Hour,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, _, _, err := newStores(ctx, cfg)
	assert.Error(t, err)
}

func TestNewKafkaWriter(t *testing.T) {
	assert.Nil(t, newKafkaWriter(&config.Config{}))

	w := newKafkaWriter(&config.Config{KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "analyses"})
	require.NotNil(t, w)
	assert.Equal(t, "analyses", w.Topic)
	assert.NoError(t, w.Close())
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), &config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	_, port, err := net.SplitHostPort(lis.Addr().String())
	require.NoError(t, err)
	return port
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	redisPort, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cfg := &config.Config{
		AppHost:              "127.0.0.1",
		AppPort:              freePort(t),
		AppName:              "Calorie Tracker",
		LogLevel:             "debug",
		PGHost:               pgHost,
		PGPort:               pgPort.Int(),
		PGUser:               "user",
		PGPassword:           "password",
		PGDB:                 "testdb",
		PGMaxOpenConns:       5,
		PGMaxIdleConns:       2,
		RunMigrations:        true,
		RedisHost:            redisHost,
		RedisPort:            redisPort.Int(),
		RedisPoolSize:        10,
		RedisMinIdleConns:    2,
		HistoryStore:         config.HistoryStoreRedis,
		HistoryMaxEntries:    100,
		SessionSecretKey:     "testsecret",
		SessionTTL:           time.Hour,
		OpenAIBaseURL:        "http://127.0.0.1:1/v1",
		OpenAIModel:          "gpt-4o-mini",
		OpenAITimeout:        time.Second,
		AnalyzeRatePerMinute: 10,
		AnalyzeBurst:         5,
	}

	// ------------------ Run ------------------
	testCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	baseURL := fmt.Sprintf("http://%s", cfg.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 20*time.Second, 200*time.Millisecond)

	resp, err := http.Get(baseURL + "/api/breadcrumbs")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))

	resp, err = http.Get(baseURL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "calorie_tracker_http_requests_total")

	cancel()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop after cancel")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
