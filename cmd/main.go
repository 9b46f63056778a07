package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/calorie-tracker/internal/config"
	"github.com/sbilibin2017/calorie-tracker/internal/database"
	_ "github.com/sbilibin2017/calorie-tracker/internal/docs"
	"github.com/sbilibin2017/calorie-tracker/internal/facades"
	"github.com/sbilibin2017/calorie-tracker/internal/handlers"
	"github.com/sbilibin2017/calorie-tracker/internal/jwt"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
	"github.com/sbilibin2017/calorie-tracker/internal/metrics"
	"github.com/sbilibin2017/calorie-tracker/internal/middlewares"
	"github.com/sbilibin2017/calorie-tracker/internal/repositories"
	"github.com/sbilibin2017/calorie-tracker/internal/security"
	"github.com/sbilibin2017/calorie-tracker/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title calorie-tracker API
// @version 1.0.0
// @description Calorie estimates for free-text meal descriptions with a per-session search history
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// newStores picks the backend for session history and session records. The returned closer
// releases its connections.
func newStores(ctx context.Context, cfg *config.Config) (services.BreadcrumbStore, middlewares.SessionStore, func(), error) {
	if cfg.HistoryStore == config.HistoryStoreMemory {
		logger.Log.Infow("using in-memory history store", "max_entries", cfg.HistoryMaxEntries)
		return repositories.NewBreadcrumbMemoryRepository(cfg.HistoryMaxEntries, cfg.SessionTTL),
			repositories.NewSessionMemoryRepository(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, nil, fmt.Errorf("redis connection error: %w", err)
	}
	logger.Log.Infow("using redis history store", "addr", cfg.RedisAddr(), "max_entries", cfg.HistoryMaxEntries)

	closer := func() {
		if err := rdb.Close(); err != nil {
			logger.Log.Errorw("failed to close redis client", "error", err)
		}
	}
	return repositories.NewBreadcrumbRedisRepository(rdb, cfg.HistoryMaxEntries, cfg.SessionTTL),
		repositories.NewSessionRedisRepository(rdb), closer, nil
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg *config.Config) *kafka.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
	}
}

// run initializes the logger, database, history store, upstream client and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.PostgresDSN()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Database migrations applied")
	}

	db, err := database.Open(ctx, cfg.PostgresDSN(), cfg.PGMaxOpenConns, cfg.PGMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Infow("Connected to PostgreSQL", "host", cfg.PGHost, "db", cfg.PGDB)

	// Session history
	store, sessionStore, closeStore, err := newStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	// Kafka publisher is optional
	var kafkaWriter services.KafkaWriter
	if w := newKafkaWriter(cfg); w != nil {
		defer w.Close()
		kafkaWriter = w
		log.Infow("Publishing analysis events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY is empty, food analysis requests will fail")
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	historyService := services.NewHistoryService(store)
	analysisService := services.NewAnalysisService(
		facades.NewOpenAIFacade(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.OpenAITimeout),
		security.NewTextSanitizer(),
		historyService,
		kafkaWriter,
		collector,
	)

	rateLimiter := middlewares.NewRateLimiter(cfg.AnalyzeRatePerMinute, cfg.AnalyzeBurst, collector)
	defer rateLimiter.Stop()

	router := handlers.NewRouter(handlers.RouterDeps{
		AppName:        cfg.AppName,
		Log:            log,
		DB:             db,
		Sessions:       middlewares.NewSessionManager(jwt.New(cfg.SessionSecretKey, cfg.SessionTTL), sessionStore, cfg.CookieSecure),
		Auth:           authService,
		History:        historyService,
		Analysis:       analysisService,
		RateLimiter:    rateLimiter,
		Metrics:        collector,
		MetricsHandler: metrics.Handler(registry),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
