// Package config loads the service configuration from an env file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// History store backends.
const (
	HistoryStoreRedis  = "redis"
	HistoryStoreMemory = "memory"
)

// Config holds all application, database, Redis, session, LLM, rate limit and Kafka settings.
type Config struct {
	// Application
	AppHost  string
	AppPort  string
	AppName  string
	LogLevel string

	// PostgreSQL
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	RunMigrations  bool

	// Redis
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	// History
	HistoryStore      string
	HistoryMaxEntries int

	// Session
	SessionSecretKey string
	SessionTTL       time.Duration
	CookieSecure     bool

	// OpenAI
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAITimeout time.Duration

	// Rate limit for analysis requests, per session
	AnalyzeRatePerMinute int
	AnalyzeBurst         int

	// Kafka
	KafkaBrokers []string
	KafkaTopic   string
}

// Addr returns host:port of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// PostgresDSN returns the connection URL of the users database.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Load reads variables from the env file at path (a missing file is not an error)
// and fills a Config, falling back to defaults for unset keys.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.AppName = getEnv("APP_NAME", "Calorie Tracker")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.RunMigrations, err = getEnvBool("RUN_MIGRATIONS", true); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}

	// History config
	cfg.HistoryStore = strings.ToLower(getEnv("HISTORY_STORE", HistoryStoreRedis))
	if cfg.HistoryStore != HistoryStoreRedis && cfg.HistoryStore != HistoryStoreMemory {
		return nil, fmt.Errorf("HISTORY_STORE must be %q or %q, got %q", HistoryStoreRedis, HistoryStoreMemory, cfg.HistoryStore)
	}
	if cfg.HistoryMaxEntries, err = getEnvPositiveInt("HISTORY_MAX_ENTRIES", 100); err != nil {
		return nil, err
	}

	// Session config
	cfg.SessionSecretKey = getEnv("SESSION_SECRET_KEY", "my_super_secret_key")
	ttlSecond, err := getEnvPositiveInt("SESSION_TTL_SECOND", 86400)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = time.Duration(ttlSecond) * time.Second
	if cfg.CookieSecure, err = getEnvBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}

	// OpenAI config
	cfg.OpenAIAPIKey = getEnv("OPENAI_API_KEY", "")
	cfg.OpenAIBaseURL = getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")
	cfg.OpenAIModel = getEnv("OPENAI_MODEL", "gpt-4o-mini")
	timeoutSecond, err := getEnvPositiveInt("OPENAI_TIMEOUT_SECOND", 30)
	if err != nil {
		return nil, err
	}
	cfg.OpenAITimeout = time.Duration(timeoutSecond) * time.Second

	// Rate limit config
	if cfg.AnalyzeRatePerMinute, err = getEnvPositiveInt("ANALYZE_RATE_PER_MINUTE", 20); err != nil {
		return nil, err
	}
	if cfg.AnalyzeBurst, err = getEnvPositiveInt("ANALYZE_BURST", 5); err != nil {
		return nil, err
	}

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "food-analysis-events")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvPositiveInt(key string, defaultValue int) (int, error) {
	v, err := getEnvInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, v)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
