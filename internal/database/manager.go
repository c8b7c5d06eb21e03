package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/OsherKoren/trip-assistant/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database connection manager
type Manager struct {
	DB     *gorm.DB
	Redis  *redis.Client
	logger *logrus.Logger
}

// Database configuration
type Config struct {
	DatabaseURL string
	RedisURL    string
	LogLevel    string
}

// NewManager creates a new database manager with connection pooling
func NewManager(config *Config, logger *logrus.Logger) (*Manager, error) {
	gormLogger := gormlogger.Default.LogMode(gormlogger.Silent)
	if config.LogLevel == "debug" {
		gormLogger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(postgres.Open(config.DatabaseURL), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	manager := &Manager{DB: db, logger: logger}

	if config.RedisURL != "" {
		redisOpts, err := redis.ParseURL(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}

		redisOpts.PoolSize = 20
		redisOpts.MinIdleConns = 5

		redisClient := redis.NewClient(redisOpts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		manager.Redis = redisClient
	}

	logger.Info("Database connections established successfully")

	return manager, nil
}

// Migrate runs database migrations
func (m *Manager) Migrate() error {
	m.logger.Info("Running database migrations...")

	return m.DB.AutoMigrate(
		&models.Message{},
		&models.Feedback{},
		&models.SystemHealth{},
	)
}

// Close closes all database connections
func (m *Manager) Close() error {
	if m.Redis != nil {
		if err := m.Redis.Close(); err != nil {
			m.logger.WithError(err).Error("Failed to close Redis connection")
		}
	}

	if m.DB != nil {
		sqlDB, err := m.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

// Health check methods
func (m *Manager) PingDatabase() error {
	sqlDB, err := m.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (m *Manager) PingRedis() error {
	if m.Redis == nil {
		return fmt.Errorf("redis not configured")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Redis.Ping(ctx).Err()
}

// Cache wraps the Redis client for answer caching. Identical questions hit
// the cache instead of re-running the pipeline's two model calls.
type Cache struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewCache(client *redis.Client, logger *logrus.Logger) *Cache {
	return &Cache{
		client: client,
		logger: logger,
	}
}

// Cache key constants
const (
	answerKey = "assistant:answer:%s"
)

// CacheAnswer stores a pipeline result under the normalized-question hash.
func (c *Cache) CacheAnswer(ctx context.Context, questionHash string, result interface{}, expiration time.Duration) error {
	key := fmt.Sprintf(answerKey, questionHash)

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}

	return c.client.Set(ctx, key, data, expiration).Err()
}

// GetCachedAnswer retrieves a cached pipeline result.
func (c *Cache) GetCachedAnswer(ctx context.Context, questionHash string, result interface{}) error {
	key := fmt.Sprintf(answerKey, questionHash)

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), result)
}

// InvalidateAnswer removes a cached answer.
func (c *Cache) InvalidateAnswer(ctx context.Context, questionHash string) error {
	key := fmt.Sprintf(answerKey, questionHash)
	return c.client.Del(ctx, key).Err()
}
