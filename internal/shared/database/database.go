package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campora/internal/shared/config"
	"campora/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB holds all database connections
type DB struct {
	PostgreSQL *gorm.DB
	Redis      *redis.Client
	config     *config.Config
	logger     *logger.Logger
}

// New creates database connections for PostgreSQL and Redis
func New(cfg *config.Config, appLogger *logger.Logger) (*DB, error) {
	db := &DB{
		config: cfg,
		logger: appLogger,
	}

	if err := db.connectPostgreSQL(); err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if err := db.connectRedis(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func (db *DB) connectPostgreSQL() error {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if db.config.IsDevelopment() {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	gormDB, err := gorm.Open(postgres.Open(db.config.Database.DSN), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(db.config.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(db.config.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(db.config.Database.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	db.PostgreSQL = gormDB
	db.logger.Info("Connected to PostgreSQL",
		slog.String("host", db.config.Database.Host),
		slog.String("database", db.config.Database.Name),
	)

	return nil
}

func (db *DB) connectRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:         db.config.Redis.Addr,
		Password:     db.config.Redis.Password,
		DB:           db.config.Redis.DB,
		PoolSize:     db.config.Redis.PoolSize,
		MinIdleConns: db.config.Redis.MinIdleConns,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}

	db.Redis = client
	db.logger.Info("Connected to Redis", slog.String("addr", db.config.Redis.Addr))

	return nil
}

// HealthCheck verifies all database connections are alive
func (db *DB) HealthCheck(ctx context.Context) map[string]string {
	health := make(map[string]string)

	if sqlDB, err := db.PostgreSQL.DB(); err != nil {
		health["postgresql"] = "error: " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		health["postgresql"] = "error: " + err.Error()
	} else {
		health["postgresql"] = "healthy"
	}

	if err := db.Redis.Ping(ctx).Err(); err != nil {
		health["redis"] = "error: " + err.Error()
	} else {
		health["redis"] = "healthy"
	}

	return health
}

// Close closes all database connections
func (db *DB) Close() error {
	var errs []error

	if db.PostgreSQL != nil {
		if sqlDB, err := db.PostgreSQL.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close PostgreSQL: %w", err))
			}
		}
	}

	if db.Redis != nil {
		if err := db.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing databases: %v", errs)
	}

	db.logger.Info("All database connections closed")
	return nil
}

// GetPostgreSQL returns the GORM database instance
func (db *DB) GetPostgreSQL() *gorm.DB {
	return db.PostgreSQL
}

// GetRedisClient returns the Redis client
func (db *DB) GetRedisClient() *redis.Client {
	return db.Redis
}
