package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"taskflow/internal/config"
)

const breakerTimeout = 5 * time.Second

// Open builds the backend selected by cfg.StorageDriver. Remote drivers are
// wrapped in a circuit breaker.
func Open(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (Backend, error) {
	switch cfg.StorageDriver {
	case "memory":
		return NewMemory(), nil
	case "sqlite":
		return NewSQLite(cfg.SQLitePath)
	case "mysql":
		b, err := NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return NewBreaker("mysql-slots", b, breakerTimeout, log), nil
	case "redis":
		b := NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := b.Ping(ctx); err != nil {
			// keep going; the breaker absorbs an unavailable server
			log.WithError(err).Warn("redis not reachable at startup")
		}
		return NewBreaker("redis-slots", b, breakerTimeout, log), nil
	case "mongo":
		b, err := NewMongo(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoCollection)
		if err != nil {
			return nil, err
		}
		return NewBreaker("mongo-slots", b, breakerTimeout, log), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
