// Package cache provides a Redis read-through cache for the hotel catalog.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to Redis at addr. It returns nil when addr is empty or the
// server does not answer a ping within two seconds; callers then run uncached.
func NewRedisClient(addr, password string, db int, log logrus.FieldLogger) *redis.Client {
	if addr == "" {
		log.Info("redis disabled: no address configured")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).WithField("addr", addr).Warn("redis unreachable, catalog cache disabled")
		_ = client.Close()
		return nil
	}
	return client
}
