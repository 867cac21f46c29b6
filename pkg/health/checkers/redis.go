package checkers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisChecker struct {
	rdb redis.Cmdable
}

func NewRedisChecker(rdb redis.Cmdable) *RedisChecker {
	return &RedisChecker{rdb: rdb}
}

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}
