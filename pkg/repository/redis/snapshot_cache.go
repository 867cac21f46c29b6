package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Withvansh/college-fest-sub003/pkg/jobsearch"
)

// DefaultSnapshotKey: ключ общего снимка коллекции вакансий.
const DefaultSnapshotKey = "jobs:snapshot"

// SnapshotCache реализует jobs.SnapshotCache поверх Redis: коллекция
// хранится одним JSON-значением с TTL.
type SnapshotCache struct {
	rdb redis.Cmdable
	key string
	ttl time.Duration
}

func NewSnapshotCache(rdb redis.Cmdable, key string, ttl time.Duration) *SnapshotCache {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &SnapshotCache{rdb: rdb, key: key, ttl: ttl}
}

// Load возвращает ok=false, если снимка нет.
func (c *SnapshotCache) Load(ctx context.Context) ([]jobsearch.JobPosting, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", c.key, err)
	}
	var list []jobsearch.JobPosting
	if err := json.Unmarshal(raw, &list); err != nil {
		// битое значение считаем промахом, его перезапишет следующий Store
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	if list == nil {
		list = []jobsearch.JobPosting{}
	}
	return list, true, nil
}

func (c *SnapshotCache) Store(ctx context.Context, list []jobsearch.JobPosting) error {
	if list == nil {
		list = []jobsearch.JobPosting{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", c.key, err)
	}
	return nil
}

func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", c.key, err)
	}
	return nil
}
