package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	dom "github.com/2-Sungyoon/likelion-todolist-BE/internal/domain"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/repo"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "todo:list:"

// TodoCache caches per-user todo list query results in Redis.
// Keys carry the full filter so every (month, day, sort) combination is
// cached independently; any write invalidates all of the user's keys.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// ListKey builds the cache key for a user's list query.
func ListKey(userID int64, f repo.TodoFilter) string {
	return fmt.Sprintf("%s%d:m%d:d%d:%s", keyPrefix, userID, f.Month, f.Day, f.SortBy)
}

// GetList returns the cached list for the key, or nil on miss.
func (c *TodoCache) GetList(ctx context.Context, key string) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Todo
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores a list result under the key.
func (c *TodoCache) SetList(ctx context.Context, key string, list []dom.Todo) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

// InvalidateUser removes every cached list for the user (cache
// invalidation on write).
func (c *TodoCache) InvalidateUser(ctx context.Context, userID int64) error {
	pattern := fmt.Sprintf("%s%d:*", keyPrefix, userID)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
