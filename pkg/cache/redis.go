package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"quiz-platform/internal/models"
)

const topStudentsKey = "leaderboard:top-students"

// topStudentsTTL bounds how stale the leaderboard can get; coin
// balances change outside the visible flows.
const topStudentsTTL = time.Minute

type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: client,
		ctx:    context.Background(),
	}
}

func (c *RedisCache) SetTopStudents(entries []models.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(c.ctx, topStudentsKey, data, topStudentsTTL).Err()
}

func (c *RedisCache) GetTopStudents() ([]models.LeaderboardEntry, error) {
	data, err := c.client.Get(c.ctx, topStudentsKey).Bytes()
	if err != nil {
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *RedisCache) InvalidateTopStudents() error {
	return c.client.Del(c.ctx, topStudentsKey).Err()
}
