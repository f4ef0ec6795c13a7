package assistant

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const answerTTL = 7 * 24 * time.Hour

// RedisCache implements AnswerCache on the shared Redis connection.
type RedisCache struct {
	conn *redis.Client
}

func NewRedisCache(conn *redis.Client) *RedisCache {
	return &RedisCache{conn: conn}
}

func (c *RedisCache) Get(ctx context.Context, question string) (string, bool) {
	val, err := c.conn.Get(ctx, "assistant:answer:"+question).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, question, answer string) error {
	return c.conn.Set(ctx, "assistant:answer:"+question, answer, answerTTL).Err()
}
