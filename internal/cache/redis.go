package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"fittrack/internal/nutrientdb"

	"github.com/redis/go-redis/v9"
)

const foodLookupTTL = 24 * time.Hour

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func foodKey(name string) string {
	return "food:" + strings.ToLower(strings.TrimSpace(name))
}

// StoreFoodLookup caches a nutrient lookup result by normalized name so
// repeated searches skip the external API for a day.
func (r *RedisClient) StoreFoodLookup(ctx context.Context, name string, n nutrientdb.Nutrients) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal nutrients: %w", err)
	}
	return r.client.Set(ctx, foodKey(name), data, foodLookupTTL).Err()
}

// GetFoodLookup returns the cached nutrients for a name, or found=false on a
// miss. Cache errors are returned so callers can fall through to the source.
func (r *RedisClient) GetFoodLookup(ctx context.Context, name string) (nutrientdb.Nutrients, bool, error) {
	data, err := r.client.Get(ctx, foodKey(name)).Bytes()
	if err == redis.Nil {
		return nutrientdb.Nutrients{}, false, nil
	}
	if err != nil {
		return nutrientdb.Nutrients{}, false, fmt.Errorf("failed to read food cache: %w", err)
	}
	var n nutrientdb.Nutrients
	if err := json.Unmarshal(data, &n); err != nil {
		return nutrientdb.Nutrients{}, false, fmt.Errorf("failed to unmarshal cached nutrients: %w", err)
	}
	return n, true, nil
}
