package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Weryck-Lemos/ElectroStock/internal/models"

	"github.com/go-redis/redis/v8"
)

// Client caches catalog listings. Category and item lists are read far more
// often than they change, so listings are served from Redis and invalidated
// on every catalog mutation.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

const (
	itemsKey      = "catalog:items"
	categoriesKey = "catalog:categories"
)

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

func (c *Client) SetItems(items []models.Item) error {
	return c.set(itemsKey, items)
}

// GetItems returns (nil, nil) on a cache miss.
func (c *Client) GetItems() ([]models.Item, error) {
	var items []models.Item
	ok, err := c.get(itemsKey, &items)
	if err != nil || !ok {
		return nil, err
	}
	return items, nil
}

func (c *Client) SetCategories(categories []models.Category) error {
	return c.set(categoriesKey, categories)
}

// GetCategories returns (nil, nil) on a cache miss.
func (c *Client) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	ok, err := c.get(categoriesKey, &categories)
	if err != nil || !ok {
		return nil, err
	}
	return categories, nil
}

// InvalidateItems drops the cached item listing. Stock changes go through
// here too, not only catalog edits.
func (c *Client) InvalidateItems() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, itemsKey).Err()
}

func (c *Client) InvalidateCategories() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, categoriesKey).Err()
}

func (c *Client) set(key string, value interface{}) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}
	return c.rdb.Set(ctx, key, jsonData, c.ttl).Err()
}

func (c *Client) get(key string, dest interface{}) (bool, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache data: %w", err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}
	return true, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
