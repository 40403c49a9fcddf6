package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrCacheMiss возвращается, когда ключа нет в кэше
	ErrCacheMiss = errors.New("rediscache: cache miss")

	// ErrCache возвращается при ошибках Redis или сериализации
	ErrCache = errors.New("rediscache: cache error")
)

// Options параметры подключения к Redis
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// Cache JSON-кэш поверх Redis с общим TTL и префиксом ключей
type Cache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewClient создает клиента Redis и проверяет соединение
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("%w: redis addr is empty", ErrCache)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping failed: %v", ErrCache, err)
	}

	return client, nil
}

// New создает кэш
func New(client redis.UniversalClient, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

// Get читает значение ключа в dst
func (c *Cache) Get(ctx context.Context, key string, dst interface{}) error {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("%w: get %s: %v", ErrCache, key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrCache, key, err)
	}
	return nil
}

// Set сохраняет значение с TTL кэша
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrCache, key, err)
	}

	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCache, key, err)
	}
	return nil
}

// Delete удаляет ключ
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrCache, key, err)
	}
	return nil
}

func (c *Cache) key(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}
