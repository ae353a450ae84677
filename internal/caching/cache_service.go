package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hospsupply/internal/models"
)

// CacheService wraps every Redis concern the application has: rate-limit
// counters and the catalog read cache.
type CacheService interface {
	// Rate limiting (fixed window counters).
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error)

	// Catalog caching.
	GetCatalogEntry(ctx context.Context, publicID string) (*models.CatalogEntry, error)
	SetCatalogEntry(ctx context.Context, entry *models.CatalogEntry, ttl time.Duration) error
	GetCatalogPage(ctx context.Context, page, size int) ([]*models.CatalogEntry, bool, error)
	SetCatalogPage(ctx context.Context, page, size int, entries []*models.CatalogEntry, ttl time.Duration) error
	InvalidateCatalog(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisCacheService(addr, password string, db int, logger *zap.Logger) CacheService {
	// Accept redis:// and rediss:// style addresses.
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "rediss://"), "redis://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis ping failed on initialization", zap.String("addr", parsedAddr), zap.Error(err))
	}

	return &redisCacheService{client: client, logger: logger}
}

func (r *redisCacheService) IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		r.client.Expire(ctx, key, window)
	}
	return count, nil
}

func catalogEntryKey(publicID string) string {
	return fmt.Sprintf("hospsupply:catalog:entry:%s", publicID)
}

func catalogPageKey(page, size int) string {
	return fmt.Sprintf("hospsupply:catalog:page:%d:%d", page, size)
}

func (r *redisCacheService) GetCatalogEntry(ctx context.Context, publicID string) (*models.CatalogEntry, error) {
	data, err := r.client.Get(ctx, catalogEntryKey(publicID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}
	var entry models.CatalogEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *redisCacheService) SetCatalogEntry(ctx context.Context, entry *models.CatalogEntry, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, catalogEntryKey(entry.PublicID.String()), data, ttl).Err()
}

func (r *redisCacheService) GetCatalogPage(ctx context.Context, page, size int) ([]*models.CatalogEntry, bool, error) {
	data, err := r.client.Get(ctx, catalogPageKey(page, size)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var entries []*models.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func (r *redisCacheService) SetCatalogPage(ctx context.Context, page, size int, entries []*models.CatalogEntry, ttl time.Duration) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, catalogPageKey(page, size), data, ttl).Err()
}

func (r *redisCacheService) InvalidateCatalog(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, "hospsupply:catalog:*").Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
