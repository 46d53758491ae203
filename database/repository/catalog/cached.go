package catalogRepo

import (
	"context"
	"encoding/json"
	"time"

	"framelight/models"

	"github.com/go-redis/redis/v8"
)

const (
	portfolioCacheKey = "catalog:portfolio"
	packagesCacheKey  = "catalog:packages"
)

// Cache is the small byte cache the read-through layer needs. A Get miss is
// reported as redis.Nil.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache adapts a redis client to the Cache interface.
type RedisCache struct {
	Client *redis.Client
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.Client.Get(ctx, key).Bytes()
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

// CachedCatalogRepo is a read-through cache in front of a CatalogRepository.
// The catalog is static content, so a short TTL keeps the hot path off Mongo
// while still picking up administrative edits.
type CachedCatalogRepo struct {
	Inner CatalogRepository
	Cache Cache
	TTL   time.Duration
}

func NewCachedCatalogRepo(inner CatalogRepository, cache Cache, ttl time.Duration) *CachedCatalogRepo {
	return &CachedCatalogRepo{Inner: inner, Cache: cache, TTL: ttl}
}

func (r *CachedCatalogRepo) Portfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	if data, err := r.Cache.Get(ctx, portfolioCacheKey); err == nil {
		var items []models.PortfolioItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
	}

	items, err := r.Inner.Portfolio(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(items); err == nil {
		// Cache write failures degrade to uncached reads.
		_ = r.Cache.Set(ctx, portfolioCacheKey, data, r.TTL)
	}
	return items, nil
}

func (r *CachedCatalogRepo) Packages(ctx context.Context) ([]models.Package, error) {
	if data, err := r.Cache.Get(ctx, packagesCacheKey); err == nil {
		var pkgs []models.Package
		if err := json.Unmarshal(data, &pkgs); err == nil {
			return pkgs, nil
		}
	}

	pkgs, err := r.Inner.Packages(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(pkgs); err == nil {
		_ = r.Cache.Set(ctx, packagesCacheKey, data, r.TTL)
	}
	return pkgs, nil
}
