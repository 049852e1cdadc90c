package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/domain/repository"
)

const (
	tierRatingsKeyPrefix = "pharmafinder:tiers:"
	pharmaciesKeyPrefix  = "pharmafinder:pharmacies:"
	unboundedKey         = "all"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCacheRepository создает кеш ответов поверх Redis
func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetTierRatings получает tier-лист области; nil, nil - промах
func (r *cacheRepository) GetTierRatings(ctx context.Context, bounds domain.Bounds) ([]domain.PharmacyTierRating, error) {
	var ratings []domain.PharmacyTierRating
	found, err := r.getJSON(ctx, TierRatingsKey(bounds), &ratings)
	if err != nil || !found {
		return nil, err
	}
	return ratings, nil
}

func (r *cacheRepository) SetTierRatings(ctx context.Context, bounds domain.Bounds, ratings []domain.PharmacyTierRating, ttl time.Duration) error {
	return r.setJSON(ctx, TierRatingsKey(bounds), ratings, ttl)
}

// InvalidateTierRatings удаляет все закешированные tier-листы.
// Вызывается после изменения отзывов, т.к. агрегаты устаревают.
func (r *cacheRepository) InvalidateTierRatings(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, tierRatingsKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.logger.Error("Failed to scan tier rating keys", zap.Error(err))
		return fmt.Errorf("cache scan error: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("Failed to invalidate tier ratings", zap.Int("keys", len(keys)), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Tier ratings invalidated", zap.Int("keys", len(keys)))
	return nil
}

// GetPharmacies получает список аптек области; nil, nil - промах
func (r *cacheRepository) GetPharmacies(ctx context.Context, bounds *domain.Bounds) ([]domain.PharmacyInfo, error) {
	var pharmacies []domain.PharmacyInfo
	found, err := r.getJSON(ctx, PharmaciesKey(bounds), &pharmacies)
	if err != nil || !found {
		return nil, err
	}
	return pharmacies, nil
}

func (r *cacheRepository) SetPharmacies(ctx context.Context, bounds *domain.Bounds, pharmacies []domain.PharmacyInfo, ttl time.Duration) error {
	return r.setJSON(ctx, PharmaciesKey(bounds), pharmacies, ttl)
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return r.Set(ctx, key, data, ttl)
}

// TierRatingsKey - ключ кеша tier-листа области
func TierRatingsKey(bounds domain.Bounds) string {
	return tierRatingsKeyPrefix + bounds.CacheKey()
}

// PharmaciesKey - ключ кеша списка аптек; nil область кешируется отдельным ключом
func PharmaciesKey(bounds *domain.Bounds) string {
	if bounds == nil {
		return pharmaciesKeyPrefix + unboundedKey
	}
	return pharmaciesKeyPrefix + bounds.CacheKey()
}
