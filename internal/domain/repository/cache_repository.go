package repository

import (
	"context"
	"time"

	"github.com/pharmafinder-client/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetTierRatings получает tier-лист области из кеша
	GetTierRatings(ctx context.Context, bounds domain.Bounds) ([]domain.PharmacyTierRating, error)

	// SetTierRatings сохраняет tier-лист области в кеше
	SetTierRatings(ctx context.Context, bounds domain.Bounds, ratings []domain.PharmacyTierRating, ttl time.Duration) error

	// InvalidateTierRatings удаляет все закешированные tier-листы
	InvalidateTierRatings(ctx context.Context) error

	// GetPharmacies получает список аптек области из кеша
	GetPharmacies(ctx context.Context, bounds *domain.Bounds) ([]domain.PharmacyInfo, error)

	// SetPharmacies сохраняет список аптек области в кеше
	SetPharmacies(ctx context.Context, bounds *domain.Bounds, pharmacies []domain.PharmacyInfo, ttl time.Duration) error
}
