package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/domain/repository"
	"github.com/pharmafinder-client/internal/store"
)

// RatingUseCase - загрузка оценок аптеки и tier-листа
type RatingUseCase struct {
	ratingRepo repository.RatingRepository
	cacheRepo  repository.CacheRepository
	stores     *store.Stores
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewRatingUseCase - создание нового RatingUseCase. cacheRepo может быть nil.
func NewRatingUseCase(
	ratingRepo repository.RatingRepository,
	cacheRepo repository.CacheRepository,
	stores *store.Stores,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo: ratingRepo,
		cacheRepo:  cacheRepo,
		stores:     stores,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// LoadRatings загружает оценки аптеки и кладет их в RatingData.
// При ошибке контейнер не меняется, возвращается пустой список.
func (uc *RatingUseCase) LoadRatings(ctx context.Context, pharmacyID int64) []domain.PharmacyRating {
	ratings, err := uc.ratingRepo.ReadPharmacyRatings(ctx, pharmacyID)
	if err != nil {
		uc.logger.Error("Failed to fetch pharmacy ratings",
			zap.Int64("pharmacy_id", pharmacyID),
			zap.Error(err))
		return []domain.PharmacyRating{}
	}

	uc.stores.RatingData.Set(ratings)
	return ratings
}

// LoadTierRatings загружает tier-лист области и кладет его в TierRatingData.
// nil углы означают весь земной шар.
func (uc *RatingUseCase) LoadTierRatings(ctx context.Context, sw, ne *domain.GeoPoint) []domain.PharmacyTierRating {
	bounds := domain.WorldBounds
	if sw != nil {
		bounds.SW = *sw
	}
	if ne != nil {
		bounds.NE = *ne
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetTierRatings(ctx, bounds)
		if err != nil {
			uc.logger.Warn("Failed to read tier ratings from cache", zap.Error(err))
		} else if cached != nil {
			uc.stores.TierRatingData.Set(cached)
			return cached
		}
	}

	ratings, err := uc.RefreshTierRatings(ctx, bounds)
	if err != nil {
		uc.logger.Error("Failed to fetch tier ratings",
			zap.String("bounds", bounds.QueryString()),
			zap.Error(err))
		return []domain.PharmacyTierRating{}
	}
	return ratings
}

// RefreshTierRatings загружает tier-лист в обход кеша, обновляет кеш и TierRatingData.
// Ошибка API возвращается вызывающему.
func (uc *RatingUseCase) RefreshTierRatings(ctx context.Context, bounds domain.Bounds) ([]domain.PharmacyTierRating, error) {
	ratings, err := uc.ratingRepo.ReadPharmacyTierRatings(ctx, &bounds.SW, &bounds.NE)
	if err != nil {
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetTierRatings(ctx, bounds, ratings, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache tier ratings", zap.Error(err))
		}
	}

	uc.stores.TierRatingData.Set(ratings)
	return ratings, nil
}
