package repository

import (
	"context"

	"github.com/pharmafinder-client/internal/domain"
)

// RatingRepository определяет методы для агрегированных оценок
type RatingRepository interface {
	// ReadPharmacyRatings возвращает оценки одной аптеки
	ReadPharmacyRatings(ctx context.Context, pharmacyID int64) ([]domain.PharmacyRating, error)

	// ReadPharmacyTierRatings возвращает агрегаты для tier-листа.
	// nil углы заменяются на (-90,-90) и (90,90).
	ReadPharmacyTierRatings(ctx context.Context, sw, ne *domain.GeoPoint) ([]domain.PharmacyTierRating, error)
}
