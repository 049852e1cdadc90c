package store

import "github.com/pharmafinder-client/internal/domain"

// Stores - контейнеры, к которым привязывается UI
type Stores struct {
	ReviewData     *Container[[]domain.PharmacyReview]
	RatingData     *Container[[]domain.PharmacyRating]
	TierRatingData *Container[[]domain.PharmacyTierRating]
}

// New создает набор пустых контейнеров
func New() *Stores {
	return &Stores{
		ReviewData:     NewContainer[[]domain.PharmacyReview](),
		RatingData:     NewContainer[[]domain.PharmacyRating](),
		TierRatingData: NewContainer[[]domain.PharmacyTierRating](),
	}
}
