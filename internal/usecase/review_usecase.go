package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/domain/repository"
	"github.com/pharmafinder-client/internal/pkg/errors"
	"github.com/pharmafinder-client/internal/pkg/validator"
	"github.com/pharmafinder-client/internal/store"
)

// ReviewUseCase - чтение и отправка отзывов.
// Ошибки API не пробрасываются: они логируются, вызывающий получает пустое значение.
type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	cacheRepo  repository.CacheRepository
	stores     *store.Stores
	logger     *zap.Logger
}

// NewReviewUseCase - создание нового ReviewUseCase. cacheRepo может быть nil.
func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	cacheRepo repository.CacheRepository,
	stores *store.Stores,
	logger *zap.Logger,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		cacheRepo:  cacheRepo,
		stores:     stores,
		logger:     logger,
	}
}

// LoadReviews загружает страницу отзывов после курсора и кладет ее в ReviewData
func (uc *ReviewUseCase) LoadReviews(ctx context.Context, pharmacyID int64, cursor *domain.ReviewCursor) []domain.PharmacyReview {
	reviews, ok := uc.fetchPage(ctx, pharmacyID, cursor)
	if !ok {
		return []domain.PharmacyReview{}
	}

	uc.stores.ReviewData.Set(reviews)
	return reviews
}

func (uc *ReviewUseCase) fetchPage(ctx context.Context, pharmacyID int64, cursor *domain.ReviewCursor) ([]domain.PharmacyReview, bool) {
	reviews, err := uc.reviewRepo.ReadReviews(ctx, pharmacyID, cursor)
	if err != nil {
		uc.logger.Error("Failed to fetch pharmacy reviews",
			zap.Int64("pharmacy_id", pharmacyID),
			zap.Error(err))
		return nil, false
	}
	return reviews, true
}

// CreateReview валидирует и отправляет новый отзыв. Ошибка возвращается только
// при невалидном отзыве; при сбое API возвращается пустой отзыв (ID == nil).
func (uc *ReviewUseCase) CreateReview(ctx context.Context, pharmacyID int64, review domain.PharmacyReview) (domain.PharmacyReview, error) {
	if err := validator.ValidateApp(&review, errors.ErrInvalidReview); err != nil {
		return domain.PharmacyReview{}, err
	}

	created, err := uc.reviewRepo.CreateReview(ctx, pharmacyID, review)
	if err != nil {
		uc.logger.Error("Failed to create review",
			zap.Int64("pharmacy_id", pharmacyID),
			zap.Error(err))
		return domain.PharmacyReview{}, nil
	}

	uc.invalidateRatings(ctx)
	return *created, nil
}

// UpdateReview валидирует и отправляет изменения отзыва; семантика ошибок как у CreateReview
func (uc *ReviewUseCase) UpdateReview(ctx context.Context, pharmacyID int64, review domain.PharmacyReview) (domain.PharmacyReview, error) {
	if review.ID == nil {
		return domain.PharmacyReview{}, errors.ErrInvalidReviewID
	}
	if err := validator.ValidateApp(&review, errors.ErrInvalidReview); err != nil {
		return domain.PharmacyReview{}, err
	}

	updated, err := uc.reviewRepo.UpdateReview(ctx, pharmacyID, review)
	if err != nil {
		uc.logger.Error("Failed to update review",
			zap.Int64("pharmacy_id", pharmacyID),
			zap.Int64("review_id", *review.ID),
			zap.Error(err))
		return domain.PharmacyReview{}, nil
	}

	uc.invalidateRatings(ctx)
	return *updated, nil
}

// DeleteReview удаляет отзыв; при сбое возвращается пустой отзыв
func (uc *ReviewUseCase) DeleteReview(ctx context.Context, pharmacyID, reviewID int64, modCode string) domain.PharmacyReview {
	deleted, err := uc.reviewRepo.DeleteReview(ctx, pharmacyID, reviewID, modCode)
	if err != nil {
		uc.logger.Error("Failed to delete review",
			zap.Int64("pharmacy_id", pharmacyID),
			zap.Int64("review_id", reviewID),
			zap.Error(err))
		return domain.PharmacyReview{}
	}

	uc.invalidateRatings(ctx)
	return *deleted
}

func (uc *ReviewUseCase) invalidateRatings(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.InvalidateTierRatings(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate tier ratings cache", zap.Error(err))
	}
}
