package repository

import (
	"context"

	"github.com/pharmafinder-client/internal/domain"
)

// ReviewRepository определяет методы для отзывов об аптеке
type ReviewRepository interface {
	// ReadReviews возвращает страницу отзывов после курсора; nil - первая страница
	ReadReviews(ctx context.Context, pharmacyID int64, cursor *domain.ReviewCursor) ([]domain.PharmacyReview, error)

	// CreateReview создает отзыв
	CreateReview(ctx context.Context, pharmacyID int64, review domain.PharmacyReview) (*domain.PharmacyReview, error)

	// UpdateReview изменяет существующий отзыв; review.ID обязателен
	UpdateReview(ctx context.Context, pharmacyID int64, review domain.PharmacyReview) (*domain.PharmacyReview, error)

	// DeleteReview удаляет отзыв, подтверждая право кодом модификации
	DeleteReview(ctx context.Context, pharmacyID, reviewID int64, modCode string) (*domain.PharmacyReview, error)
}
