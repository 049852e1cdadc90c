package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/infrastructure/pharmaapi"
	apperrors "github.com/pharmafinder-client/internal/pkg/errors"
	"github.com/pharmafinder-client/internal/store"
	"github.com/pharmafinder-client/internal/usecase"
)

func newReview() domain.PharmacyReview {
	return domain.PharmacyReview{PrescriptionType: "OTC", Stars: 5, HRTKind: "estrogen"}
}

func TestReviewUseCase_LoadReviews(t *testing.T) {
	ctx := context.Background()
	page := []domain.PharmacyReview{{ID: ptrInt64(42), Stars: 4, UpdatedAt: ptrInt64(1700000000000)}}

	t.Run("success replaces review data", func(t *testing.T) {
		repo := &MockReviewRepository{}
		cursor := &domain.ReviewCursor{Key: 1700000000000, UniqueKey: 43}
		repo.On("ReadReviews", ctx, int64(7), cursor).Return(page, nil)
		stores := store.New()

		uc := usecase.NewReviewUseCase(repo, nil, stores, zap.NewNop())

		assert.Equal(t, page, uc.LoadReviews(ctx, 7, cursor))
		got, ok := stores.ReviewData.Get()
		require.True(t, ok)
		assert.Equal(t, page, got)
	})

	t.Run("failure returns empty", func(t *testing.T) {
		repo := &MockReviewRepository{}
		repo.On("ReadReviews", ctx, int64(7), (*domain.ReviewCursor)(nil)).
			Return(nil, &pharmaapi.APIError{Kind: pharmaapi.KindDecode})
		stores := store.New()

		uc := usecase.NewReviewUseCase(repo, nil, stores, zap.NewNop())

		assert.Empty(t, uc.LoadReviews(ctx, 7, nil))
		_, ok := stores.ReviewData.Get()
		assert.False(t, ok)
	})
}

func TestReviewUseCase_CreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates tier cache", func(t *testing.T) {
		repo := &MockReviewRepository{}
		cache := &MockCacheRepository{}
		created := newReview()
		created.ID = ptrInt64(99)
		repo.On("CreateReview", ctx, int64(7), newReview()).Return(&created, nil)
		cache.On("InvalidateTierRatings", ctx).Return(nil)

		uc := usecase.NewReviewUseCase(repo, cache, store.New(), zap.NewNop())

		result, err := uc.CreateReview(ctx, 7, newReview())
		require.NoError(t, err)
		assert.Equal(t, int64(99), *result.ID)
		cache.AssertExpectations(t)
	})

	t.Run("api failure returns blank review", func(t *testing.T) {
		repo := &MockReviewRepository{}
		repo.On("CreateReview", ctx, int64(7), mock.Anything).
			Return(nil, &pharmaapi.APIError{Kind: pharmaapi.KindApplication, StatusCode: 400})

		uc := usecase.NewReviewUseCase(repo, nil, store.New(), zap.NewNop())

		result, err := uc.CreateReview(ctx, 7, newReview())
		require.NoError(t, err)
		assert.Equal(t, domain.PharmacyReview{}, result)
	})

	t.Run("invalid review is not sent", func(t *testing.T) {
		repo := &MockReviewRepository{}
		uc := usecase.NewReviewUseCase(repo, nil, store.New(), zap.NewNop())

		bad := newReview()
		bad.Stars = 0
		_, err := uc.CreateReview(ctx, 7, bad)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INVALID_REVIEW", appErr.Code)
		repo.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReviewUseCase_UpdateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &MockReviewRepository{}
		review := newReview()
		review.ID = ptrInt64(42)
		review.ModCode = ptrString("s3cr3t")
		repo.On("UpdateReview", ctx, int64(7), review).Return(&review, nil)

		uc := usecase.NewReviewUseCase(repo, nil, store.New(), zap.NewNop())

		result, err := uc.UpdateReview(ctx, 7, review)
		require.NoError(t, err)
		assert.Equal(t, review, result)
	})

	t.Run("missing id", func(t *testing.T) {
		uc := usecase.NewReviewUseCase(&MockReviewRepository{}, nil, store.New(), zap.NewNop())

		_, err := uc.UpdateReview(ctx, 7, newReview())
		assert.Equal(t, apperrors.ErrInvalidReviewID, err)
	})

	t.Run("forbidden returns blank review", func(t *testing.T) {
		repo := &MockReviewRepository{}
		review := newReview()
		review.ID = ptrInt64(42)
		repo.On("UpdateReview", ctx, int64(7), review).
			Return(nil, &pharmaapi.APIError{Kind: pharmaapi.KindApplication, StatusCode: 403})

		uc := usecase.NewReviewUseCase(repo, nil, store.New(), zap.NewNop())

		result, err := uc.UpdateReview(ctx, 7, review)
		require.NoError(t, err)
		assert.Nil(t, result.ID)
	})
}

func TestReviewUseCase_DeleteReview(t *testing.T) {
	ctx := context.Background()
	repo := &MockReviewRepository{}
	deleted := newReview()
	deleted.ID = ptrInt64(42)
	repo.On("DeleteReview", ctx, int64(7), int64(42), "s3cr3t").Return(&deleted, nil)
	repo.On("DeleteReview", ctx, int64(7), int64(42), "wrong").
		Return(nil, &pharmaapi.APIError{Kind: pharmaapi.KindApplication, StatusCode: 403})

	uc := usecase.NewReviewUseCase(repo, nil, store.New(), zap.NewNop())

	assert.Equal(t, int64(42), *uc.DeleteReview(ctx, 7, 42, "s3cr3t").ID)
	assert.Nil(t, uc.DeleteReview(ctx, 7, 42, "wrong").ID)
}
