package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/store"
	"github.com/pharmafinder-client/internal/usecase"
)

// reviewPage строит страницу отзывов с убывающими updatedAt, начиная с id
func reviewPage(firstID int64, n int) []domain.PharmacyReview {
	page := make([]domain.PharmacyReview, n)
	for i := range page {
		id := firstID - int64(i)
		page[i] = domain.PharmacyReview{
			ID:        ptrInt64(id),
			Stars:     4,
			UpdatedAt: ptrInt64(1700000000000 + id*1000),
		}
	}
	return page
}

func TestReviewPager(t *testing.T) {
	ctx := context.Background()

	t.Run("walks pages until a short page", func(t *testing.T) {
		repo := &MockReviewRepository{}
		first := reviewPage(100, domain.PagerLimit)
		second := reviewPage(90, 3)
		afterFirst := &domain.ReviewCursor{Key: 1700000000000 + 91*1000, UniqueKey: 91}

		repo.On("ReadReviews", ctx, int64(7), (*domain.ReviewCursor)(nil)).Return(first, nil).Once()
		repo.On("ReadReviews", ctx, int64(7), afterFirst).Return(second, nil).Once()

		stores := store.New()
		pager := usecase.NewReviewUseCase(repo, nil, stores, zap.NewNop()).NewPager(7)

		assert.Nil(t, pager.Cursor())
		page, err := pager.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, page)
		assert.Equal(t, afterFirst, pager.Cursor())
		assert.False(t, pager.Done())

		page, err = pager.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, second, page)
		assert.True(t, pager.Done())
		assert.Nil(t, pager.Cursor())

		loaded, ok := stores.ReviewData.Get()
		require.True(t, ok)
		assert.Len(t, loaded, domain.PagerLimit+3)
		assert.Equal(t, loaded, pager.Loaded())

		page, err = pager.Next(ctx)
		assert.NoError(t, err)
		assert.Empty(t, page)
		repo.AssertExpectations(t)
	})

	t.Run("failure keeps cursor", func(t *testing.T) {
		repo := &MockReviewRepository{}
		repo.On("ReadReviews", ctx, int64(7), (*domain.ReviewCursor)(nil)).Return(nil, errors.New("timeout")).Once()
		repo.On("ReadReviews", ctx, int64(7), (*domain.ReviewCursor)(nil)).Return(reviewPage(5, 2), nil).Once()

		pager := usecase.NewReviewUseCase(repo, nil, store.New(), zap.NewNop()).NewPager(7)

		page, err := pager.Next(ctx)
		assert.Error(t, err)
		assert.Empty(t, page)
		assert.False(t, pager.Done())

		page, err = pager.Next(ctx)
		require.NoError(t, err)
		assert.Len(t, page, 2)
		assert.True(t, pager.Done())
	})

	t.Run("reset starts over", func(t *testing.T) {
		repo := &MockReviewRepository{}
		repo.On("ReadReviews", ctx, int64(7), (*domain.ReviewCursor)(nil)).Return(reviewPage(5, 1), nil).Twice()

		pager := usecase.NewReviewUseCase(repo, nil, store.New(), zap.NewNop()).NewPager(7)

		_, err := pager.Next(ctx)
		require.NoError(t, err)
		require.True(t, pager.Done())
		pager.Reset()
		assert.False(t, pager.Done())
		assert.Empty(t, pager.Loaded())

		page, err := pager.Next(ctx)
		require.NoError(t, err)
		assert.Len(t, page, 1)
		repo.AssertExpectations(t)
	})

	t.Run("starts after a given cursor", func(t *testing.T) {
		repo := &MockReviewRepository{}
		start := &domain.ReviewCursor{Key: 1700000000000, UniqueKey: 42}
		repo.On("ReadReviews", ctx, int64(7), start).Return(reviewPage(41, 2), nil).Twice()

		pager := usecase.NewReviewUseCase(repo, nil, store.New(), zap.NewNop()).NewPagerAt(7, start)

		assert.Equal(t, start, pager.Cursor())
		page, err := pager.Next(ctx)
		require.NoError(t, err)
		assert.Len(t, page, 2)

		// Reset возвращает к начальному курсору, а не к первой странице
		pager.Reset()
		_, err = pager.Next(ctx)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
