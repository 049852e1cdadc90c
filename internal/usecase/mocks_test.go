package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pharmafinder-client/internal/domain"
)

// MockPharmacyRepository is a mock of PharmacyRepository
type MockPharmacyRepository struct {
	mock.Mock
}

func (m *MockPharmacyRepository) GetPharmacies(ctx context.Context, bounds *domain.Bounds) ([]domain.PharmacyInfo, error) {
	args := m.Called(ctx, bounds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PharmacyInfo), args.Error(1)
}

// MockRatingRepository is a mock of RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) ReadPharmacyRatings(ctx context.Context, pharmacyID int64) ([]domain.PharmacyRating, error) {
	args := m.Called(ctx, pharmacyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PharmacyRating), args.Error(1)
}

func (m *MockRatingRepository) ReadPharmacyTierRatings(ctx context.Context, sw, ne *domain.GeoPoint) ([]domain.PharmacyTierRating, error) {
	args := m.Called(ctx, sw, ne)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PharmacyTierRating), args.Error(1)
}

// MockReviewRepository is a mock of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ReadReviews(ctx context.Context, pharmacyID int64, cursor *domain.ReviewCursor) ([]domain.PharmacyReview, error) {
	args := m.Called(ctx, pharmacyID, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PharmacyReview), args.Error(1)
}

func (m *MockReviewRepository) CreateReview(ctx context.Context, pharmacyID int64, review domain.PharmacyReview) (*domain.PharmacyReview, error) {
	args := m.Called(ctx, pharmacyID, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PharmacyReview), args.Error(1)
}

func (m *MockReviewRepository) UpdateReview(ctx context.Context, pharmacyID int64, review domain.PharmacyReview) (*domain.PharmacyReview, error) {
	args := m.Called(ctx, pharmacyID, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PharmacyReview), args.Error(1)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, pharmacyID, reviewID int64, modCode string) (*domain.PharmacyReview, error) {
	args := m.Called(ctx, pharmacyID, reviewID, modCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PharmacyReview), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetTierRatings(ctx context.Context, bounds domain.Bounds) ([]domain.PharmacyTierRating, error) {
	args := m.Called(ctx, bounds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PharmacyTierRating), args.Error(1)
}

func (m *MockCacheRepository) SetTierRatings(ctx context.Context, bounds domain.Bounds, ratings []domain.PharmacyTierRating, ttl time.Duration) error {
	args := m.Called(ctx, bounds, ratings, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateTierRatings(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheRepository) GetPharmacies(ctx context.Context, bounds *domain.Bounds) ([]domain.PharmacyInfo, error) {
	args := m.Called(ctx, bounds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PharmacyInfo), args.Error(1)
}

func (m *MockCacheRepository) SetPharmacies(ctx context.Context, bounds *domain.Bounds, pharmacies []domain.PharmacyInfo, ttl time.Duration) error {
	args := m.Called(ctx, bounds, pharmacies, ttl)
	return args.Error(0)
}

func ptrInt64(v int64) *int64    { return &v }
func ptrString(v string) *string { return &v }
