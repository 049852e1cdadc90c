package pharmaapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/domain/repository"
)

type reviewClient struct {
	client *Client
}

// NewReviewClient создает клиент отзывов
func NewReviewClient(client *Client) repository.ReviewRepository {
	return &reviewClient{client: client}
}

// ReadReviews - GET /pharmacies/{id}/reviews?l=10[&k=..&uk=..]
// Страницы упорядочены по updatedAt по убыванию, при равенстве по id.
func (c *reviewClient) ReadReviews(ctx context.Context, pharmacyID int64, cursor *domain.ReviewCursor) ([]domain.PharmacyReview, error) {
	query := fmt.Sprintf("l=%d", domain.PagerLimit)
	if cursor != nil {
		query += fmt.Sprintf("&k=%d&uk=%d", cursor.Key, cursor.UniqueKey)
	}

	var reviews []domain.PharmacyReview
	err := c.client.do(ctx, request{
		method:     http.MethodGet,
		path:       fmt.Sprintf("/pharmacies/%d/reviews", pharmacyID),
		query:      query,
		wantStatus: http.StatusOK,
	}, &reviews)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.PharmacyReview{}
	}
	return reviews, nil
}

// CreateReview - POST /pharmacies/{id}/reviews, ожидается 201
func (c *reviewClient) CreateReview(ctx context.Context, pharmacyID int64, review domain.PharmacyReview) (*domain.PharmacyReview, error) {
	var created domain.PharmacyReview
	err := c.client.do(ctx, request{
		method:     http.MethodPost,
		path:       fmt.Sprintf("/pharmacies/%d/reviews", pharmacyID),
		body:       domain.NewReviewCreation(review),
		wantStatus: http.StatusCreated,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReview - PATCH /pharmacies/{id}/reviews/{reviewID}, ожидается 200
func (c *reviewClient) UpdateReview(ctx context.Context, pharmacyID int64, review domain.PharmacyReview) (*domain.PharmacyReview, error) {
	if review.ID == nil {
		return nil, ErrReviewWithoutID
	}

	var updated domain.PharmacyReview
	err := c.client.do(ctx, request{
		method:     http.MethodPatch,
		path:       fmt.Sprintf("/pharmacies/%d/reviews/%d", pharmacyID, *review.ID),
		body:       domain.NewReviewModification(review),
		wantStatus: http.StatusOK,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReview - DELETE /pharmacies/{id}/reviews/{reviewID} с кодом модификации в Authorization
func (c *reviewClient) DeleteReview(ctx context.Context, pharmacyID, reviewID int64, modCode string) (*domain.PharmacyReview, error) {
	var deleted domain.PharmacyReview
	err := c.client.do(ctx, request{
		method:     http.MethodDelete,
		path:       fmt.Sprintf("/pharmacies/%d/reviews/%d", pharmacyID, reviewID),
		header:     http.Header{"Authorization": []string{"Bearer " + modCode}},
		wantStatus: http.StatusOK,
	}, &deleted)
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
