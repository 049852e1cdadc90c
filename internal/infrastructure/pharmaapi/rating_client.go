package pharmaapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/domain/repository"
)

type ratingClient struct {
	client *Client
}

// NewRatingClient создает клиент агрегированных оценок
func NewRatingClient(client *Client) repository.RatingRepository {
	return &ratingClient{client: client}
}

// ReadPharmacyRatings - GET /pharmacies/{id}/ratings
func (c *ratingClient) ReadPharmacyRatings(ctx context.Context, pharmacyID int64) ([]domain.PharmacyRating, error) {
	var ratings []domain.PharmacyRating
	err := c.client.do(ctx, request{
		method:     http.MethodGet,
		path:       fmt.Sprintf("/pharmacies/%d/ratings", pharmacyID),
		wantStatus: http.StatusOK,
	}, &ratings)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []domain.PharmacyRating{}
	}
	return ratings, nil
}

// ReadPharmacyTierRatings - GET /pharmacies/ratings?sw=lat,lng&ne=lat,lng
func (c *ratingClient) ReadPharmacyTierRatings(ctx context.Context, sw, ne *domain.GeoPoint) ([]domain.PharmacyTierRating, error) {
	bounds := domain.WorldBounds
	if sw != nil {
		bounds.SW = *sw
	}
	if ne != nil {
		bounds.NE = *ne
	}

	var ratings []domain.PharmacyTierRating
	err := c.client.do(ctx, request{
		method:     http.MethodGet,
		path:       "/pharmacies/ratings",
		query:      bounds.QueryString(),
		wantStatus: http.StatusOK,
	}, &ratings)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []domain.PharmacyTierRating{}
	}
	return ratings, nil
}
