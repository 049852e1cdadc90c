package pharmaapi

import (
	"context"
	"net/http"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/domain/repository"
)

type pharmacyClient struct {
	client *Client
}

// NewPharmacyClient создает клиент справочника аптек
func NewPharmacyClient(client *Client) repository.PharmacyRepository {
	return &pharmacyClient{client: client}
}

// GetPharmacies - GET /pharmacies[?sw=lat,lng&ne=lat,lng]
func (c *pharmacyClient) GetPharmacies(ctx context.Context, bounds *domain.Bounds) ([]domain.PharmacyInfo, error) {
	req := request{
		method:     http.MethodGet,
		path:       "/pharmacies",
		wantStatus: http.StatusOK,
	}
	if bounds != nil {
		req.query = bounds.QueryString()
	}

	var pharmacies []domain.PharmacyInfo
	if err := c.client.do(ctx, req, &pharmacies); err != nil {
		return nil, err
	}
	if pharmacies == nil {
		pharmacies = []domain.PharmacyInfo{}
	}
	return pharmacies, nil
}
