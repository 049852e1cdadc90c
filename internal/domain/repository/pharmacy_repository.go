package repository

import (
	"context"

	"github.com/pharmafinder-client/internal/domain"
)

// PharmacyRepository определяет методы справочника аптек
type PharmacyRepository interface {
	// GetPharmacies возвращает аптеки в пределах области; nil - без ограничения
	GetPharmacies(ctx context.Context, bounds *domain.Bounds) ([]domain.PharmacyInfo, error)
}
