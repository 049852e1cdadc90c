package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/domain/repository"
)

// PharmacyUseCase - загрузка справочника аптек для страницы карты
type PharmacyUseCase struct {
	pharmacyRepo repository.PharmacyRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

// NewPharmacyUseCase - создание нового PharmacyUseCase. cacheRepo может быть nil.
func NewPharmacyUseCase(
	pharmacyRepo repository.PharmacyRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *PharmacyUseCase {
	return &PharmacyUseCase{
		pharmacyRepo: pharmacyRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// ListPharmacies возвращает аптеки области. При любой ошибке API
// ошибка логируется и возвращается пустой список.
func (uc *PharmacyUseCase) ListPharmacies(ctx context.Context, bounds *domain.Bounds) []domain.PharmacyInfo {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetPharmacies(ctx, bounds)
		if err != nil {
			uc.logger.Warn("Failed to read pharmacies from cache", zap.Error(err))
		} else if cached != nil {
			return cached
		}
	}

	pharmacies, err := uc.pharmacyRepo.GetPharmacies(ctx, bounds)
	if err != nil {
		uc.logger.Error("Failed to fetch pharmacies", zap.Error(err))
		return []domain.PharmacyInfo{}
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetPharmacies(ctx, bounds, pharmacies, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache pharmacies", zap.Error(err))
		}
	}

	return pharmacies
}

// GetPharmacy возвращает аптеку по ID из полного (кешируемого) списка
// или nil, если ее нет или список недоступен
func (uc *PharmacyUseCase) GetPharmacy(ctx context.Context, id int64) *domain.PharmacyInfo {
	pharmacy := domain.FindPharmacy(uc.ListPharmacies(ctx, nil), id)
	if pharmacy == nil {
		uc.logger.Debug("Pharmacy not found in listing", zap.Int64("pharmacy_id", id))
	}
	return pharmacy
}
