package rating

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/worker"
)

const workerName = "tier-rating-refresher"

// TierRatingsRefresher - загрузка tier-листа в обход кеша
type TierRatingsRefresher interface {
	RefreshTierRatings(ctx context.Context, bounds domain.Bounds) ([]domain.PharmacyTierRating, error)
}

// TierRefreshWorker периодически обновляет tier-лист всего земного шара,
// чтобы страница tier-листа читала его из кеша
type TierRefreshWorker struct {
	*worker.BaseWorker
	ratingUC TierRatingsRefresher
	interval time.Duration
	bounds   domain.Bounds
}

// NewTierRefreshWorker создает новый TierRefreshWorker
func NewTierRefreshWorker(ratingUC TierRatingsRefresher, interval time.Duration, logger *zap.Logger) *TierRefreshWorker {
	return &TierRefreshWorker{
		BaseWorker: worker.NewBaseWorker(workerName, logger),
		ratingUC:   ratingUC,
		interval:   interval,
		bounds:     domain.WorldBounds,
	}
}

// Start обновляет tier-лист сразу и затем раз в interval
func (w *TierRefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting tier rating refresher",
		zap.Duration("interval", w.interval),
		zap.String("bounds", w.bounds.QueryString()))

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

// refresh не прерывает цикл при ошибке API: следующая попытка будет на следующем тике
func (w *TierRefreshWorker) refresh(ctx context.Context) {
	start := time.Now()

	ratings, err := w.ratingUC.RefreshTierRatings(ctx, w.bounds)
	if err != nil {
		w.Logger().Error("Failed to refresh tier ratings", zap.Error(err))
		return
	}

	w.Logger().Info("Tier ratings refreshed",
		zap.Int("count", len(ratings)),
		zap.Duration("took", time.Since(start)))
}
