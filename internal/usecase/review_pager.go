package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/domain"
)

// ReviewPager листает отзывы аптеки курсором (updatedAt, id) и накапливает
// загруженные страницы в ReviewData
type ReviewPager struct {
	uc         *ReviewUseCase
	pharmacyID int64
	start      *domain.ReviewCursor

	mu     sync.Mutex
	cursor *domain.ReviewCursor
	loaded []domain.PharmacyReview
	done   bool
}

// NewPager создает пейджер, стоящий перед первой страницей
func (uc *ReviewUseCase) NewPager(pharmacyID int64) *ReviewPager {
	return uc.NewPagerAt(pharmacyID, nil)
}

// NewPagerAt создает пейджер, продолжающий список после курсора; nil - с начала
func (uc *ReviewUseCase) NewPagerAt(pharmacyID int64, cursor *domain.ReviewCursor) *ReviewPager {
	return &ReviewPager{
		uc:         uc,
		pharmacyID: pharmacyID,
		start:      cursor,
		cursor:     cursor,
		loaded:     []domain.PharmacyReview{},
	}
}

// Next загружает следующую страницу и возвращает только ее.
// Короткая страница означает конец списка. При ошибке API курсор не сдвигается,
// а ошибка возвращается, чтобы цикл листания мог остановиться.
func (p *ReviewPager) Next(ctx context.Context) ([]domain.PharmacyReview, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return []domain.PharmacyReview{}, nil
	}

	page, err := p.uc.reviewRepo.ReadReviews(ctx, p.pharmacyID, p.cursor)
	if err != nil {
		p.uc.logger.Error("Failed to fetch review page",
			zap.Int64("pharmacy_id", p.pharmacyID),
			zap.Error(err))
		return []domain.PharmacyReview{}, err
	}

	if len(page) < domain.PagerLimit {
		p.done = true
	}
	if len(page) > 0 {
		p.cursor = domain.CursorAfter(page[len(page)-1])
		if p.cursor == nil {
			p.done = true
		}
	}

	loaded := make([]domain.PharmacyReview, 0, len(p.loaded)+len(page))
	loaded = append(loaded, p.loaded...)
	loaded = append(loaded, page...)
	p.loaded = loaded
	p.uc.stores.ReviewData.Set(loaded)

	return page, nil
}

// Loaded возвращает все загруженные с последнего Reset отзывы
func (p *ReviewPager) Loaded() []domain.PharmacyReview {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Cursor возвращает курсор следующей страницы; nil до первой загрузки или в конце списка
func (p *ReviewPager) Cursor() *domain.ReviewCursor {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return nil
	}
	return p.cursor
}

// Done сообщает, что страниц больше нет
func (p *ReviewPager) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Reset возвращает пейджер к начальному курсору
func (p *ReviewPager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cursor = p.start
	p.loaded = []domain.PharmacyReview{}
	p.done = false
}
