package dto

import "github.com/pharmafinder-client/internal/domain"

// PharmacyPageResponse - данные страницы аптеки: карточка, оценки и первая страница отзывов
type PharmacyPageResponse struct {
	Pharmacy *domain.PharmacyInfo    `json:"pharmacy,omitempty"`
	Ratings  []domain.PharmacyRating `json:"ratings"`
	Reviews  []domain.PharmacyReview `json:"reviews"`
	Next     *domain.ReviewCursor    `json:"next,omitempty"`
}

// NextCursor возвращает курсор следующей страницы, если страница полная
func NextCursor(page []domain.PharmacyReview) *domain.ReviewCursor {
	if len(page) < domain.PagerLimit {
		return nil
	}
	return domain.CursorAfter(page[len(page)-1])
}
