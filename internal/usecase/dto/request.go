package dto

import "github.com/pharmafinder-client/internal/domain"

// ReviewRequest - тело запроса на создание или изменение отзыва со страницы
type ReviewRequest struct {
	PrescriptionType string  `json:"prescriptionType" validate:"required"`
	Stars            int     `json:"stars" validate:"required,min=1,max=5"`
	HRTKind          string  `json:"hrtKind" validate:"required"`
	Nationality      *string `json:"nationality,omitempty" validate:"omitempty,iso3166_1_alpha2"`
	Review           *string `json:"review,omitempty" validate:"omitempty,max=1024"`
	// ModCode нужен только для изменения
	ModCode *string `json:"modCode,omitempty"`
}

// ToDomain собирает отзыв; id задается только для изменения
func (r ReviewRequest) ToDomain(id *int64) domain.PharmacyReview {
	return domain.PharmacyReview{
		ID:               id,
		PrescriptionType: r.PrescriptionType,
		Stars:            r.Stars,
		HRTKind:          r.HRTKind,
		Nationality:      r.Nationality,
		Review:           r.Review,
		ModCode:          r.ModCode,
	}
}
