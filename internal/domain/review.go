package domain

// PagerLimit - размер страницы отзывов
const PagerLimit = 10

// Известные значения полей отзыва
const (
	PrescriptionImago    = "Imago"
	PrescriptionGenderGP = "GenderGP"
	PrescriptionNational = "National"

	HRTKindEstrogen     = "e"
	HRTKindTestosterone = "t"
)

// PharmacyReview - отзыв об аптеке.
// ID, ModCode, CreatedAt и UpdatedAt назначает сервер.
type PharmacyReview struct {
	ID               *int64  `json:"id,omitempty"`
	PrescriptionType string  `json:"prescriptionType" validate:"required"`
	Stars            int     `json:"stars" validate:"required,min=1,max=5"`
	HRTKind          string  `json:"hrtKind" validate:"required"`
	Nationality      *string `json:"nationality,omitempty" validate:"omitempty,iso3166_1_alpha2"`
	Review           *string `json:"review,omitempty" validate:"omitempty,max=1024"`
	ModCode          *string `json:"modCode,omitempty"`
	CreatedAt        *int64  `json:"createdAt,omitempty"`
	UpdatedAt        *int64  `json:"updatedAt,omitempty"`
}

// ReviewCreation - тело POST запроса. Серверные поля отсутствуют в типе.
type ReviewCreation struct {
	PrescriptionType string  `json:"prescriptionType"`
	Stars            int     `json:"stars"`
	HRTKind          string  `json:"hrtKind"`
	Nationality      *string `json:"nationality,omitempty"`
	Review           *string `json:"review,omitempty"`
}

// ReviewModification - тело PATCH запроса. modCode подтверждает право на изменение.
type ReviewModification struct {
	ReviewCreation
	ModCode *string `json:"modCode,omitempty"`
}

// NewReviewCreation отбрасывает id, modCode, createdAt и updatedAt
func NewReviewCreation(r PharmacyReview) ReviewCreation {
	return ReviewCreation{
		PrescriptionType: r.PrescriptionType,
		Stars:            r.Stars,
		HRTKind:          r.HRTKind,
		Nationality:      r.Nationality,
		Review:           r.Review,
	}
}

// NewReviewModification отбрасывает id, createdAt и updatedAt, modCode сохраняется
func NewReviewModification(r PharmacyReview) ReviewModification {
	return ReviewModification{
		ReviewCreation: NewReviewCreation(r),
		ModCode:        r.ModCode,
	}
}

// ReviewCursor - позиция курсорной пагинации: (updatedAt, id) последнего увиденного отзыва
type ReviewCursor struct {
	Key       int64 `json:"k"`
	UniqueKey int64 `json:"uk"`
}

// CursorAfter строит курсор по последнему отзыву страницы.
// Возвращает nil, если у отзыва нет id или updatedAt.
func CursorAfter(r PharmacyReview) *ReviewCursor {
	if r.ID == nil || r.UpdatedAt == nil {
		return nil
	}
	return &ReviewCursor{Key: *r.UpdatedAt, UniqueKey: *r.ID}
}

// NewCursor собирает курсор из пары опциональных значений; оба должны быть заданы
func NewCursor(key, uniqueKey *int64) *ReviewCursor {
	if key == nil || uniqueKey == nil {
		return nil
	}
	return &ReviewCursor{Key: *key, UniqueKey: *uniqueKey}
}
