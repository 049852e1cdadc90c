package domain

// PharmacyRating - агрегированная оценка аптеки по одному виду ЗГТ
type PharmacyRating struct {
	ID      int64   `json:"id"`
	Stars   float64 `json:"stars"`
	HRTKind string  `json:"hrtKind"`
}

// PharmacyTierRating - агрегат оценок в пределах области, используется для tier-листа
type PharmacyTierRating struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	AvgRating  float64 `json:"avgRating"`
	AvgERating float64 `json:"avgERating"`
	AvgTRating float64 `json:"avgTRating"`
}
