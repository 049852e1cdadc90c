package domain

// PharmacyInfo - снимок данных аптеки, как его отдает сервер
type PharmacyInfo struct {
	ID          int64   `json:"id"`
	Chain       string  `json:"chain"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	County      string  `json:"county"`
	PostalCode  int     `json:"postalCode"`
	PhoneNumber string  `json:"phoneNumber"`
	Email       *string `json:"email,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// Location возвращает координаты аптеки
func (p PharmacyInfo) Location() GeoPoint {
	return GeoPoint{Lat: p.Lat, Lng: p.Lng}
}

// FindPharmacy ищет аптеку в списке по ID. API не отдает аптеку по одному ID,
// поэтому карточка берется из полного списка.
func FindPharmacy(pharmacies []PharmacyInfo, id int64) *PharmacyInfo {
	for i := range pharmacies {
		if pharmacies[i].ID == id {
			p := pharmacies[i]
			return &p
		}
	}
	return nil
}
