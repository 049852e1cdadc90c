package domain

import "strconv"

// GeoPoint - географическая точка на карте
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewGeoPoint создает точку по широте и долготе
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Lat: lat, Lng: lng}
}

// QueryValue возвращает точку в формате "lat,lng", который ожидает API
func (p GeoPoint) QueryValue() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// Bounds - прямоугольная область, заданная юго-западным и северо-восточным углами
type Bounds struct {
	SW GeoPoint `json:"sw"`
	NE GeoPoint `json:"ne"`
}

// WorldBounds покрывает весь земной шар. Используется для tier-листа по умолчанию.
var WorldBounds = Bounds{
	SW: GeoPoint{Lat: -90, Lng: -90},
	NE: GeoPoint{Lat: 90, Lng: 90},
}

// QueryString кодирует область как "sw=lat,lng&ne=lat,lng"
func (b Bounds) QueryString() string {
	return "sw=" + b.SW.QueryValue() + "&ne=" + b.NE.QueryValue()
}

// CacheKey возвращает стабильный ключ области для кеша
func (b Bounds) CacheKey() string {
	return b.SW.QueryValue() + ":" + b.NE.QueryValue()
}
