package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pharmafinder-client/internal/domain"
)

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ParseGeoPoint разбирает строку "lat,lng"
func ParseGeoPoint(s string) (domain.GeoPoint, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.GeoPoint{}, fmt.Errorf("expected 'lat,lng', got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse longitude: %w", err)
	}

	if !ValidateCoordinates(lat, lng) {
		return domain.GeoPoint{}, fmt.Errorf("coordinates out of range: %s", s)
	}

	return domain.NewGeoPoint(lat, lng), nil
}

// ParseBounds разбирает пару sw/ne. Пустые строки означают отсутствие области;
// задан только один угол - ошибка.
func ParseBounds(sw, ne string) (*domain.Bounds, error) {
	if sw == "" && ne == "" {
		return nil, nil
	}
	if sw == "" || ne == "" {
		return nil, fmt.Errorf("both sw and ne must be provided")
	}

	swPoint, err := ParseGeoPoint(sw)
	if err != nil {
		return nil, fmt.Errorf("sw: %w", err)
	}
	nePoint, err := ParseGeoPoint(ne)
	if err != nil {
		return nil, fmt.Errorf("ne: %w", err)
	}

	return &domain.Bounds{SW: swPoint, NE: nePoint}, nil
}
