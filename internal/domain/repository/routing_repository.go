package repository

import (
	"context"

	"github.com/route-weather-service/internal/domain"
)

// GeocodingRepository - прямое геокодирование и автодополнение адресов
type GeocodingRepository interface {
	// Geocode возвращает координаты лучшего совпадения или domain.ErrAddressNotFound
	Geocode(ctx context.Context, address string) (*domain.GeocodeResult, error)

	// Autocomplete возвращает подсказки; focus смещает выдачу к точке
	Autocomplete(ctx context.Context, query string, focus *domain.Coordinate) ([]domain.Suggestion, error)
}

// RoutingRepository - построение автомобильного маршрута через точки по порядку
type RoutingRepository interface {
	GetRoute(ctx context.Context, coordinates []domain.Coordinate) (*domain.Route, error)
}
