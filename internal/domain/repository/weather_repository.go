package repository

import (
	"context"

	"github.com/route-weather-service/internal/domain"
)

// WeatherRepository возвращает временной ряд прогноза для точки
type WeatherRepository interface {
	GetForecast(ctx context.Context, coord domain.Coordinate) ([]domain.ForecastEntry, error)
}

// IPLocationRepository определяет примерное положение клиента по IP.
// Для неизвестных адресов возвращает (nil, nil).
type IPLocationRepository interface {
	Locate(ip string) (*domain.Coordinate, error)
}
