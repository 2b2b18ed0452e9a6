package repository

import (
	"context"
	"time"

	"github.com/route-weather-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем.
// Промах кеша - (nil, nil).
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetForecast получает временной ряд прогноза для точки
	GetForecast(ctx context.Context, coord domain.Coordinate) ([]domain.ForecastEntry, error)

	// SetForecast сохраняет временной ряд прогноза для точки
	SetForecast(ctx context.Context, coord domain.Coordinate, series []domain.ForecastEntry, ttl time.Duration) error

	// GetGeocode получает результат геокодирования адреса
	GetGeocode(ctx context.Context, address string) (*domain.GeocodeResult, error)

	// SetGeocode сохраняет результат геокодирования адреса
	SetGeocode(ctx context.Context, address string, result *domain.GeocodeResult, ttl time.Duration) error

	// GetSuggestions получает подсказки автодополнения
	GetSuggestions(ctx context.Context, query string, focus *domain.Coordinate) ([]domain.Suggestion, error)

	// SetSuggestions сохраняет подсказки автодополнения
	SetSuggestions(ctx context.Context, query string, focus *domain.Coordinate, suggestions []domain.Suggestion, ttl time.Duration) error
}
