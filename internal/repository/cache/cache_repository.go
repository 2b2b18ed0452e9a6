package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/domain/repository"
	"github.com/route-weather-service/internal/pkg/utils"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func ForecastKey(coord domain.Coordinate) string {
	return "forecast:" + utils.CoordinateKey(coord.Lat, coord.Lon)
}

func GeocodeKey(address string) string {
	return "geocode:" + utils.NormalizeAddress(address)
}

func SuggestionsKey(query string, focus *domain.Coordinate) string {
	f := "none"
	if focus != nil {
		// фокус грубее, чтобы соседние клиенты делили кеш
		f = fmt.Sprintf("%.1f:%.1f", focus.Lat, focus.Lon)
	}
	return "autocomplete:" + utils.NormalizeAddress(query) + ":" + f
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

func (r *cacheRepository) GetForecast(ctx context.Context, coord domain.Coordinate) ([]domain.ForecastEntry, error) {
	var series []domain.ForecastEntry
	found, err := r.getJSON(ctx, ForecastKey(coord), &series)
	if err != nil || !found {
		return nil, err
	}
	return series, nil
}

func (r *cacheRepository) SetForecast(ctx context.Context, coord domain.Coordinate, series []domain.ForecastEntry, ttl time.Duration) error {
	return r.setJSON(ctx, ForecastKey(coord), series, ttl)
}

func (r *cacheRepository) GetGeocode(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	var result domain.GeocodeResult
	found, err := r.getJSON(ctx, GeocodeKey(address), &result)
	if err != nil || !found {
		return nil, err
	}
	return &result, nil
}

func (r *cacheRepository) SetGeocode(ctx context.Context, address string, result *domain.GeocodeResult, ttl time.Duration) error {
	return r.setJSON(ctx, GeocodeKey(address), result, ttl)
}

func (r *cacheRepository) GetSuggestions(ctx context.Context, query string, focus *domain.Coordinate) ([]domain.Suggestion, error) {
	var suggestions []domain.Suggestion
	found, err := r.getJSON(ctx, SuggestionsKey(query, focus), &suggestions)
	if err != nil || !found {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	return suggestions, nil
}

func (r *cacheRepository) SetSuggestions(ctx context.Context, query string, focus *domain.Coordinate, suggestions []domain.Suggestion, ttl time.Duration) error {
	return r.setJSON(ctx, SuggestionsKey(query, focus), suggestions, ttl)
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.Set(ctx, key, data, ttl)
}
