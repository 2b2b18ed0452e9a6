package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/domain/repository"
	"github.com/route-weather-service/internal/pkg/errors"
	"github.com/route-weather-service/internal/pkg/metrics"
)

// MinAutocompleteQuery - более короткие запросы не уходят к провайдеру
const MinAutocompleteQuery = 3

// AutocompleteUseCase - подсказки адресов с фокусом по IP клиента
type AutocompleteUseCase struct {
	geocoder repository.GeocodingRepository
	cache    repository.CacheRepository
	locator  repository.IPLocationRepository // nil - без фокуса
	ttl      time.Duration
	logger   *zap.Logger
}

func NewAutocompleteUseCase(
	geocoder repository.GeocodingRepository,
	cache repository.CacheRepository,
	locator repository.IPLocationRepository,
	ttl time.Duration,
	logger *zap.Logger,
) *AutocompleteUseCase {
	return &AutocompleteUseCase{
		geocoder: geocoder,
		cache:    cache,
		locator:  locator,
		ttl:      ttl,
		logger:   logger,
	}
}

// Suggest возвращает подсказки для query. Пустой список - не ошибка.
func (uc *AutocompleteUseCase) Suggest(ctx context.Context, query, clientIP string) ([]domain.Suggestion, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinAutocompleteQuery {
		return []domain.Suggestion{}, nil
	}

	focus := uc.focus(clientIP)

	cached, err := uc.cache.GetSuggestions(ctx, query, focus)
	if err != nil {
		uc.logger.Warn("Autocomplete cache read failed", zap.String("query", query), zap.Error(err))
	}
	metrics.CacheResult("autocomplete", cached != nil)
	if cached != nil {
		return cached, nil
	}

	suggestions, err := uc.geocoder.Autocomplete(ctx, query, focus)
	if err != nil {
		uc.logger.Error("Autocomplete failed", zap.String("query", query), zap.Error(err))
		return nil, errors.ErrAutocompleteFailed.Wrap(err)
	}
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}

	if err := uc.cache.SetSuggestions(ctx, query, focus, suggestions, uc.ttl); err != nil {
		uc.logger.Warn("Autocomplete cache write failed", zap.String("query", query), zap.Error(err))
	}
	return suggestions, nil
}

func (uc *AutocompleteUseCase) focus(clientIP string) *domain.Coordinate {
	if uc.locator == nil || clientIP == "" {
		return nil
	}
	coord, err := uc.locator.Locate(clientIP)
	if err != nil {
		uc.logger.Debug("GeoIP lookup failed", zap.String("ip", clientIP), zap.Error(err))
		return nil
	}
	return coord
}
