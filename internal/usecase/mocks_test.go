package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/route-weather-service/internal/domain"
)

type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) Geocode(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

func (m *MockGeocodingRepository) Autocomplete(ctx context.Context, query string, focus *domain.Coordinate) ([]domain.Suggestion, error) {
	args := m.Called(ctx, query, focus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

type MockRoutingRepository struct {
	mock.Mock
}

func (m *MockRoutingRepository) GetRoute(ctx context.Context, coordinates []domain.Coordinate) (*domain.Route, error) {
	args := m.Called(ctx, coordinates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

type MockWeatherRepository struct {
	mock.Mock
}

func (m *MockWeatherRepository) GetForecast(ctx context.Context, coord domain.Coordinate) ([]domain.ForecastEntry, error) {
	args := m.Called(ctx, coord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ForecastEntry), args.Error(1)
}

type MockIPLocationRepository struct {
	mock.Mock
}

func (m *MockIPLocationRepository) Locate(ip string) (*domain.Coordinate, error) {
	args := m.Called(ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinate), args.Error(1)
}

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Save(ctx context.Context, plan *domain.RoutePlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoutePlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutePlan), args.Error(1)
}

func (m *MockPlanRepository) ListRecent(ctx context.Context, limit int) ([]*domain.RoutePlan, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RoutePlan), args.Error(1)
}

func (m *MockPlanRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
