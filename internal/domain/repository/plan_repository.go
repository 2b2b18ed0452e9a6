package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/route-weather-service/internal/domain"
)

// PlanRepository - история рассчитанных маршрутов
type PlanRepository interface {
	// Save сохраняет план; ID и CreatedAt заполняются, если пустые
	Save(ctx context.Context, plan *domain.RoutePlan) error

	// GetByID возвращает план или domain.ErrPlanNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RoutePlan, error)

	// ListRecent возвращает последние планы, новые первыми
	ListRecent(ctx context.Context, limit int) ([]*domain.RoutePlan, error)

	// DeleteOlderThan удаляет планы, созданные раньше cutoff
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
