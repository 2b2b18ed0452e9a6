package usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/domain/repository"
	"github.com/route-weather-service/internal/pkg/errors"
)

const maxPlanListLimit = 100

// PlanHistoryUseCase - чтение истории рассчитанных маршрутов
type PlanHistoryUseCase struct {
	plans        repository.PlanRepository // nil - история выключена
	defaultLimit int
	logger       *zap.Logger
}

func NewPlanHistoryUseCase(plans repository.PlanRepository, defaultLimit int, logger *zap.Logger) *PlanHistoryUseCase {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &PlanHistoryUseCase{
		plans:        plans,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Enabled - подключена ли история
func (uc *PlanHistoryUseCase) Enabled() bool {
	return uc.plans != nil
}

func (uc *PlanHistoryUseCase) GetPlan(ctx context.Context, rawID string) (*domain.RoutePlan, error) {
	if uc.plans == nil {
		return nil, errors.ErrHistoryDisabled
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.ErrInvalidPlanID.WithDetails(map[string]interface{}{"id": rawID})
	}

	plan, err := uc.plans.GetByID(ctx, id)
	if stderrors.Is(err, domain.ErrPlanNotFound) {
		return nil, errors.ErrPlanNotFound.WithDetails(map[string]interface{}{"id": rawID})
	}
	if err != nil {
		uc.logger.Error("Failed to get route plan", zap.String("id", rawID), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	return plan, nil
}

// ListPlans возвращает последние планы; limit <= 0 - значение по умолчанию
func (uc *PlanHistoryUseCase) ListPlans(ctx context.Context, limit int) ([]*domain.RoutePlan, error) {
	if uc.plans == nil {
		return nil, errors.ErrHistoryDisabled
	}

	switch {
	case limit <= 0:
		limit = uc.defaultLimit
	case limit > maxPlanListLimit:
		limit = maxPlanListLimit
	}

	plans, err := uc.plans.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to list route plans", zap.Int("limit", limit), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}
	return plans, nil
}
