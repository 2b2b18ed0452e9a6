package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/pkg/utils"
	"github.com/route-weather-service/internal/usecase/dto"
)

type PlanHistory interface {
	GetPlan(ctx context.Context, id string) (*domain.RoutePlan, error)
	ListPlans(ctx context.Context, limit int) ([]*domain.RoutePlan, error)
}

// PlanHandler - история рассчитанных маршрутов
type PlanHandler struct {
	history PlanHistory
	logger  *zap.Logger
}

func NewPlanHandler(history PlanHistory, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		history: history,
		logger:  logger,
	}
}

// List godoc
// @Summary Последние рассчитанные маршруты
// @Tags Plans
// @Produce json
// @Param limit query int false "Количество (до 100)" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanListResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	plans, err := h.history.ListPlans(c.UserContext(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.PlanListResponse{Plans: plans}, &utils.Meta{
		Total: len(plans),
		Limit: limit,
	})
}

// Get godoc
// @Summary Рассчитанный маршрут по ID
// @Tags Plans
// @Produce json
// @Param id path string true "ID плана (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=domain.RoutePlan}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/plans/{id} [get]
func (h *PlanHandler) Get(c *fiber.Ctx) error {
	plan, err := h.history.GetPlan(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, plan, nil)
}
