package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/pkg/errors"
	"github.com/route-weather-service/internal/pkg/utils"
	"github.com/route-weather-service/internal/pkg/validator"
	"github.com/route-weather-service/internal/usecase/dto"
)

// RouteWeatherPlanner - расчёт маршрута с погодой
type RouteWeatherPlanner interface {
	Plan(ctx context.Context, req dto.RouteWeatherRequest) (*dto.RouteWeatherResponse, error)
}

// RouteWeatherHandler - обработчик расчёта маршрута с погодой
type RouteWeatherHandler struct {
	planner RouteWeatherPlanner
	logger  *zap.Logger
}

func NewRouteWeatherHandler(planner RouteWeatherPlanner, logger *zap.Logger) *RouteWeatherHandler {
	return &RouteWeatherHandler{
		planner: planner,
		logger:  logger,
	}
}

// Plan godoc
// @Summary Маршрут с погодой
// @Description Геокодирует адреса, строит автомобильный маршрут и возвращает прогноз погоды на момент прибытия в ключевые точки маршрута
// @Tags Route
// @Accept json
// @Produce json
// @Param locale query string false "Локаль сообщений об ошибках (en, no, es)"
// @Param request body dto.RouteWeatherRequest true "Адреса и время поездки"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteWeatherResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/route-weather [post]
func (h *RouteWeatherHandler) Plan(c *fiber.Ctx) error {
	var req dto.RouteWeatherRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, validator.ToAppError(err))
	}

	resp, err := h.planner.Plan(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:  len(resp.Weather),
		Locale: utils.Locale(c).String(),
	})
}
