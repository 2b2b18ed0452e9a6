package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/pkg/i18n"
	"github.com/route-weather-service/internal/pkg/utils"
	"github.com/route-weather-service/internal/usecase/dto"
)

// HealthChecker - зависимость, которую проверяет /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// SystemHandler - health и список локалей
type SystemHandler struct {
	checks map[string]HealthChecker
	logger *zap.Logger
}

// NewSystemHandler; nil-проверки пропускаются
func NewSystemHandler(checks map[string]HealthChecker, logger *zap.Logger) *SystemHandler {
	active := make(map[string]HealthChecker, len(checks))
	for name, check := range checks {
		if check != nil {
			active[name] = check
		}
	}
	return &SystemHandler{
		checks: active,
		logger: logger,
	}
}

// Health godoc
// @Summary Состояние сервиса
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string, len(h.checks)),
	}
	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("service", name), zap.Error(err))
			resp.Services[name] = "unhealthy"
			resp.Status = "degraded"
			continue
		}
		resp.Services[name] = "healthy"
	}

	status := fiber.StatusOK
	if resp.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}

// Locales godoc
// @Summary Поддерживаемые локали
// @Tags System
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LocalesResponse}
// @Router /api/v1/locales [get]
func (h *SystemHandler) Locales(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.LocalesResponse{
		Locales: i18n.Locales(),
		Default: i18n.DefaultLocale,
		Current: utils.Locale(c).String(),
	}, nil)
}
