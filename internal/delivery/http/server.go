package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/config"
	"github.com/route-weather-service/internal/delivery/http/handler"
	"github.com/route-weather-service/internal/delivery/http/middleware"
	"github.com/route-weather-service/internal/pkg/errors"
	"github.com/route-weather-service/internal/pkg/metrics"
	"github.com/route-weather-service/internal/pkg/utils"
)

// Handlers - обработчики, которые регистрирует сервер
type Handlers struct {
	RouteWeather *handler.RouteWeatherHandler
	Autocomplete *handler.AutocompleteHandler
	Plans        *handler.PlanHandler
	System       *handler.SystemHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Route Weather Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestIDMiddleware())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(middleware.Locale())
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	if !s.config.IsProduction() {
		s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	}

	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.System.Health)
	api.Get("/locales", s.handlers.System.Locales)

	api.Post("/route-weather", s.handlers.RouteWeather.Plan)
	api.Get("/autocomplete", s.handlers.Autocomplete.Suggest)

	api.Get("/plans", s.handlers.Plans.List)
	api.Get("/plans/:id", s.handlers.Plans.Get)

	s.app.Use(func(c *fiber.Ctx) error {
		return utils.SendError(c, errors.ErrNotFound.WithDetails(map[string]interface{}{
			"path": c.Path(),
		}))
	})
}

// App - для тестов через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные в хендлерах (паники, ошибки fiber)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			appErr := errors.New(errors.CodeInvalidRequest, fe.Message, fe.Code)
			switch {
			case fe.Code == fiber.StatusNotFound:
				appErr = errors.ErrNotFound
			case fe.Code >= fiber.StatusInternalServerError:
				appErr = errors.ErrInternalServer
			}
			return utils.SendError(c, appErr)
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.String("request_id", middleware.RequestID(c)),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
