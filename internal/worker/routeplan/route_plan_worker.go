package routeplan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/domain/repository"
	"github.com/route-weather-service/internal/pkg/errors"
	"github.com/route-weather-service/internal/pkg/validator"
	"github.com/route-weather-service/internal/usecase/dto"
	"github.com/route-weather-service/internal/worker"
)

// planTimeout - ограничение на расчёт одного маршрута
const planTimeout = time.Minute

// Planner - расчёт маршрута с погодой
type Planner interface {
	Plan(ctx context.Context, req dto.RouteWeatherRequest) (*dto.RouteWeatherResponse, error)
}

// RoutePlanWorker читает RoutePlanRequestedEvent из stream:route:plan и
// публикует RoutePlanDoneEvent в stream:route:done
type RoutePlanWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	planner    Planner
}

func NewRoutePlanWorker(
	streamRepo repository.StreamRepository,
	planner Planner,
	consumerGroup string,
	logger *zap.Logger,
) *RoutePlanWorker {
	return &RoutePlanWorker{
		BaseWorker: worker.NewBaseWorker("route-plan", consumerGroup, logger),
		streamRepo: streamRepo,
		planner:    planner,
	}
}

// Start запускает воркер; возвращается после Stop, отмены ctx или закрытия стрима
func (w *RoutePlanWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RoutePlanWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRoutePlan, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	runCtx, cancel := w.RunContext(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(runCtx, domain.StreamRoutePlan, w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-runCtx.Done():
			logger.Info("Worker stopped")
			return nil

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream consumer closed")
				return nil
			}
			w.handle(runCtx, msg)
		}
	}
}

// handle обрабатывает одно сообщение. Битые сообщения подтверждаются без
// ответа, чтобы не застревали в группе.
func (w *RoutePlanWorker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))
	defer w.ack(ctx, msg.ID)

	event, err := parseEvent(msg)
	if err != nil {
		logger.Warn("Failed to parse message, skipping", zap.Error(err))
		return
	}

	done := w.process(ctx, event)

	// ответ публикуем и после Stop: запрос подтверждается в любом случае
	if _, err := w.streamRepo.PublishToStream(context.WithoutCancel(ctx), domain.StreamRoutePlanDone, done); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		return
	}

	if done.Error != "" {
		logger.Info("Route plan failed",
			zap.String("request_id", event.RequestID.String()),
			zap.String("error_code", done.ErrorCode))
		return
	}
	logger.Info("Route plan published",
		zap.String("request_id", event.RequestID.String()),
		zap.Int("timeline_points", len(done.Weather)))
}

func (w *RoutePlanWorker) process(ctx context.Context, event *domain.RoutePlanRequestedEvent) domain.RoutePlanDoneEvent {
	done := domain.RoutePlanDoneEvent{RequestID: event.RequestID}

	req := dto.FromEvent(event)
	if err := validator.Validate(&req); err != nil {
		return withError(done, validator.ToAppError(err))
	}

	planCtx, cancel := context.WithTimeout(ctx, planTimeout)
	defer cancel()

	resp, err := w.planner.Plan(planCtx, req)
	if err != nil {
		return withError(done, err)
	}

	done.PlanID = resp.PlanID
	done.DistanceMeters = resp.Route.Distance
	done.DurationSeconds = resp.Route.Duration
	done.Weather = resp.Weather
	return done
}

func (w *RoutePlanWorker) ack(ctx context.Context, id string) {
	// подтверждаем даже после Stop, иначе сообщение останется в pending
	if ctx.Err() != nil {
		ctx = context.WithoutCancel(ctx)
	}
	if err := w.streamRepo.AckMessage(ctx, domain.StreamRoutePlan, w.ConsumerGroup(), id); err != nil {
		w.Logger().Error("Failed to ack message", zap.String("message_id", id), zap.Error(err))
	}
}

func parseEvent(msg domain.StreamMessage) (*domain.RoutePlanRequestedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("message has no data field")
	}
	var event domain.RoutePlanRequestedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}

func withError(done domain.RoutePlanDoneEvent, err error) domain.RoutePlanDoneEvent {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.ErrInternalServer
	}
	done.Error = appErr.Message
	done.ErrorCode = appErr.Code
	return done
}
