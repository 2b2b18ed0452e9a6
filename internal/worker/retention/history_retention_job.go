package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain/repository"
	"github.com/route-weather-service/internal/worker"
)

const runTimeout = 5 * time.Minute

// HistoryRetentionJob периодически удаляет планы старше retention
type HistoryRetentionJob struct {
	*worker.BaseWorker
	plans     repository.PlanRepository
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
}

func NewHistoryRetentionJob(
	plans repository.PlanRepository,
	retention time.Duration,
	interval time.Duration,
	logger *zap.Logger,
) *HistoryRetentionJob {
	return &HistoryRetentionJob{
		BaseWorker: worker.NewBaseWorker("history-retention", "", logger),
		plans:      plans,
		retention:  retention,
		interval:   interval,
		now:        time.Now,
	}
}

// Start запускает расписание (первый прогон сразу) и ждёт остановки
func (j *HistoryRetentionJob) Start(ctx context.Context) error {
	runCtx, cancel := j.RunContext(ctx)
	defer cancel()

	if j.retention <= 0 || j.interval <= 0 {
		j.Logger().Info("History retention disabled",
			zap.Duration("retention", j.retention),
			zap.Duration("interval", j.interval))
		<-runCtx.Done()
		return nil
	}

	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	_, err := scheduler.Every(j.interval).Do(func() {
		if _, err := j.RunOnce(runCtx); err != nil {
			j.Logger().Error("History cleanup failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule history cleanup: %w", err)
	}

	j.Logger().Info("History retention scheduled",
		zap.Duration("retention", j.retention),
		zap.Duration("interval", j.interval))

	scheduler.StartAsync()
	<-runCtx.Done()
	scheduler.Stop()

	return nil
}

// RunOnce удаляет планы, созданные раньше now-retention
func (j *HistoryRetentionJob) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	cutoff := j.now().Add(-j.retention)
	deleted, err := j.plans.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old plans: %w", err)
	}

	j.Logger().Info("Old route plans deleted",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff))
	return deleted, nil
}
