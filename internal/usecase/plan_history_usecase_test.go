package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/pkg/errors"
	"github.com/route-weather-service/internal/usecase"
)

func TestPlanHistoryUseCase_Disabled(t *testing.T) {
	uc := usecase.NewPlanHistoryUseCase(nil, 20, zap.NewNop())
	assert.False(t, uc.Enabled())

	_, err := uc.GetPlan(context.Background(), uuid.NewString())
	assert.True(t, stderrors.Is(err, errors.ErrHistoryDisabled))

	_, err = uc.ListPlans(context.Background(), 5)
	assert.True(t, stderrors.Is(err, errors.ErrHistoryDisabled))
}

func TestPlanHistoryUseCase_GetPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := &MockPlanRepository{}
		id := uuid.New()
		plan := &domain.RoutePlan{ID: id, StartAddress: "Oslo", EndAddress: "Bergen", CreatedAt: time.Now()}
		repo.On("GetByID", ctx, id).Return(plan, nil).Once()

		uc := usecase.NewPlanHistoryUseCase(repo, 20, zap.NewNop())
		got, err := uc.GetPlan(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, plan, got)
		repo.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		repo := &MockPlanRepository{}
		uc := usecase.NewPlanHistoryUseCase(repo, 20, zap.NewNop())

		_, err := uc.GetPlan(ctx, "not-a-uuid")
		assert.True(t, stderrors.Is(err, errors.ErrInvalidPlanID))
		repo.AssertNotCalled(t, "GetByID")
	})

	t.Run("not found", func(t *testing.T) {
		repo := &MockPlanRepository{}
		id := uuid.New()
		repo.On("GetByID", ctx, id).Return(nil, domain.ErrPlanNotFound)

		uc := usecase.NewPlanHistoryUseCase(repo, 20, zap.NewNop())
		_, err := uc.GetPlan(ctx, id.String())

		appErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, errors.CodePlanNotFound, appErr.Code)
		assert.Equal(t, 404, appErr.StatusCode)
	})

	t.Run("database error", func(t *testing.T) {
		repo := &MockPlanRepository{}
		id := uuid.New()
		repo.On("GetByID", ctx, id).Return(nil, stderrors.New("connection reset"))

		uc := usecase.NewPlanHistoryUseCase(repo, 20, zap.NewNop())
		_, err := uc.GetPlan(ctx, id.String())
		assert.True(t, stderrors.Is(err, errors.ErrDatabaseError))
	})
}

func TestPlanHistoryUseCase_ListPlans(t *testing.T) {
	ctx := context.Background()
	plans := []*domain.RoutePlan{{ID: uuid.New()}, {ID: uuid.New()}}

	tests := []struct {
		name      string
		requested int
		expected  int
	}{
		{"default limit", 0, 20},
		{"negative uses default", -3, 20},
		{"explicit limit", 5, 5},
		{"clamped to maximum", 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockPlanRepository{}
			repo.On("ListRecent", ctx, tt.expected).Return(plans, nil).Once()

			uc := usecase.NewPlanHistoryUseCase(repo, 20, zap.NewNop())
			got, err := uc.ListPlans(ctx, tt.requested)
			require.NoError(t, err)
			assert.Len(t, got, 2)
			repo.AssertExpectations(t)
		})
	}
}
