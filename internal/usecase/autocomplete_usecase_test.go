package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/pkg/errors"
	"github.com/route-weather-service/internal/usecase"
)

func TestAutocompleteUseCase_Suggest(t *testing.T) {
	ctx := context.Background()
	suggestions := []domain.Suggestion{
		{Label: "Bergen, Vestland, Norway", Coordinates: [2]float64{5.3221, 60.3913}},
	}

	t.Run("short query returns empty list without upstream call", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		uc := usecase.NewAutocompleteUseCase(geocoder, newTestCache(t), nil, time.Hour, zap.NewNop())

		got, err := uc.Suggest(ctx, " Be ", "")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		geocoder.AssertNotCalled(t, "Autocomplete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("multibyte query is measured in characters", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		geocoder.On("Autocomplete", mock.Anything, "Ålø", (*domain.Coordinate)(nil)).
			Return([]domain.Suggestion{}, nil).Once()
		uc := usecase.NewAutocompleteUseCase(geocoder, newTestCache(t), nil, time.Hour, zap.NewNop())

		_, err := uc.Suggest(ctx, "Ålø", "")
		require.NoError(t, err)
		geocoder.AssertExpectations(t)
	})

	t.Run("focus from client ip and cached on second call", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		locator := &MockIPLocationRepository{}
		focus := &domain.Coordinate{Lat: 59.91, Lon: 10.75}

		locator.On("Locate", "81.0.0.1").Return(focus, nil)
		geocoder.On("Autocomplete", mock.Anything, "Berg", focus).Return(suggestions, nil).Once()

		uc := usecase.NewAutocompleteUseCase(geocoder, newTestCache(t), locator, time.Hour, zap.NewNop())

		got, err := uc.Suggest(ctx, "Berg", "81.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, suggestions, got)

		got, err = uc.Suggest(ctx, "Berg", "81.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, suggestions, got)

		geocoder.AssertExpectations(t)
	})

	t.Run("locator failure drops focus", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		locator := &MockIPLocationRepository{}

		locator.On("Locate", "81.0.0.2").Return(nil, stderrors.New("corrupt db"))
		geocoder.On("Autocomplete", mock.Anything, "Bergen", (*domain.Coordinate)(nil)).Return(suggestions, nil)

		uc := usecase.NewAutocompleteUseCase(geocoder, newTestCache(t), locator, time.Hour, zap.NewNop())

		got, err := uc.Suggest(ctx, "Bergen", "81.0.0.2")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("upstream failure", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		geocoder.On("Autocomplete", mock.Anything, "Bergen", (*domain.Coordinate)(nil)).
			Return(nil, stderrors.New("timeout"))

		uc := usecase.NewAutocompleteUseCase(geocoder, newTestCache(t), nil, time.Hour, zap.NewNop())

		got, err := uc.Suggest(ctx, "Bergen", "")
		assert.Nil(t, got)
		assert.True(t, stderrors.Is(err, errors.ErrAutocompleteFailed))
	})
}
