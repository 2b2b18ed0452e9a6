package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/route-weather-service/internal/domain"
)

func wp(role domain.PointRole, temp *float64, symbol *string, ts int64) domain.WeatherPoint {
	return domain.WeatherPoint{Lat: 60, Lon: 10, Time: ts, Temperature: temp, SymbolCode: symbol, Source: role}
}

func TestCompact(t *testing.T) {
	sunny := ptrString("clearsky_day")
	cloudy := ptrString("cloudy")

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Compact(nil))
	})

	t.Run("single point", func(t *testing.T) {
		in := []domain.WeatherPoint{wp(domain.PointRoleStart, ptrFloat64(1), sunny, 0)}
		assert.Equal(t, in, Compact(in))
	})

	t.Run("start and end are always both kept", func(t *testing.T) {
		in := []domain.WeatherPoint{
			wp(domain.PointRoleStart, ptrFloat64(10), sunny, 0),
			wp(domain.PointRoleEnd, ptrFloat64(10), sunny, 1),
		}
		assert.Equal(t, in, Compact(in))
	})

	t.Run("symbol change keeps only start and end", func(t *testing.T) {
		start := wp(domain.PointRoleStart, ptrFloat64(10), sunny, 0)
		mid := wp(domain.PointRoleIntermediate, ptrFloat64(10.5), sunny, 1)
		end := wp(domain.PointRoleEnd, ptrFloat64(10.5), cloudy, 2)

		got := Compact([]domain.WeatherPoint{start, mid, end})
		assert.Equal(t, []domain.WeatherPoint{start, end}, got)
	})

	t.Run("intermediate compared with last kept point", func(t *testing.T) {
		start := wp(domain.PointRoleStart, ptrFloat64(10), sunny, 0)
		a := wp(domain.PointRoleIntermediate, ptrFloat64(11.5), sunny, 1)
		b := wp(domain.PointRoleIntermediate, ptrFloat64(12.5), sunny, 2)
		end := wp(domain.PointRoleEnd, ptrFloat64(20), sunny, 3)

		// a and b each differ from their predecessor by < 2, but b differs from start by 2.5
		got := Compact([]domain.WeatherPoint{start, a, b, end})
		assert.Equal(t, []domain.WeatherPoint{start, b, end}, got)
	})

	t.Run("end replaces last kept intermediate when not different", func(t *testing.T) {
		start := wp(domain.PointRoleStart, ptrFloat64(10), sunny, 0)
		mid := wp(domain.PointRoleIntermediate, ptrFloat64(15), sunny, 1)
		end := wp(domain.PointRoleEnd, ptrFloat64(14), sunny, 2)

		got := Compact([]domain.WeatherPoint{start, mid, end})
		assert.Equal(t, []domain.WeatherPoint{start, end}, got)
	})

	t.Run("missing temperature differs from present one", func(t *testing.T) {
		start := wp(domain.PointRoleStart, nil, sunny, 0)
		mid := wp(domain.PointRoleIntermediate, ptrFloat64(5), sunny, 1)
		end := wp(domain.PointRoleEnd, nil, sunny, 2)

		got := Compact([]domain.WeatherPoint{start, mid, end})
		assert.Equal(t, []domain.WeatherPoint{start, mid, end}, got)
	})

	t.Run("both temperatures missing and same symbol is not a change", func(t *testing.T) {
		start := wp(domain.PointRoleStart, nil, nil, 0)
		mid := wp(domain.PointRoleIntermediate, nil, nil, 1)
		end := wp(domain.PointRoleEnd, ptrFloat64(1), nil, 2)

		got := Compact([]domain.WeatherPoint{start, mid, end})
		assert.Equal(t, []domain.WeatherPoint{start, end}, got)
	})

	t.Run("threshold is strictly greater than two degrees", func(t *testing.T) {
		start := wp(domain.PointRoleStart, ptrFloat64(10), sunny, 0)
		mid := wp(domain.PointRoleIntermediate, ptrFloat64(12), sunny, 1)
		end := wp(domain.PointRoleEnd, ptrFloat64(10), cloudy, 2)

		got := Compact([]domain.WeatherPoint{start, mid, end})
		assert.Equal(t, []domain.WeatherPoint{start, end}, got)
	})

	t.Run("truncated to five entries", func(t *testing.T) {
		in := make([]domain.WeatherPoint, 0, 8)
		for i := 0; i < 8; i++ {
			in = append(in, wp(domain.PointRoleIntermediate, ptrFloat64(float64(i*10)), sunny, int64(i)))
		}
		got := Compact(in)
		require.Len(t, got, MaxTimelinePoints)
		assert.Equal(t, in[:MaxTimelinePoints], got)
	})

	t.Run("idempotent for these inputs", func(t *testing.T) {
		inputs := [][]domain.WeatherPoint{
			{
				wp(domain.PointRoleStart, ptrFloat64(10), sunny, 0),
				wp(domain.PointRoleIntermediate, ptrFloat64(10.5), sunny, 1),
				wp(domain.PointRoleEnd, ptrFloat64(10.5), cloudy, 2),
			},
			{
				wp(domain.PointRoleStart, ptrFloat64(0), sunny, 0),
				wp(domain.PointRoleIntermediate, ptrFloat64(5), cloudy, 1),
				wp(domain.PointRoleIntermediate, ptrFloat64(5.5), cloudy, 2),
				wp(domain.PointRoleIntermediate, ptrFloat64(12), cloudy, 3),
				wp(domain.PointRoleEnd, ptrFloat64(20), ptrString("rain"), 4),
			},
			{
				wp(domain.PointRoleStart, ptrFloat64(10), sunny, 0),
				wp(domain.PointRoleEnd, ptrFloat64(10), sunny, 1),
			},
		}

		for i, in := range inputs {
			once := Compact(in)
			assert.Equal(t, once, Compact(once), "input %d", i)
		}
	})

	t.Run("second pass can drop a kept point", func(t *testing.T) {
		// 0 остаётся рядом с 5, но финиш 1 замещает 2.5 и уже не отличается от 0
		in := []domain.WeatherPoint{
			wp(domain.PointRoleStart, ptrFloat64(5), sunny, 0),
			wp(domain.PointRoleIntermediate, ptrFloat64(0), sunny, 1),
			wp(domain.PointRoleIntermediate, ptrFloat64(2.5), sunny, 2),
			wp(domain.PointRoleEnd, ptrFloat64(1), sunny, 3),
		}

		once := Compact(in)
		require.Len(t, once, 3)
		assert.Equal(t, []domain.WeatherPoint{in[0], in[1], in[3]}, once)

		twice := Compact(once)
		assert.Equal(t, []domain.WeatherPoint{in[0], in[3]}, twice)
	})
}

func TestDiffers(t *testing.T) {
	sunny := ptrString("clearsky_day")

	assert.False(t, Differs(wp("", ptrFloat64(1), sunny, 0), wp("", ptrFloat64(3), sunny, 0)))
	assert.True(t, Differs(wp("", ptrFloat64(1), sunny, 0), wp("", ptrFloat64(3.01), sunny, 0)))
	assert.True(t, Differs(wp("", ptrFloat64(1), sunny, 0), wp("", ptrFloat64(1), nil, 0)))
	assert.True(t, Differs(wp("", nil, sunny, 0), wp("", ptrFloat64(1), sunny, 0)))
	assert.False(t, Differs(wp("", nil, nil, 0), wp("", nil, nil, 0)))
}
