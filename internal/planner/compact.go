package planner

import (
	"math"

	"github.com/route-weather-service/internal/domain"
)

const (
	// MaxTimelinePoints - верхняя граница длины погодной ленты
	MaxTimelinePoints = 5

	// TemperatureThreshold - разница температур (°C), начиная с которой
	// прогнозы считаются разными (строго больше)
	TemperatureThreshold = 2.0
)

// Compact убирает промежуточные точки, погода в которых не отличается от
// последней оставленной точки.
//
// Старт остаётся всегда. Промежуточная точка остаётся, если отличается от
// последней оставленной. Финиш либо добавляется (если отличается, или если
// пока оставлен только старт), либо замещает последнюю оставленную точку,
// чтобы лента всегда заканчивалась прогнозом для конца маршрута.
func Compact(points []domain.WeatherPoint) []domain.WeatherPoint {
	if len(points) == 0 {
		return nil
	}

	result := make([]domain.WeatherPoint, 0, len(points))
	result = append(result, points[0])

	for i := 1; i < len(points)-1; i++ {
		if Differs(result[len(result)-1], points[i]) {
			result = append(result, points[i])
		}
	}

	if len(points) > 1 {
		end := points[len(points)-1]
		lastKept := result[len(result)-1]
		if len(result) == 1 || Differs(lastKept, end) {
			result = append(result, end)
		} else {
			result[len(result)-1] = end
		}
	}

	if len(result) > MaxTimelinePoints {
		result = result[:MaxTimelinePoints]
	}
	return result
}

// Differs сообщает, заметно ли отличается погода в точке b от точки a:
// другой символ, появилась/пропала температура, или разница температур
// больше TemperatureThreshold.
func Differs(a, b domain.WeatherPoint) bool {
	if !sameSymbol(a.SymbolCode, b.SymbolCode) {
		return true
	}
	if (a.Temperature == nil) != (b.Temperature == nil) {
		return true
	}
	if a.Temperature != nil && b.Temperature != nil {
		return math.Abs(*a.Temperature-*b.Temperature) > TemperatureThreshold
	}
	return false
}

func sameSymbol(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
