// Package planner выбирает точки вдоль маршрута, подбирает для них прогноз
// и сжимает получившуюся погодную ленту. Все функции пакета чистые.
package planner

import (
	"math"

	"github.com/route-weather-service/internal/domain"
)

const (
	// DefaultMaxPoints - сколько точек маршрута проверяем на погоду по умолчанию
	DefaultMaxPoints = 5

	// MinMaxPoints - минимум, при котором в выборке есть и старт, и финиш
	MinMaxPoints = 2
)

// SelectPoints выбирает до maxPoints точек вдоль маршрута с временем прибытия
// в каждую из них (в секундах от старта).
//
// Старт всегда идёт первым с offset 0. Промежуточные точки соответствуют
// равномерно распределённым целевым моментам duration*i/(k+1), где
// k = maxPoints-2; координата находится проходом по segments/steps маршрута.
// Финиш добавляется последним, либо замещает последнюю точку, если буфер
// уже заполнен. Подряд идущие одинаковые координаты не выдаются.
//
// Точек никогда не больше maxPoints: при maxPoints == 1 финиш замещает
// старт, при maxPoints <= 0 результат пустой.
func SelectPoints(route *domain.Route, maxPoints int) []domain.SamplePoint {
	if route == nil || len(route.Geometry) == 0 || maxPoints <= 0 {
		return nil
	}

	coords := route.Geometry
	totalDuration := route.DurationSeconds
	first := coords[0]
	last := coords[len(coords)-1]

	if len(coords) < 2 || totalDuration <= 0 {
		points := []domain.SamplePoint{{Coordinate: first, OffsetSeconds: 0}}
		if len(coords) > 1 {
			points = append(points, domain.SamplePoint{Coordinate: last, OffsetSeconds: totalDuration})
		}
		if len(points) > maxPoints {
			points = points[:maxPoints]
		}
		return points
	}

	points := make([]domain.SamplePoint, 0, maxPoints)
	points = append(points, domain.SamplePoint{Coordinate: first, OffsetSeconds: 0})

	targets := TargetOffsets(totalDuration, maxPoints)
	if len(targets) > 0 {
		points = walkSteps(route, targets, points, maxPoints)
	}

	lastPoint := points[len(points)-1]
	if !last.Equal(lastPoint.Coordinate) {
		end := domain.SamplePoint{Coordinate: last, OffsetSeconds: totalDuration}
		switch {
		case len(points) < maxPoints:
			points = append(points, end)
		case len(points) == maxPoints:
			points[maxPoints-1] = end
		}
	}

	return points
}

// TargetOffsets возвращает maxPoints-2 равномерно распределённых момента
// строго между 0 и totalDuration.
func TargetOffsets(totalDuration float64, maxPoints int) []float64 {
	k := maxPoints - 2
	if k <= 0 {
		return nil
	}
	offsets := make([]float64, 0, k)
	for i := 1; i <= k; i++ {
		offsets = append(offsets, totalDuration*(float64(i)/float64(k+1)))
	}
	return offsets
}

// walkSteps проходит шаги маршрута, накапливая длительность, и для каждого
// целевого момента берёт координату внутри шага пропорционально доле
// прошедшего в нём времени.
func walkSteps(route *domain.Route, targets []float64, points []domain.SamplePoint, maxPoints int) []domain.SamplePoint {
	coords := route.Geometry
	accumulated := 0.0
	targetIdx := 0

	for _, segment := range route.Segments {
		for _, step := range segment.Steps {
			stepCoords := stepRange(coords, step.WayPoints)
			if len(stepCoords) == 0 {
				continue
			}

			for targetIdx < len(targets) && accumulated+step.Duration >= targets[targetIdx] {
				target := targets[targetIdx]
				fraction := 0.0
				if step.Duration > 0 {
					fraction = math.Max(0, math.Min(1, (target-accumulated)/step.Duration))
				}

				idx := int(math.Round(fraction * float64(len(stepCoords)-1)))
				candidate := stepCoords[idx]

				if !candidate.Equal(points[len(points)-1].Coordinate) {
					points = append(points, domain.SamplePoint{Coordinate: candidate, OffsetSeconds: target})
				}

				targetIdx++
				if len(points) >= maxPoints-1 {
					return points
				}
			}

			accumulated += step.Duration
		}
	}

	return points
}

// stepRange возвращает срез геометрии шага [from, to] включительно.
// Индексы за пределами геометрии обрезаются.
func stepRange(coords []domain.Coordinate, wayPoints [2]int) []domain.Coordinate {
	from, to := wayPoints[0], wayPoints[1]
	if from < 0 {
		from = 0
	}
	if to >= len(coords) {
		to = len(coords) - 1
	}
	if from >= len(coords) || from > to {
		return nil
	}
	return coords[from : to+1]
}
