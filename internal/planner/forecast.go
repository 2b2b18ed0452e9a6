package planner

import (
	"math"
	"time"

	"github.com/route-weather-service/internal/domain"
)

// ResolveForecast выбирает прогноз для момента target: ближайший шаг ряда
// не раньше target, а если такого нет - последний шаг ряда.
//
// Шаг даёт результат, только если в нём есть температура. Если выбранный шаг
// без температуры, используется последний шаг ряда. Пустой ряд - nil.
func ResolveForecast(series []domain.ForecastEntry, target time.Time) *domain.Forecast {
	if len(series) == 0 {
		return nil
	}

	var best *domain.ForecastEntry
	var smallest time.Duration
	for i := range series {
		diff := series[i].Time.Sub(target)
		if diff >= 0 && (best == nil || diff < smallest) {
			best = &series[i]
			smallest = diff
		}
	}

	if result := forecastFromEntry(best); result != nil {
		return result
	}
	return forecastFromEntry(&series[len(series)-1])
}

func forecastFromEntry(entry *domain.ForecastEntry) *domain.Forecast {
	if entry == nil || entry.Temperature == nil {
		return nil
	}
	return &domain.Forecast{
		Temperature:   *entry.Temperature,
		SymbolCode:    entry.SymbolCode,
		WindSpeed:     entry.WindSpeed,
		WindDirection: entry.WindDirection,
	}
}

// DepartureTime возвращает фактическое время выезда. Для режима arrival
// маршрут считается назад от base на длительность маршрута.
func DepartureTime(base time.Time, durationSeconds float64, travelType domain.TravelType) time.Time {
	if travelType == domain.TravelTypeArrival {
		return base.Add(-secondsToDuration(durationSeconds))
	}
	return base
}

// ArrivalTime возвращает момент прибытия в точку со смещением offsetSeconds
func ArrivalTime(departure time.Time, offsetSeconds float64) time.Time {
	return departure.Add(secondsToDuration(offsetSeconds))
}

// secondsToDuration округляет до миллисекунд
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds*1000)) * time.Millisecond
}

// BuildWeatherPoints собирает погодные точки по выбранным точкам маршрута.
// series[i] - временной ряд прогноза для points[i].
func BuildWeatherPoints(points []domain.SamplePoint, series [][]domain.ForecastEntry, departure time.Time) []domain.WeatherPoint {
	result := make([]domain.WeatherPoint, 0, len(points))
	for i, p := range points {
		arrival := ArrivalTime(departure, p.OffsetSeconds)

		wp := domain.WeatherPoint{
			Lat:    p.Lat,
			Lon:    p.Lon,
			Time:   arrival.UnixMilli(),
			Source: roleFor(i, len(points)),
		}

		if i < len(series) {
			if f := ResolveForecast(series[i], arrival); f != nil {
				temp := f.Temperature
				wp.Temperature = &temp
				wp.SymbolCode = f.SymbolCode
				wp.WindSpeed = f.WindSpeed
				wp.WindDirection = f.WindDirection
			}
		}

		result = append(result, wp)
	}
	return result
}

func roleFor(index, total int) domain.PointRole {
	switch {
	case index == 0:
		return domain.PointRoleStart
	case index == total-1:
		return domain.PointRoleEnd
	default:
		return domain.PointRoleIntermediate
	}
}
