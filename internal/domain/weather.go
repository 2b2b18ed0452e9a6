package domain

import "time"

// PointRole - роль точки в погодной ленте
type PointRole string

const (
	PointRoleStart        PointRole = "start"
	PointRoleIntermediate PointRole = "intermediate"
	PointRoleEnd          PointRole = "end"
)

// ForecastEntry - один шаг временного ряда прогноза.
// SymbolCode берётся из самого короткого доступного горизонта (1ч, 6ч, 12ч).
type ForecastEntry struct {
	Time          time.Time `json:"time"`
	Temperature   *float64  `json:"temperature,omitempty"`
	SymbolCode    *string   `json:"symbol_code,omitempty"`
	WindSpeed     *float64  `json:"wind_speed,omitempty"`
	WindDirection *float64  `json:"wind_direction,omitempty"`
}

// Forecast - прогноз, выбранный для конкретного момента времени
type Forecast struct {
	Temperature   float64
	SymbolCode    *string
	WindSpeed     *float64
	WindDirection *float64
}

// WeatherPoint - точка маршрута с прогнозом на момент прибытия
type WeatherPoint struct {
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	Time          int64     `json:"time"` // unix ms, UTC
	Temperature   *float64  `json:"temperature,omitempty"`
	SymbolCode    *string   `json:"symbol_code,omitempty"`
	WindSpeed     *float64  `json:"wind_speed,omitempty"`
	WindDirection *float64  `json:"wind_direction,omitempty"`
	Source        PointRole `json:"source"`
}

// TravelType - режим расчёта времени: выезд в заданное время или прибытие к нему
type TravelType string

const (
	TravelTypeDeparture TravelType = "departure"
	TravelTypeArrival   TravelType = "arrival"
)
