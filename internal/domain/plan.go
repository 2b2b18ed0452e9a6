package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoutePlan - сохранённый результат расчёта маршрута с погодой
type RoutePlan struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	StartAddress    string         `json:"start_address" db:"start_address"`
	Waypoints       []string       `json:"waypoints" db:"waypoints"`
	EndAddress      string         `json:"end_address" db:"end_address"`
	TravelType      TravelType     `json:"travel_type" db:"travel_type"`
	BaseTime        time.Time      `json:"base_time" db:"base_time"`
	DepartureTime   time.Time      `json:"departure_time" db:"departure_time"`
	ArrivalTime     time.Time      `json:"arrival_time" db:"arrival_time"`
	DistanceMeters  float64        `json:"distance" db:"distance_meters"`
	DurationSeconds float64        `json:"duration" db:"duration_seconds"`
	Weather         []WeatherPoint `json:"weather" db:"-"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
}
