package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamRoutePlan     = "stream:route:plan"
	StreamRoutePlanDone = "stream:route:done"
)

// RoutePlanRequestedEvent - входящее событие на расчёт маршрута с погодой
type RoutePlanRequestedEvent struct {
	RequestID    uuid.UUID  `json:"request_id"`
	StartAddress string     `json:"start_address"`
	Waypoints    []string   `json:"waypoints,omitempty"`
	EndAddress   string     `json:"end_address"`
	TravelDate   string     `json:"travel_date"`
	TravelTime   string     `json:"travel_time"`
	TravelType   TravelType `json:"travel_type"`
	Timezone     string     `json:"timezone,omitempty"`
}

// RoutePlanDoneEvent - результат расчёта
type RoutePlanDoneEvent struct {
	RequestID       uuid.UUID      `json:"request_id"`
	PlanID          *uuid.UUID     `json:"plan_id,omitempty"`
	DistanceMeters  float64        `json:"distance,omitempty"`
	DurationSeconds float64        `json:"duration,omitempty"`
	Weather         []WeatherPoint `json:"weather,omitempty"`
	Error           string         `json:"error,omitempty"`
	ErrorCode       string         `json:"error_code,omitempty"`
}

// StreamMessage - сообщение из Redis Stream; Data - JSON из поля "data"
type StreamMessage struct {
	ID   string
	Data string
}
