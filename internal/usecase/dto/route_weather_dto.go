package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/route-weather-service/internal/domain"
)

// RouteWeatherRequest - запрос на расчёт маршрута с погодой
type RouteWeatherRequest struct {
	StartAddress string            `json:"start_address" validate:"required,max=500" example:"Oslo"`
	Waypoints    []string          `json:"waypoints,omitempty" validate:"omitempty,max=10,dive,max=500"`
	EndAddress   string            `json:"end_address" validate:"required,max=500" example:"Bergen"`
	TravelDate   string            `json:"travel_date" validate:"required,date" example:"2026-10-19"`
	TravelTime   string            `json:"travel_time" validate:"required,clock" example:"08:30"`
	TravelType   domain.TravelType `json:"travel_type" validate:"required,oneof=departure arrival" example:"departure"`
	Timezone     string            `json:"timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Oslo"`
}

// FromEvent строит запрос из события стрима
func FromEvent(e *domain.RoutePlanRequestedEvent) RouteWeatherRequest {
	return RouteWeatherRequest{
		StartAddress: e.StartAddress,
		Waypoints:    e.Waypoints,
		EndAddress:   e.EndAddress,
		TravelDate:   e.TravelDate,
		TravelTime:   e.TravelTime,
		TravelType:   e.TravelType,
		Timezone:     e.Timezone,
	}
}

// RouteSummaryDTO - маршрут в ответе
type RouteSummaryDTO struct {
	Distance        float64           `json:"distance" example:"463000"`
	Duration        float64           `json:"duration" example:"25200"`
	Geometry        *geojson.Geometry `json:"geometry" swaggertype:"object"`
	EncodedPolyline string            `json:"encoded_polyline"`
	BBox            []float64         `json:"bbox,omitempty"`
}

// RouteWeatherResponse - маршрут и сжатая погодная лента
type RouteWeatherResponse struct {
	PlanID        *uuid.UUID             `json:"plan_id,omitempty" swaggertype:"string"`
	Route         RouteSummaryDTO        `json:"route"`
	Weather       []domain.WeatherPoint  `json:"weather"`
	Locations     []domain.GeocodeResult `json:"locations"`
	DepartureTime time.Time              `json:"departure_time"`
	ArrivalTime   time.Time              `json:"arrival_time"`
}

// AutocompleteResponse - подсказки адресов
type AutocompleteResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
}

// PlanListResponse - последние сохранённые планы
type PlanListResponse struct {
	Plans []*domain.RoutePlan `json:"plans"`
}

// LocalesResponse - поддерживаемые локали
type LocalesResponse struct {
	Locales []string `json:"locales"`
	Default string   `json:"default"`
	Current string   `json:"current"`
}

// HealthResponse - состояние зависимостей
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
