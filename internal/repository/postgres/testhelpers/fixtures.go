package testhelpers

import (
	"time"

	"github.com/google/uuid"

	"github.com/route-weather-service/internal/domain"
)

// NewPlanFixture возвращает план Oslo -> Bergen, созданный в createdAt
func NewPlanFixture(createdAt time.Time) *domain.RoutePlan {
	temp := 4.5
	symbol := "cloudy"
	base := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	return &domain.RoutePlan{
		ID:              uuid.New(),
		StartAddress:    "Oslo",
		Waypoints:       []string{"Gol"},
		EndAddress:      "Bergen",
		TravelType:      domain.TravelTypeDeparture,
		BaseTime:        base,
		DepartureTime:   base,
		ArrivalTime:     base.Add(7 * time.Hour),
		DistanceMeters:  463000,
		DurationSeconds: 25200,
		Weather: []domain.WeatherPoint{
			{Lat: 59.9139, Lon: 10.7522, Time: base.UnixMilli(), Temperature: &temp, SymbolCode: &symbol, Source: domain.PointRoleStart},
			{Lat: 60.3913, Lon: 5.3221, Time: base.Add(7 * time.Hour).UnixMilli(), Source: domain.PointRoleEnd},
		},
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
}
