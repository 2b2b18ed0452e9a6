package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/domain/repository"
)

const planColumns = `
	id, start_address, waypoints, end_address, travel_type,
	base_time, departure_time, arrival_time,
	distance_meters, duration_seconds, weather, created_at`

type planRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlanRepository(db *DB) repository.PlanRepository {
	return &planRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// planRow - строка route_plans; weather хранится как jsonb
type planRow struct {
	ID              uuid.UUID      `db:"id"`
	StartAddress    string         `db:"start_address"`
	Waypoints       pq.StringArray `db:"waypoints"`
	EndAddress      string         `db:"end_address"`
	TravelType      string         `db:"travel_type"`
	BaseTime        time.Time      `db:"base_time"`
	DepartureTime   time.Time      `db:"departure_time"`
	ArrivalTime     time.Time      `db:"arrival_time"`
	DistanceMeters  float64        `db:"distance_meters"`
	DurationSeconds float64        `db:"duration_seconds"`
	Weather         []byte         `db:"weather"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (row *planRow) toDomain() (*domain.RoutePlan, error) {
	plan := &domain.RoutePlan{
		ID:              row.ID,
		StartAddress:    row.StartAddress,
		Waypoints:       []string(row.Waypoints),
		EndAddress:      row.EndAddress,
		TravelType:      domain.TravelType(row.TravelType),
		BaseTime:        row.BaseTime.UTC(),
		DepartureTime:   row.DepartureTime.UTC(),
		ArrivalTime:     row.ArrivalTime.UTC(),
		DistanceMeters:  row.DistanceMeters,
		DurationSeconds: row.DurationSeconds,
		CreatedAt:       row.CreatedAt.UTC(),
	}
	if plan.Waypoints == nil {
		plan.Waypoints = []string{}
	}
	if len(row.Weather) > 0 {
		if err := json.Unmarshal(row.Weather, &plan.Weather); err != nil {
			return nil, fmt.Errorf("unmarshal weather: %w", err)
		}
	}
	return plan, nil
}

func (r *planRepository) Save(ctx context.Context, plan *domain.RoutePlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	waypoints := plan.Waypoints
	if waypoints == nil {
		waypoints = []string{}
	}
	weather := plan.Weather
	if weather == nil {
		weather = []domain.WeatherPoint{}
	}

	weatherJSON, err := json.Marshal(weather)
	if err != nil {
		return fmt.Errorf("marshal weather: %w", err)
	}

	query := `
		INSERT INTO route_plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.db.ExecContext(ctx, query,
		plan.ID, plan.StartAddress, pq.Array(waypoints), plan.EndAddress, string(plan.TravelType),
		plan.BaseTime, plan.DepartureTime, plan.ArrivalTime,
		plan.DistanceMeters, plan.DurationSeconds, string(weatherJSON), plan.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save route plan", zap.String("id", plan.ID.String()), zap.Error(err))
		return fmt.Errorf("insert route plan: %w", err)
	}

	r.logger.Debug("Route plan saved", zap.String("id", plan.ID.String()))
	return nil
}

func (r *planRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoutePlan, error) {
	query := `SELECT ` + planColumns + ` FROM route_plans WHERE id = $1`

	var row planRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlanNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route plan", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("select route plan: %w", err)
	}

	return row.toDomain()
}

func (r *planRepository) ListRecent(ctx context.Context, limit int) ([]*domain.RoutePlan, error) {
	query := `SELECT ` + planColumns + ` FROM route_plans ORDER BY created_at DESC, id LIMIT $1`

	var rows []planRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		r.logger.Error("Failed to list route plans", zap.Int("limit", limit), zap.Error(err))
		return nil, fmt.Errorf("select route plans: %w", err)
	}

	plans := make([]*domain.RoutePlan, 0, len(rows))
	for i := range rows {
		plan, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *planRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM route_plans WHERE created_at < $1`, cutoff)
	if err != nil {
		r.logger.Error("Failed to delete old route plans", zap.Time("cutoff", cutoff), zap.Error(err))
		return 0, fmt.Errorf("delete route plans: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}
