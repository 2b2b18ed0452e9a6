package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain/repository"
	"github.com/route-weather-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database
func NewDBForTest(db *sqlx.DB) *postgres.DB {
	return postgres.NewDBForTest(db, zap.NewNop())
}

// NewPlanRepositoryForTest creates a plan repository with test database and logger
func NewPlanRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlanRepository {
	return postgres.NewPlanRepository(postgres.NewDBForTest(db, logger))
}
