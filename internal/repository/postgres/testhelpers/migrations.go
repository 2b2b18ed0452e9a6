package testhelpers

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// ApplyMigrations применяет встроенную схему к тестовой БД
func ApplyMigrations(ctx context.Context, db *sqlx.DB) error {
	return NewDBForTest(db).EnsureSchema(ctx)
}
