package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_villas",
		SQL: `CREATE TABLE IF NOT EXISTS villas (
  id           SERIAL           PRIMARY KEY,
  name         TEXT             NOT NULL,
  details      TEXT             NOT NULL DEFAULT '',
  rate         DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (rate >= 0),
  sqft         INTEGER          NOT NULL DEFAULT 0 CHECK (sqft >= 0),
  occupancy    INTEGER          NOT NULL DEFAULT 0 CHECK (occupancy >= 0),
  image_url    TEXT             NOT NULL DEFAULT '',
  amenity      TEXT             NOT NULL DEFAULT '',
  created_date TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_date TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_villas_lower_name",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_villas_lower_name ON villas (lower(name));`,
	},
	{
		Name: "create_table_villa_numbers",
		SQL: `CREATE TABLE IF NOT EXISTS villa_numbers (
  villa_no        INTEGER     PRIMARY KEY CHECK (villa_no > 0),
  villa_id        INTEGER     NOT NULL REFERENCES villas (id),
  special_details TEXT        NOT NULL DEFAULT '',
  created_date    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_date    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_villa_numbers_villa_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_villa_numbers_villa_id ON villa_numbers (villa_id);`,
	},
}

// EnsureMigrated checks if the 'villa_numbers' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.villa_numbers') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("detail", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
