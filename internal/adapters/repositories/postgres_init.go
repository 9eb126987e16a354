package repositories

import (
	"context"
	"database/sql"
	"delivery-assignment-service/internal/dataset"
	"errors"
	"fmt"
)

// InitSchema creates the driver and task tables.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// seq preserves insertion order; the task stream is order-sensitive.
	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		seq SERIAL,
		driver_id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT ''
	);
	`

	createTasksQuery := `
	CREATE TABLE IF NOT EXISTS tasks (
		seq SERIAL,
		task_id TEXT PRIMARY KEY,
		location_id TEXT NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_tasks_seq ON tasks(seq);
	`

	statements := []string{
		createDriversQuery,
		createTasksQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedFromJSON upserts the drivers and tasks of a dataset file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed dataset: DB is nil")
	}

	ds, err := dataset.LoadSampleDataset(jsonPath)
	if err != nil {
		return fmt.Errorf("seed dataset: %w", err)
	}

	return SeedDataset(ctx, db, ds)
}

func SeedDataset(ctx context.Context, db *sql.DB, ds *dataset.SampleDataset) error {
	if db == nil {
		return errors.New("seed dataset: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed dataset: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	driverQuery := `
	INSERT INTO drivers (driver_id, name)
	VALUES ($1, $2)
	ON CONFLICT (driver_id) DO UPDATE SET name = EXCLUDED.name;
	`
	driverStmt, err := tx.PrepareContext(ctx, driverQuery)
	if err != nil {
		return fmt.Errorf("seed dataset: prepare driver insert: %w", err)
	}
	defer driverStmt.Close()

	for _, d := range ds.Drivers {
		if _, err := driverStmt.ExecContext(ctx, d.ID, d.Name); err != nil {
			return fmt.Errorf("seed dataset: insert driver_id=%s: %w", d.ID, err)
		}
	}

	taskQuery := `
	INSERT INTO tasks (task_id, location_id, label, latitude, longitude)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (task_id) DO UPDATE SET
		location_id = EXCLUDED.location_id,
		label = EXCLUDED.label,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`
	taskStmt, err := tx.PrepareContext(ctx, taskQuery)
	if err != nil {
		return fmt.Errorf("seed dataset: prepare task insert: %w", err)
	}
	defer taskStmt.Close()

	for _, t := range ds.Tasks {
		gp := t.Point()
		if _, err := taskStmt.ExecContext(ctx, t.ID, t.Location.ID, t.Location.Label, gp.Latitude, gp.Longitude); err != nil {
			return fmt.Errorf("seed dataset: insert task_id=%s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed dataset: commit tx: %w", err)
	}

	return nil
}
