package repositories

import (
	"context"
	"database/sql"
	"delivery-assignment-service/internal/domain"
	"delivery-assignment-service/internal/platform/obs"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the DatasetRepository port.
type PostgresDatasetRepository struct{ DB *sql.DB }

func NewPostgresDatasetRepository(db *sql.DB) *PostgresDatasetRepository {
	return &PostgresDatasetRepository{DB: db}
}

// ListDrivers returns drivers in the order they were first stored.
func (p *PostgresDatasetRepository) ListDrivers(ctx context.Context) (_ []domain.Driver, err error) {
	defer obs.Time(ctx, "repositories.ListDrivers")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres dataset repository: DB is nil")
	}

	query := `
	SELECT
		driver_id,
		name
	FROM drivers
	ORDER BY seq;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	drivers := make([]domain.Driver, 0, 64)
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("list drivers: scan row: %w", err)
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return drivers, nil
}

// ListTasks returns the task stream in insertion order.
func (p *PostgresDatasetRepository) ListTasks(ctx context.Context) (_ []domain.Task, err error) {
	defer obs.Time(ctx, "repositories.ListTasks")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres dataset repository: DB is nil")
	}

	query := `
	SELECT
		task_id,
		location_id,
		label,
		latitude,
		longitude
	FROM tasks
	ORDER BY seq;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: query tasks table: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0, 256)
	for rows.Next() {
		var t domain.Task
		var gp domain.Geopoint
		if err := rows.Scan(&t.ID, &t.Location.ID, &t.Location.Label, &gp.Latitude, &gp.Longitude); err != nil {
			return nil, fmt.Errorf("list tasks: scan row: %w", err)
		}
		t.Location.Geopoint = gp
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: row iteration: %w", err)
	}

	return tasks, nil
}
