package ports

import (
	"context"
	"delivery-assignment-service/internal/domain"
)

// Port: a boundary for retrieving the drivers and the ordered task stream
// an assignment run works on.
type DatasetRepository interface {
	// Retrieve all drivers available for assignment.
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
	// Retrieve tasks in the order they should be assigned.
	ListTasks(ctx context.Context) ([]domain.Task, error)
}
