package services

import (
	"context"
	"delivery-assignment-service/internal/domain"
	"delivery-assignment-service/internal/platform/metrics"
	"delivery-assignment-service/internal/platform/obs"
	"delivery-assignment-service/internal/ports"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
)

type PlanAssignmentsRequest struct {
	// Logger receives one line per assignment when set.
	Logger *log.Logger
}

// PlanAssignments loads a dataset from repo and feeds its tasks, in order,
// through a fresh TaskManager. Each task goes to the driver that is cheapest
// at the moment it arrives; nothing is rebalanced afterwards.
func PlanAssignments(
	ctx context.Context,
	req PlanAssignmentsRequest,
	repo ports.DatasetRepository,
) (_ *TaskManager, err error) {
	defer obs.Time(ctx, "services.PlanAssignments")(&err)
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.PlanRuns.WithLabelValues(status).Inc()
	}()

	var (
		drivers []domain.Driver
		tasks   []domain.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if drivers, err = repo.ListDrivers(gctx); err != nil {
			return fmt.Errorf("list drivers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if tasks, err = repo.ListTasks(gctx); err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("plan assignments: %w", err)
	}

	log.Printf("plan assignments: tasks=%d drivers=%d", len(tasks), len(drivers))

	manager := NewTaskManager(drivers)
	manager.SetLogger(req.Logger)

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("plan assignments: %w", err)
		}

		cost, err := assignCheapest(manager, task)
		if err != nil {
			return nil, fmt.Errorf("plan assignments: task=%s: %w", task.ID, err)
		}

		metrics.TaskAssignments.Inc()
		metrics.AssignmentCost.Observe(cost)
	}

	return manager, nil
}

// assignCheapest assigns task and returns the marginal cost it was assigned at.
func assignCheapest(m *TaskManager, task domain.Task) (float64, error) {
	driver, err := m.ResolveLowestCostAssignment(task)
	if err != nil {
		return 0, err
	}

	var cost float64
	if tl, ok := m.TasklistForDriver(driver); ok {
		cost = tl.CostToAssignTask(task)
	}

	m.AssignToDriver(driver, task)
	return cost, nil
}
