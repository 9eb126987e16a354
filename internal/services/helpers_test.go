package services

import (
	"context"
	"delivery-assignment-service/internal/domain"
)

func taskAt(id string, lat, lon float64) domain.Task {
	return domain.Task{
		ID: id,
		Location: domain.Location{
			ID:       "loc-" + id,
			Geopoint: domain.Geopoint{Latitude: lat, Longitude: lon},
		},
	}
}

type fakeRepo struct {
	drivers []domain.Driver
	tasks   []domain.Task
	err     error
}

func (r *fakeRepo) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	return r.drivers, r.err
}

func (r *fakeRepo) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return r.tasks, r.err
}
