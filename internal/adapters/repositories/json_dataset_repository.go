package repositories

import (
	"context"
	"delivery-assignment-service/internal/dataset"
	"delivery-assignment-service/internal/domain"
	"errors"
)

// In-memory implementation of the DatasetRepository port, serving a loaded
// or generated dataset.
type JSONDatasetRepository struct{ Dataset *dataset.SampleDataset }

func NewJSONDatasetRepository(ds *dataset.SampleDataset) *JSONDatasetRepository {
	return &JSONDatasetRepository{Dataset: ds}
}

// LoadJSONDatasetRepository reads a dataset file into a repository.
func LoadJSONDatasetRepository(path string) (*JSONDatasetRepository, error) {
	ds, err := dataset.LoadSampleDataset(path)
	if err != nil {
		return nil, err
	}
	return NewJSONDatasetRepository(ds), nil
}

func (j *JSONDatasetRepository) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	if j.Dataset == nil {
		return nil, errors.New("json dataset repository: dataset is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Driver(nil), j.Dataset.Drivers...), nil
}

func (j *JSONDatasetRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if j.Dataset == nil {
		return nil, errors.New("json dataset repository: dataset is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Task(nil), j.Dataset.Tasks...), nil
}
