package dataset

import (
	"delivery-assignment-service/internal/domain"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Generator builds random datasets. All randomness, IDs included, is drawn
// from rng so a fixed seed reproduces the same dataset.
type Generator struct {
	rng    *rand.Rand
	names  NameHelper
	bounds Bounds
}

func NewGenerator(rng *rand.Rand, names NameHelper, bounds Bounds) *Generator {
	return &Generator{rng: rng, names: names, bounds: bounds}
}

// Generate creates spec.NumberOfDrivers drivers and, per driver, between
// TasksPerDriver-Variance and TasksPerDriver tasks (never fewer than one).
func (g *Generator) Generate(spec DatasetSpec) (*SampleDataset, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("generate dataset: %w", err)
	}
	if err := g.names.Validate(); err != nil {
		return nil, fmt.Errorf("generate dataset: %w", err)
	}

	ds := &SampleDataset{
		Drivers: make([]domain.Driver, 0, spec.NumberOfDrivers),
		Tasks:   make([]domain.Task, 0, spec.NumberOfDrivers*spec.TasksPerDriver),
		Names:   &NameHelper{First: g.names.First, Last: g.names.Last},
	}

	for i := 0; i < spec.NumberOfDrivers; i++ {
		ds.Drivers = append(ds.Drivers, domain.Driver{
			ID:   g.newID(),
			Name: g.names.GenerateName(g.rng),
		})

		n := spec.TasksPerDriver - g.rng.Intn(spec.VarianceInTasksPerDriver+1)
		if n < 1 {
			n = 1
		}
		for j := 0; j < n; j++ {
			ds.Tasks = append(ds.Tasks, g.newTask())
		}
	}

	return ds, nil
}

// Task generates a single task inside the bounds.
func (g *Generator) Task() domain.Task { return g.newTask() }

func (g *Generator) newTask() domain.Task {
	return domain.Task{
		ID: g.newID(),
		Location: domain.Location{
			ID:       g.newID(),
			Geopoint: g.bounds.RandomPoint(g.rng),
		},
	}
}

func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
