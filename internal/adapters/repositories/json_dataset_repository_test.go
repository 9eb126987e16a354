package repositories

import (
	"context"
	"delivery-assignment-service/internal/dataset"
	"delivery-assignment-service/internal/domain"
	"path/filepath"
	"testing"
)

func sampleDataset() *dataset.SampleDataset {
	return &dataset.SampleDataset{
		Drivers: []domain.Driver{{ID: "d1", Name: "Ada"}, {ID: "d2"}},
		Tasks: []domain.Task{
			{ID: "t1", Location: domain.Location{ID: "l1", Geopoint: domain.Geopoint{Latitude: 1, Longitude: 2}}},
			{ID: "t2", Location: domain.Location{ID: "l2", Label: "Depot", Geopoint: domain.Geopoint{Latitude: 3, Longitude: 4}}},
		},
	}
}

func TestJSONDatasetRepositoryReturnsCopies(t *testing.T) {
	repo := NewJSONDatasetRepository(sampleDataset())
	ctx := context.Background()

	drivers, err := repo.ListDrivers(ctx)
	if err != nil {
		t.Fatalf("ListDrivers: %v", err)
	}
	drivers[0].Name = "changed"

	again, err := repo.ListDrivers(ctx)
	if err != nil {
		t.Fatalf("ListDrivers: %v", err)
	}
	if again[0].Name != "Ada" {
		t.Fatalf("driver name = %q, repository was mutated through the returned slice", again[0].Name)
	}

	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != "t1" || tasks[1].ID != "t2" {
		t.Fatalf("tasks = %+v, want t1, t2 in order", tasks)
	}
}

func TestJSONDatasetRepositoryLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := sampleDataset().WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	repo, err := LoadJSONDatasetRepository(path)
	if err != nil {
		t.Fatalf("LoadJSONDatasetRepository: %v", err)
	}

	tasks, err := repo.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if tasks[1].Location.Label != "Depot" {
		t.Fatalf("label = %q, want Depot", tasks[1].Location.Label)
	}
}

func TestJSONDatasetRepositoryErrors(t *testing.T) {
	if _, err := (&JSONDatasetRepository{}).ListDrivers(context.Background()); err == nil {
		t.Fatalf("expected error for nil dataset")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewJSONDatasetRepository(sampleDataset()).ListTasks(ctx); err == nil {
		t.Fatalf("expected error for canceled context")
	}

	if _, err := LoadJSONDatasetRepository(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSeedRequiresDB(t *testing.T) {
	ctx := context.Background()
	if err := InitSchema(ctx, nil); err == nil {
		t.Fatalf("InitSchema: expected error for nil DB")
	}
	if err := SeedFromJSON(ctx, nil, "unused.json"); err == nil {
		t.Fatalf("SeedFromJSON: expected error for nil DB")
	}
	if _, err := (&PostgresDatasetRepository{}).ListTasks(ctx); err == nil {
		t.Fatalf("ListTasks: expected error for nil DB")
	}
}
