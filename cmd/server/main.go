package main

import (
	"context"
	"database/sql"
	"delivery-assignment-service/internal/adapters/repositories"
	"delivery-assignment-service/internal/api"
	"delivery-assignment-service/internal/api/handlers"
	"delivery-assignment-service/internal/config"
	"delivery-assignment-service/internal/dataset"
	"delivery-assignment-service/internal/platform/db"
	"delivery-assignment-service/internal/platform/metrics"
	"delivery-assignment-service/internal/ports"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It picks the dataset source (Postgres, JSON file, or per-request generation)
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	metrics.RegisterDefault()

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatal(err)
	}

	src, err := cfg.LoadSource()
	if err != nil {
		log.Fatal(err)
	}

	repo, closeRepo, err := openRepository(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepo()

	router := api.NewRouter(&handlers.AssignmentHandler{
		Repo:        repo,
		Catalog:     catalog,
		DefaultSpec: cfg.Spec,
		Source:      src,
		Seed:        cfg.Seed,
	})

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func loadCatalog(path string) (*dataset.Catalog, error) {
	catalog, err := dataset.LoadCatalog(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("catalog not found path=%s (using built-in datasets)", path)
		return dataset.NewCatalog(), nil
	}
	return catalog, err
}

// openRepository returns nil when no dataset source is configured; the
// handler then generates a dataset per request.
func openRepository(ctx context.Context, cfg config.Config) (ports.DatasetRepository, func(), error) {
	noop := func() {}

	switch {
	case cfg.DatabaseURL != "":
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := initAndSeed(ctx, conn, cfg.SeedPath); err != nil {
			conn.Close()
			return nil, noop, err
		}
		log.Printf("dataset source=postgres")
		return repositories.NewPostgresDatasetRepository(conn), func() { conn.Close() }, nil

	case cfg.DatasetPath != "":
		repo, err := repositories.LoadJSONDatasetRepository(cfg.DatasetPath)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("dataset source=file path=%s", cfg.DatasetPath)
		return repo, noop, nil

	default:
		log.Printf("dataset source=generated drivers=%d tasks_per_driver=%d",
			cfg.Spec.NumberOfDrivers, cfg.Spec.TasksPerDriver)
		return nil, noop, nil
	}
}

// initAndSeed creates the schema and, for local runs, loads the seed file when present.
func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); errors.Is(err, fs.ErrNotExist) {
		log.Printf("seed file not found path=%s (skipping seed)", seedPath)
		return nil
	}

	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
