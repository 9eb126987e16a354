package config

import (
	"delivery-assignment-service/internal/dataset"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	DatasetPath string
	CatalogPath string
	SeedPath    string

	// Reference data for generated datasets; empty paths mean the built-in files.
	BoundsPath     string
	FirstNamesPath string
	LastNamesPath  string

	// RandomSeed is used for generated datasets; zero means seed from the clock.
	RandomSeed int64
	Spec       dataset.DatasetSpec
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, raw, err)
	}
	return n, nil
}

// Load reads the configuration. Call godotenv.Load first to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Port:        Get("PORT", "8080"),
		DatabaseURL: Get("DATABASE_URL", ""),
		DatasetPath: Get("DATASET_PATH", ""),
		CatalogPath: Get("DATASET_CATALOG", "data/datasets.yaml"),
		SeedPath:    Get("SEED_PATH", "data/seeds/dataset.json"),

		BoundsPath:     Get("BOUNDS_PATH", ""),
		FirstNamesPath: Get("FIRST_NAMES_PATH", ""),
		LastNamesPath:  Get("LAST_NAMES_PATH", ""),
	}

	if raw := Get("RANDOM_SEED", ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: RANDOM_SEED=%q: %w", raw, err)
		}
		cfg.RandomSeed = seed
	}

	spec := dataset.DefaultSpec()
	spec.Name = ""
	var err error
	if spec.NumberOfDrivers, err = getInt("NUMBER_OF_DRIVERS", spec.NumberOfDrivers); err != nil {
		return Config{}, err
	}
	if spec.TasksPerDriver, err = getInt("TASKS_PER_DRIVER", spec.TasksPerDriver); err != nil {
		return Config{}, err
	}
	if spec.VarianceInTasksPerDriver, err = getInt("TASK_VARIANCE", spec.VarianceInTasksPerDriver); err != nil {
		return Config{}, err
	}
	if err := spec.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.Spec = spec

	return cfg, nil
}

// Seed returns RandomSeed, or a clock-derived seed when none was configured.
func (c Config) Seed() int64 {
	if c.RandomSeed != 0 {
		return c.RandomSeed
	}
	return time.Now().UnixNano()
}

// LoadSource reads the configured bounds and name files.
func (c Config) LoadSource() (dataset.Source, error) {
	src, err := dataset.LoadSource(c.BoundsPath, c.FirstNamesPath, c.LastNamesPath)
	if err != nil {
		return dataset.Source{}, fmt.Errorf("config: %w", err)
	}
	return src, nil
}
