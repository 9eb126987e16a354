package main

import (
	"context"
	"database/sql"
	"delivery-assignment-service/internal/adapters/repositories"
	"delivery-assignment-service/internal/config"
	"delivery-assignment-service/internal/dataset"
	"delivery-assignment-service/internal/platform/db"
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool prepares a Postgres database: creates the schema and seeds it either
// from SEED_PATH or from a freshly generated dataset (-generate).
func main() {
	generate := flag.Bool("generate", false, "seed a generated dataset instead of SEED_PATH")
	seed := flag.Int64("seed", 0, "random seed for -generate (default: RANDOM_SEED or the clock)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if *generate {
		if *seed == 0 {
			*seed = cfg.Seed()
		}
		src, err := cfg.LoadSource()
		if err != nil {
			log.Fatal(err)
		}
		initAndGenerate(ctx, conn, src.Generator(*seed), cfg.Spec, *seed)
		return
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/dataset.json")
	initAndSeed(ctx, conn, seedPath)
}

func initSchema(ctx context.Context, conn *sql.DB) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) {
	initSchema(ctx, conn)

	log.Printf("Seeding database from %s...", seedPath)
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func initAndGenerate(ctx context.Context, conn *sql.DB, gen *dataset.Generator, spec dataset.DatasetSpec, seed int64) {
	initSchema(ctx, conn)

	ds, err := gen.Generate(spec)
	if err != nil {
		log.Fatalf("generate dataset failed: %v", err)
	}

	log.Printf("Seeding generated dataset seed=%d drivers=%d tasks=%d...", seed, len(ds.Drivers), len(ds.Tasks))
	if err := repositories.SeedDataset(ctx, conn, ds); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
