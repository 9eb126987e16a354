package main

import (
	"context"
	"delivery-assignment-service/internal/adapters/repositories"
	"delivery-assignment-service/internal/config"
	"delivery-assignment-service/internal/dataset"
	"delivery-assignment-service/internal/services"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const usage = `Usage: deliverytool [-q | -v] [-d NAME | -f PATH] [-seed N] [-o PATH]

Assigns a stream of delivery tasks to drivers, one at a time, always to the
driver that can take the task most cheaply, and prints the task report.
Without -d or -f a dataset is generated from NUMBER_OF_DRIVERS,
TASKS_PER_DRIVER and TASK_VARIANCE, with task locations inside BOUNDS_PATH
(GeoJSON) and driver names from FIRST_NAMES_PATH / LAST_NAMES_PATH.

Flags:
`

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	quiet   bool
	verbose bool
	name    string
	file    string
	seed    int64
	out     string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fset := flag.NewFlagSet("deliverytool", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprint(stderr, usage)
		fset.PrintDefaults()
	}
	fset.BoolVar(&opts.quiet, "q", false, "quiet: no log output (wins over -v)")
	fset.BoolVar(&opts.verbose, "v", false, "verbose: log every assignment")
	fset.StringVar(&opts.name, "d", "", "run the named dataset from the catalog")
	fset.StringVar(&opts.file, "f", "", "run the dataset stored in a JSON file")
	fset.Int64Var(&opts.seed, "seed", 0, "random seed (default: RANDOM_SEED or the clock)")
	fset.StringVar(&opts.out, "o", "", "write the dataset that was run to a JSON file")

	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	if fset.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}
	if opts.name != "" && opts.file != "" {
		return options{}, errors.New("-d and -f are mutually exclusive")
	}
	if opts.quiet {
		opts.verbose = false
	}
	return opts, nil
}

// run returns the process exit code: 0 on success, 1 on failure, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "deliverytool: %v\n", err)
		return 2
	}

	prevOut, prevFlags := log.Writer(), log.Flags()
	defer func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	}()
	if opts.quiet {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(stderr)
	}

	if err := assign(context.Background(), opts, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "deliverytool: %v\n", err)
		return 1
	}
	return 0
}

func assign(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = cfg.Seed()
	}
	src, err := cfg.LoadSource()
	if err != nil {
		return err
	}
	gen := src.Generator(seed)

	ds, err := loadDataset(opts, cfg, gen)
	if err != nil {
		return err
	}
	log.Printf("dataset drivers=%d tasks=%d seed=%d", len(ds.Drivers), len(ds.Tasks), seed)

	if opts.out != "" {
		if err := ds.WriteFile(opts.out); err != nil {
			return err
		}
	}

	req := services.PlanAssignmentsRequest{}
	if opts.verbose {
		req.Logger = log.New(stderr, "", 0)
	}

	manager, err := services.PlanAssignments(ctx, req, repositories.NewJSONDatasetRepository(ds))
	if err != nil {
		return err
	}

	report, err := manager.Report()
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, report)
	return err
}

func loadDataset(opts options, cfg config.Config, gen *dataset.Generator) (*dataset.SampleDataset, error) {
	switch {
	case opts.file != "":
		return dataset.LoadSampleDataset(opts.file)
	case opts.name != "":
		catalog, err := dataset.LoadCatalog(cfg.CatalogPath)
		if errors.Is(err, fs.ErrNotExist) {
			catalog, err = dataset.NewCatalog(), nil
		}
		if err != nil {
			return nil, err
		}
		return catalog.Resolve(opts.name, gen)
	default:
		return gen.Generate(cfg.Spec)
	}
}
