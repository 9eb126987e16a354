package handlers

import (
	"context"
	"delivery-assignment-service/internal/adapters/repositories"
	"delivery-assignment-service/internal/api/dto"
	"delivery-assignment-service/internal/dataset"
	"delivery-assignment-service/internal/domain"
	"delivery-assignment-service/internal/ports"
	"delivery-assignment-service/internal/services"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// errBadRequest marks dataset selection errors caused by the request itself.
var errBadRequest = errors.New("bad request")

type AssignmentHandler struct {
	// Repo supplies the dataset when the request does not pick one. When nil,
	// a dataset is generated from DefaultSpec.
	Repo        ports.DatasetRepository
	Catalog     *dataset.Catalog
	DefaultSpec dataset.DatasetSpec
	// Source provides names and bounds for generated datasets and candidate tasks.
	Source dataset.Source
	// Seed provides the random seed when the request carries none.
	Seed func() int64
}

// Assign runs the greedy engine over one dataset and returns each driver's
// workload plus the text report.
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AssignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	gen := h.Source.Generator(h.seed(req))

	repo, err := h.repository(req, gen)
	switch {
	case errors.Is(err, dataset.ErrUnknownDataset):
		writeError(w, r, http.StatusNotFound, fmt.Sprintf(
			"unknown dataset %q (available: %s)", req.Dataset, strings.Join(h.catalog().Names(), ", "),
		))
		return
	case errors.Is(err, errBadRequest):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Printf("assign: resolve dataset failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	manager, err := services.PlanAssignments(r.Context(), services.PlanAssignmentsRequest{}, repo)
	switch {
	case errors.Is(err, services.ErrNoDrivers):
		writeError(w, r, http.StatusUnprocessableEntity, "dataset has no drivers")
		return
	case errors.Is(err, context.Canceled):
		writeError(w, r, http.StatusServiceUnavailable, "request canceled")
		return
	case err != nil:
		log.Printf("assign: plan assignments failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.AssignmentResponse{Drivers: driverResponses(manager.Tasklists())}

	// Drivers left without tasks have no report line; the report is omitted.
	report, err := manager.Report()
	if err == nil {
		res.Report = report
	} else if !errors.Is(err, services.ErrEmptyTasklist) {
		log.Printf("assign: report failed: %v", err)
	}

	if req.BlindCheck {
		check, err := blindCheck(manager, gen.Task())
		if errors.Is(err, services.ErrEmptySnapshot) {
			writeError(w, r, http.StatusUnprocessableEntity, "blind check needs every driver to hold at least one task")
			return
		}
		if err != nil {
			log.Printf("assign: blind check failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		res.BlindCheck = check
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *AssignmentHandler) seed(req dto.AssignmentRequest) int64 {
	if req.Seed != nil {
		return *req.Seed
	}
	if h.Seed != nil {
		return h.Seed()
	}
	return 1
}

func (h *AssignmentHandler) catalog() *dataset.Catalog {
	if h.Catalog == nil {
		return dataset.NewCatalog()
	}
	return h.Catalog
}

// repository picks the dataset source: a catalog entry by name, a generated
// dataset when any generation field is set, otherwise the configured repository.
func (h *AssignmentHandler) repository(req dto.AssignmentRequest, gen *dataset.Generator) (ports.DatasetRepository, error) {
	if req.Dataset != "" {
		if req.Generates() {
			return nil, fmt.Errorf("%w: dataset cannot be combined with generation fields", errBadRequest)
		}
		ds, err := h.catalog().Resolve(req.Dataset, gen)
		if err != nil {
			return nil, err
		}
		return repositories.NewJSONDatasetRepository(ds), nil
	}

	if !req.Generates() && h.Repo != nil {
		return h.Repo, nil
	}

	spec := h.DefaultSpec
	spec.Name = ""
	if req.NumberOfDrivers != nil {
		spec.NumberOfDrivers = *req.NumberOfDrivers
	}
	if req.TasksPerDriver != nil {
		spec.TasksPerDriver = *req.TasksPerDriver
	}
	if req.VarianceInTasksPerDriver != nil {
		spec.VarianceInTasksPerDriver = *req.VarianceInTasksPerDriver
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}

	ds, err := gen.Generate(spec)
	if err != nil {
		return nil, err
	}
	return repositories.NewJSONDatasetRepository(ds), nil
}

func driverResponses(lists []*domain.Tasklist) []dto.DriverAssignmentResponse {
	out := make([]dto.DriverAssignmentResponse, 0, len(lists))
	for _, tl := range lists {
		tasks := tl.AssignedTasks()
		ids := make([]string, 0, len(tasks))
		for _, t := range tasks {
			ids = append(ids, t.ID)
		}

		var firstToLast float64
		if first, ok := tl.FirstAssignedTask(); ok {
			last, _ := tl.LastAssignedTask()
			firstToLast = domain.Distance(&first, last)
		}

		out = append(out, dto.DriverAssignmentResponse{
			DriverID:            tl.Driver().ID,
			Name:                tl.Driver().Name,
			LoadEstimate:        tl.LoadEstimate(),
			TaskCount:           tl.TaskCount(),
			KnownDistance:       tl.KnownDistance(),
			FirstToLastDistance: firstToLast,
			TaskIDs:             ids,
		})
	}
	return out
}

// blindCheck resolves candidate on the engine and on a snapshot view of it.
// Neither side is modified.
func blindCheck(manager *services.TaskManager, candidate domain.Task) (*dto.BlindCheckResponse, error) {
	engineDriver, err := manager.ResolveLowestCostAssignment(candidate)
	if err != nil {
		return nil, fmt.Errorf("blind check: engine: %w", err)
	}

	blind := services.NewBlindTaskManager(manager)
	blindDriver, err := blind.ResolveLowestCostAssignment(candidate)
	if err != nil {
		return nil, fmt.Errorf("blind check: snapshot: %w", err)
	}

	return &dto.BlindCheckResponse{
		TaskID:         candidate.ID,
		EngineDriverID: engineDriver.ID,
		BlindDriverID:  blindDriver.ID,
	}, nil
}
