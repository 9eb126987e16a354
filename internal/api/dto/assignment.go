package dto

// AssignmentRequest selects the dataset for one assignment run. Leave every
// field empty to use the server's configured dataset.
type AssignmentRequest struct {
	Dataset                  string `json:"dataset" validate:"omitempty,max=64"`
	NumberOfDrivers          *int   `json:"number_of_drivers" validate:"omitempty,min=1,max=1000"`
	TasksPerDriver           *int   `json:"tasks_per_driver" validate:"omitempty,min=1,max=1000"`
	VarianceInTasksPerDriver *int   `json:"variance_in_tasks_per_driver" validate:"omitempty,min=0"`
	Seed                     *int64 `json:"seed"`
	BlindCheck               bool   `json:"blind_check"`
}

// Generates reports whether the request asks for a freshly generated dataset.
// Seed alone does not: it only seeds whatever randomness the run needs.
func (r AssignmentRequest) Generates() bool {
	return r.NumberOfDrivers != nil || r.TasksPerDriver != nil || r.VarianceInTasksPerDriver != nil
}

type DriverAssignmentResponse struct {
	DriverID            string   `json:"driver_id"`
	Name                string   `json:"name"`
	LoadEstimate        float64  `json:"load_estimate"`
	TaskCount           int      `json:"task_count"`
	KnownDistance       float64  `json:"known_distance"`
	FirstToLastDistance float64  `json:"first_to_last_distance"`
	TaskIDs             []string `json:"task_ids"`
}

// BlindCheckResponse compares the engine's choice for one candidate task with the
// choice of a snapshot view built from the engine's export.
type BlindCheckResponse struct {
	TaskID         string `json:"task_id"`
	EngineDriverID string `json:"engine_driver_id"`
	BlindDriverID  string `json:"blind_driver_id"`
}

type AssignmentResponse struct {
	Drivers    []DriverAssignmentResponse `json:"drivers"`
	Report     string                     `json:"report,omitempty"`
	BlindCheck *BlindCheckResponse        `json:"blind_check,omitempty"`
}
