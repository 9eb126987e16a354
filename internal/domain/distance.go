package domain

import (
	"fmt"
	"math"
)

// Distance is a toy travel-cost proxy between two tasks: the summed absolute
// difference of latitude and longitude (L1), not a geodesic distance.
//
// A nil from means the driver has no prior task, which costs nothing.
func Distance(from *Task, to Task) float64 {
	if from == nil {
		return 0
	}

	a := from.Point()
	b := to.Point()
	d := math.Abs(a.Latitude-b.Latitude) + math.Abs(a.Longitude-b.Longitude)
	if d < 0 {
		panic(fmt.Sprintf("distance: negative result %v between %s and %s", d, a, b))
	}
	return d
}

// RouteDistance folds Distance over tasks in order.
func RouteDistance(tasks []Task) float64 {
	var (
		total float64
		prev  *Task
	)
	for i := range tasks {
		total += Distance(prev, tasks[i])
		prev = &tasks[i]
	}
	return total
}
