package domain

import (
	"math"
	"testing"
)

func taskAt(id string, lat, lon float64) Task {
	return Task{ID: id, Location: Location{ID: "loc-" + id, Geopoint: Geopoint{Latitude: lat, Longitude: lon}}}
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}
