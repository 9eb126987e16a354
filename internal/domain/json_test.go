package domain

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestGeopointRequiresBothCoordinates(t *testing.T) {
	cases := map[string]string{
		`{}`:                  "both",
		`{"latitude": 1.5}`:   "longitude must be present",
		`{"longitude": -2.5}`: "latitude must be present",
	}
	for in, wantErr := range cases {
		var gp Geopoint
		err := json.Unmarshal([]byte(in), &gp)
		if err == nil {
			t.Fatalf("decode %s: expected error", in)
		}
		if !strings.Contains(err.Error(), wantErr) {
			t.Fatalf("decode %s: error %q does not mention %q", in, err, wantErr)
		}
	}
}

func TestNewGeopointRejectsNonFinite(t *testing.T) {
	if _, err := NewGeopoint(math.NaN(), 0); err == nil {
		t.Fatal("expected error for NaN latitude")
	}
	if _, err := NewGeopoint(0, math.Inf(1)); err == nil {
		t.Fatal("expected error for infinite longitude")
	}
	if _, err := NewGeopoint(33.45, -112.07); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocationRequiresGeopoint(t *testing.T) {
	var loc Location
	if err := json.Unmarshal([]byte(`{"uuid":"l1","label":"depot"}`), &loc); err == nil {
		t.Fatal("expected error for missing geopoint")
	}
	if err := json.Unmarshal([]byte(`{"uuid":"l1","geopoint":null}`), &loc); err == nil {
		t.Fatal("expected error for null geopoint")
	}
}

func TestTaskDecode(t *testing.T) {
	in := `{"uuid":"t1","location":{"uuid":"l1","label":"Main St","geopoint":{"latitude":33.4,"longitude":-112.1}}}`

	var task Task
	if err := json.Unmarshal([]byte(in), &task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "t1" || task.Location.ID != "l1" || task.Location.Label != "Main St" {
		t.Fatalf("decoded task = %+v", task)
	}
	if task.Point() != (Geopoint{Latitude: 33.4, Longitude: -112.1}) {
		t.Fatalf("decoded point = %v", task.Point())
	}

	if err := json.Unmarshal([]byte(`{"uuid":"t2"}`), &task); err == nil {
		t.Fatal("expected error for task without location")
	}
}

func TestDriverIdentityAndDisplayName(t *testing.T) {
	a := Driver{ID: "d1", Name: "Ada Lovelace"}
	if a.DisplayName() != "Ada Lovelace" {
		t.Fatalf("display name = %q", a.DisplayName())
	}

	unnamed := Driver{ID: "d2"}
	if unnamed.DisplayName() != "d2" {
		t.Fatalf("unnamed display name = %q, want id", unnamed.DisplayName())
	}
}

func TestTaskSet(t *testing.T) {
	s := NewTaskSet(taskAt("a", 0, 0), taskAt("b", 1, 1))
	if s.Add(taskAt("a", 5, 5)) {
		t.Fatal("adding a duplicate id should not change the set")
	}
	if !s.Add(taskAt("c", 2, 2)) {
		t.Fatal("adding a new id should change the set")
	}
	if s.Len() != 3 {
		t.Fatalf("set len=%d", s.Len())
	}

	copied := s.Tasks()
	copied[0] = taskAt("d", 3, 3)
	if s.Tasks()[0].ID != "a" {
		t.Fatal("Tasks shares its backing array with the set")
	}

	tasks := s.Tasks()
	if tasks[0].ID != "a" || tasks[1].ID != "b" || tasks[2].ID != "c" {
		t.Fatalf("insertion order lost: %v", tasks)
	}

	var zero TaskSet
	zero.Add(taskAt("z", 0, 0))
	if zero.Len() != 1 {
		t.Fatal("zero value set should accept tasks")
	}
}
