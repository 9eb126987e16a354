package domain

import "testing"

func TestDistanceNilOrigin(t *testing.T) {
	if d := Distance(nil, taskAt("a", 33.4, -112.1)); d != 0 {
		t.Fatalf("distance from nil = %v, want 0", d)
	}
}

func TestDistanceManhattan(t *testing.T) {
	a := taskAt("a", 1, 2)
	b := taskAt("b", 4, -2)

	assertFloat(t, "distance", Distance(&a, b), 7)
}

func TestDistanceSymmetric(t *testing.T) {
	points := [][2]float64{{0, 0}, {1.5, -3}, {-33.9, 151.2}, {33.45, -112.07}, {90, 180}}
	for i, p := range points {
		for j, q := range points {
			a := taskAt("a", p[0], p[1])
			b := taskAt("b", q[0], q[1])
			if ab, ba := Distance(&a, b), Distance(&b, a); ab != ba {
				t.Fatalf("points %d,%d: distance(a,b)=%v distance(b,a)=%v", i, j, ab, ba)
			}
		}
	}
}

func TestDistanceSamePointIsZero(t *testing.T) {
	a := taskAt("a", 10, 10)
	b := taskAt("b", 10, 10)
	if d := Distance(&a, b); d != 0 {
		t.Fatalf("distance = %v, want 0", d)
	}
}

func TestRouteDistance(t *testing.T) {
	tasks := []Task{taskAt("a", 0, 0), taskAt("b", 10, 10), taskAt("c", 10, 5)}
	assertFloat(t, "route distance", RouteDistance(tasks), 25)

	if d := RouteDistance(nil); d != 0 {
		t.Fatalf("empty route distance = %v, want 0", d)
	}
}
