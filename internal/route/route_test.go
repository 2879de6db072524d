package route

import (
	"math"
	"math/rand"
	"testing"
)

func TestDefaultTableCoversEverySpawnPoint(t *testing.T) {
	table := Default()
	for _, sp := range SpawnPoints {
		if table.Len(sp) < 2 {
			t.Fatalf("route %s too short: %d", sp, table.Len(sp))
		}
	}
}

func TestNewTableRejectsMismatchedTurns(t *testing.T) {
	routes := map[SpawnPoint]Route{}
	for sp, r := range defaultRoutes {
		routes[sp] = r
	}
	routes[Left] = Route{
		Checkpoints: []Point{{-0.5, 0}, {1, 0}},
		Turns:       []Direction{DirRight},
	}
	if _, err := NewTable(Reference, routes); err == nil {
		t.Fatalf("expected error for mismatched turns")
	}
	delete(routes, Left)
	if _, err := NewTable(Reference, routes); err == nil {
		t.Fatalf("expected error for missing route")
	}
}

func TestCheckpointIndependentOfViewport(t *testing.T) {
	table := Default()
	want := Point{X: -0.31 * Reference.Width, Y: 0.5 * Reference.Height}
	for _, vp := range []Viewport{Reference, {Width: 800, Height: 600}, {Width: 3840, Height: 2160}, {}} {
		got := table.Checkpoint(TopLeft, 0, vp)
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Fatalf("viewport %+v: expected %+v, got %+v", vp, want, got)
		}
	}
}

func TestCheckpointPastEndPanics(t *testing.T) {
	table := Default()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range checkpoint")
		}
	}()
	table.Checkpoint(Left, table.Len(Left), Reference)
}

func TestNextExcludingSelf(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, sp := range SpawnPoints {
		seen := map[SpawnPoint]bool{}
		for i := 0; i < 500; i++ {
			next := sp.NextExcludingSelf(rnd)
			if next == sp {
				t.Fatalf("%s picked itself", sp)
			}
			seen[next] = true
		}
		if len(seen) != len(SpawnPoints)-1 {
			t.Fatalf("%s: expected %d distinct picks, got %d", sp, len(SpawnPoints)-1, len(seen))
		}
	}
}

func TestDirectionCrossedAndSnap(t *testing.T) {
	cp := Point{X: 10, Y: 10}
	if !DirDown.Crossed(Point{X: 10, Y: 9}, cp) {
		t.Fatalf("moving down below checkpoint should count as crossed")
	}
	if DirDown.Crossed(Point{X: 10, Y: 11}, cp) {
		t.Fatalf("moving down above checkpoint should not count as crossed")
	}
	if !DirRight.Crossed(Point{X: 11, Y: 0}, cp) || DirLeft.Crossed(Point{X: 11, Y: 0}, cp) {
		t.Fatalf("horizontal crossing mismatch")
	}
	if got := DirUp.Snap(Point{X: 3, Y: 12}, cp); got != (Point{X: 3, Y: 10}) {
		t.Fatalf("unexpected snap: %+v", got)
	}
	if got := DirLeft.Gap(Point{X: 14, Y: 0}, cp); got != 4 {
		t.Fatalf("expected gap 4, got %v", got)
	}
}
