// Package route holds the static enemy routes and maps them onto the screen.
package route

import (
	"fmt"
	"math"
)

// Point is a position in world units. The origin is the screen centre, +y is up.
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Viewport is the visible area in world units.
type Viewport struct {
	Width  float64
	Height float64
}

// Reference is the resolution the route fractions were authored against.
var Reference = Viewport{Width: 1856, Height: 1018}

func (v Viewport) valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Direction is a turn instruction attached to a checkpoint.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Unit returns the unit vector for the direction.
func (d Direction) Unit() Point {
	switch d {
	case DirUp:
		return Point{Y: 1}
	case DirDown:
		return Point{Y: -1}
	case DirLeft:
		return Point{X: -1}
	default:
		return Point{X: 1}
	}
}

// Crossed reports whether pos has passed cp along the direction's axis.
func (d Direction) Crossed(pos, cp Point) bool {
	switch d {
	case DirUp:
		return pos.Y > cp.Y
	case DirDown:
		return pos.Y < cp.Y
	case DirLeft:
		return pos.X < cp.X
	default:
		return pos.X > cp.X
	}
}

// Gap returns the distance from pos to cp along the direction's axis.
func (d Direction) Gap(pos, cp Point) float64 {
	if d == DirUp || d == DirDown {
		return math.Abs(cp.Y - pos.Y)
	}
	return math.Abs(cp.X - pos.X)
}

// Snap moves pos onto cp along the direction's axis, keeping the other coordinate.
func (d Direction) Snap(pos, cp Point) Point {
	if d == DirUp || d == DirDown {
		pos.Y = cp.Y
		return pos
	}
	pos.X = cp.X
	return pos
}

// Route is a polyline of checkpoints (fractions of the reference resolution)
// paired 1:1 with the direction to walk after reaching each checkpoint.
type Route struct {
	Checkpoints []Point
	Turns       []Direction
}

// Table maps every spawn point to its route.
type Table struct {
	ref    Viewport
	routes [spawnPointCount]Route
}

// NewTable validates the routes and builds a table. Every spawn point needs a
// route with at least two checkpoints and one turn per checkpoint.
func NewTable(ref Viewport, routes map[SpawnPoint]Route) (*Table, error) {
	if !ref.valid() {
		return nil, fmt.Errorf("reference viewport must be positive, got %vx%v", ref.Width, ref.Height)
	}
	t := &Table{ref: ref}
	for _, sp := range SpawnPoints {
		r, ok := routes[sp]
		if !ok {
			return nil, fmt.Errorf("missing route for spawn point %s", sp)
		}
		if len(r.Checkpoints) < 2 {
			return nil, fmt.Errorf("route %s needs at least 2 checkpoints, got %d", sp, len(r.Checkpoints))
		}
		if len(r.Checkpoints) != len(r.Turns) {
			return nil, fmt.Errorf("route %s has %d checkpoints but %d turns", sp, len(r.Checkpoints), len(r.Turns))
		}
		t.routes[sp] = r
	}
	return t, nil
}

// Default returns the built-in route table.
func Default() *Table {
	t, err := NewTable(Reference, defaultRoutes)
	if err != nil {
		panic(fmt.Sprintf("route: built-in table is invalid: %v", err))
	}
	return t
}

// Reference returns the resolution the table was authored against.
func (t *Table) Reference() Viewport {
	return t.ref
}

// Len returns the number of checkpoints on the route for sp.
func (t *Table) Len(sp SpawnPoint) int {
	return len(t.route(sp).Checkpoints)
}

// Checkpoint returns checkpoint idx of the route for sp in world units for the
// given viewport. Indexing past the route is a routing defect and panics.
func (t *Table) Checkpoint(sp SpawnPoint, idx int, vp Viewport) Point {
	r := t.route(sp)
	if idx < 0 || idx >= len(r.Checkpoints) {
		panic(fmt.Sprintf("route: checkpoint %d out of range for %s (len %d)", idx, sp, len(r.Checkpoints)))
	}
	return t.scale(r.Checkpoints[idx], vp)
}

// Turn returns the direction to walk after checkpoint idx of the route for sp.
func (t *Table) Turn(sp SpawnPoint, idx int) Direction {
	r := t.route(sp)
	if idx < 0 || idx >= len(r.Turns) {
		panic(fmt.Sprintf("route: turn %d out of range for %s (len %d)", idx, sp, len(r.Turns)))
	}
	return r.Turns[idx]
}

// Origin returns where enemies from sp appear.
func (t *Table) Origin(sp SpawnPoint, vp Viewport) Point {
	return t.Checkpoint(sp, 0, vp)
}

func (t *Table) route(sp SpawnPoint) Route {
	if int(sp) >= spawnPointCount {
		panic(fmt.Sprintf("route: unknown spawn point %d", uint8(sp)))
	}
	return t.routes[sp]
}

// scale rescales a fraction by reference/current and projects it onto the
// current viewport, so positions do not depend on the window size.
func (t *Table) scale(frac Point, vp Viewport) Point {
	if !vp.valid() {
		vp = t.ref
	}
	sx := frac.X * (t.ref.Width / vp.Width)
	sy := frac.Y * (t.ref.Height / vp.Height)
	return Point{X: sx * vp.Width, Y: sy * vp.Height}
}
