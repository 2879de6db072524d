package game

import (
	"math"

	"github.com/verte-zerg/castletype/internal/route"
)

// DefaultLives is the number of hits the castle takes before the game is lost.
const DefaultLives = 5

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	Min route.Point
	Max route.Point
}

// CastleRect is the collision box around the castle.
var CastleRect = Rect{Min: route.Point{X: -150, Y: -80}, Max: route.Point{X: 150, Y: 125}}

// Contains reports whether p lies strictly inside r.
func (r Rect) Contains(p route.Point) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

// Center returns the middle of r.
func (r Rect) Center() route.Point {
	return route.Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// HalfExtents returns half the width and height of r.
func (r Rect) HalfExtents() route.Point {
	return route.Point{X: (r.Max.X - r.Min.X) / 2, Y: (r.Max.Y - r.Min.Y) / 2}
}

// Edge names a side of a rectangle.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeBottom
	EdgeTop
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "top"
	}
}

// NearestEdge picks the side p approaches from by comparing its offset from
// the centre against the half-extents. The returned point is where the
// world axes cross that side, which is where the routes enter the castle.
func (r Rect) NearestEdge(p route.Point) (Edge, route.Point) {
	c := r.Center()
	h := r.HalfExtents()
	dx := (p.X - c.X) / h.X
	dy := (p.Y - c.Y) / h.Y
	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return EdgeLeft, route.Point{X: r.Min.X}
		}
		return EdgeRight, route.Point{X: r.Max.X}
	}
	if dy < 0 {
		return EdgeBottom, route.Point{Y: r.Min.Y}
	}
	return EdgeTop, route.Point{Y: r.Max.Y}
}

// Castle tracks the remaining lives.
type Castle struct {
	lives int
}

// Lives returns the remaining lives.
func (c *Castle) Lives() int { return c.lives }

// hit removes one life, saturating at zero.
func (c *Castle) hit() {
	if c.lives > 0 {
		c.lives--
	}
}
