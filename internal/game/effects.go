package game

import "github.com/verte-zerg/castletype/internal/route"

const (
	explosionFrames      = 9
	explosionFrameSecs   = 0.1
	explosionLifetimeSec = explosionFrames * explosionFrameSecs
)

// Explosion is a visual-only effect left where an enemy hit the castle.
type Explosion struct {
	Pos  route.Point
	Edge Edge
	age  float64
}

// Frame returns the animation frame to draw, 0 through 8.
func (x Explosion) Frame() int {
	return min(int(x.age/explosionFrameSecs), explosionFrames-1)
}

// ageExplosions advances every explosion and drops the finished ones.
func ageExplosions(list []Explosion, dt float64) []Explosion {
	kept := list[:0]
	for _, x := range list {
		x.age += dt
		if x.age < explosionLifetimeSec {
			kept = append(kept, x)
		}
	}
	return kept
}
