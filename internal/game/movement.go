package game

import (
	"math"

	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/route"
)

// despawnFraction bounds the playing field: anything farther than this
// fraction of the viewport size from the centre is out of bounds.
const despawnFraction = 0.7

// step walks the route for dt seconds. Crossing a checkpoint snaps the moving
// coordinate onto it and spends the overshoot along the checkpoint's turn,
// so corners stay clean even on long frames. Past the last checkpoint the
// walker keeps its final heading.
func (w *walker) step(table *route.Table, dt float64, vp route.Viewport) {
	remaining := w.speed * dt
	last := table.Len(w.spawn) - 1
	for remaining > 0 {
		dir := table.Turn(w.spawn, w.checkpoint)
		candidate := w.pos.Add(dir.Unit().Scale(remaining))
		if w.checkpoint >= last {
			w.pos = candidate
			return
		}
		next := table.Checkpoint(w.spawn, w.checkpoint+1, vp)
		if !dir.Crossed(candidate, next) {
			w.pos = candidate
			return
		}
		remaining -= dir.Gap(w.pos, next)
		w.pos = dir.Snap(candidate, next)
		w.checkpoint++
	}
}

// outOfBounds reports whether p has left the visible field.
func outOfBounds(p route.Point, vp route.Viewport) bool {
	return math.Abs(p.X) > vp.Width*despawnFraction || math.Abs(p.Y) > vp.Height*despawnFraction
}

// moveEnemies advances every enemy and the boss, then resolves castle hits
// and out-of-bounds exits.
func (g *Game) moveEnemies(dt float64) {
	for _, e := range g.enemies.All() {
		e.step(g.routes, dt, g.vp)
		switch {
		case CastleRect.Contains(e.pos):
			g.hitCastle(e)
		case outOfBounds(e.pos, g.vp):
			g.loseEnemy(e, LostOutOfBounds)
		}
	}
	if g.boss != nil {
		g.boss.step(g.routes, dt, g.vp)
	}
}

func (g *Game) hitCastle(e *Enemy) {
	edge, at := CastleRect.NearestEdge(e.pos)
	g.castle.hit()
	g.loseEnemy(e, LostToCastle)
	g.explosions = append(g.explosions, Explosion{Pos: at, Edge: edge})
	g.emit(event.ExplosionSpawned, ExplosionInfo{Pos: at, Edge: edge})
}

// loseEnemy removes an enemy that was not typed. It counts as unlived and
// breaks the streak.
func (g *Game) loseEnemy(e *Enemy, reason LostReason) {
	g.destroy(e)
	g.round.Unlived++
	g.round.Lost++
	g.score.Streak = 0
	g.emit(event.EnemyLost, LostInfo{ID: e.id, Word: e.word, Reason: reason, LivesLeft: g.castle.lives})
}

// destroy removes e from the registry and from the typing session.
func (g *Game) destroy(e *Enemy) {
	g.enemies.remove(e.id)
	g.session.remove(e.id)
}
