package game

import (
	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/route"
)

const (
	minSpeedFactor = 0.625
	maxSpeedFactor = 1.375
)

// spawnTimer is a repeating timer; finished is true on the tick it elapses.
type spawnTimer struct {
	interval float64
	elapsed  float64
	finished bool
}

func (t *spawnTimer) tick(dt float64) {
	t.finished = false
	if t.interval <= 0 {
		return
	}
	t.elapsed += dt
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		t.finished = true
	}
}

// spawner decides when new enemies appear and where.
type spawner struct {
	timer  spawnTimer
	last   route.SpawnPoint
	chance float64
}

func (s *spawner) reset(interval float64) {
	s.timer = spawnTimer{interval: interval}
}

// spawnEnemies creates at most one enemy per tick while the round quota is
// open. The timer must finish and the chance roll succeed, unless every
// spawned enemy has already left play, in which case one spawns at once and
// the timer restarts.
func (g *Game) spawnEnemies(dt float64) {
	g.spawner.timer.tick(dt)
	g.trySpawn(g.spawner.timer.finished)
}

// trySpawn spawns one enemy if the quota is open and either every spawned
// enemy has left play or timerFired and the chance roll succeeds.
func (g *Game) trySpawn(timerFired bool) {
	if g.round.Spawned >= g.round.MaxEnemies {
		return
	}
	catchUp := g.round.Spawned == g.round.Unlived
	if !catchUp && !(timerFired && g.rnd.Float64() < g.spawner.chance) {
		return
	}
	if catchUp {
		g.spawner.timer.elapsed = 0
	}

	sp := g.spawner.last.NextExcludingSelf(g.rnd)
	g.spawner.last = sp
	word := g.words.Random(g.rnd)
	archetype := randomArchetype(g.rnd)
	factor := minSpeedFactor + (maxSpeedFactor-minSpeedFactor)*g.rnd.Float64()
	e := g.enemies.add(word, walker{
		spawn: sp,
		speed: g.round.BaseSpeed * factor,
		pos:   g.routes.Origin(sp, g.vp),
	}, archetype)
	g.round.Spawned++
	g.emit(event.EnemySpawned, SpawnInfo{ID: e.id, Word: e.word, Spawn: sp, Archetype: archetype})
}
