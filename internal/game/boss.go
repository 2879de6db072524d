package game

import (
	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/route"
)

// BossSpawn is where the boss and its ghosts enter.
const BossSpawn = route.BottomLeft

// spawnBoss places the king slime and BossWordMultiplier x round ghosts on
// the same spot. Ghosts carry the words and count like any enemy; the boss
// only walks. Both move at the round base speed.
func (g *Game) spawnBoss() {
	origin := g.routes.Origin(BossSpawn, g.vp)
	w := walker{spawn: BossSpawn, speed: g.round.BaseSpeed, pos: origin}
	g.boss = &Boss{walker: w}
	for i, n := 0, BossWordMultiplier*g.round.Number; i < n; i++ {
		e := g.enemies.add(g.words.Random(g.rnd), w, Ghost)
		g.emit(event.EnemySpawned, SpawnInfo{ID: e.id, Word: e.word, Spawn: BossSpawn, Archetype: Ghost})
	}
}
