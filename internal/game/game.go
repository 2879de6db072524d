package game

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/model"
	"github.com/verte-zerg/castletype/internal/route"
)

// WordSource hands out random words for new enemies.
type WordSource interface {
	Random(rnd *rand.Rand) string
}

// Options configures a Game. Zero values select the defaults.
type Options struct {
	Difficulty  model.Difficulty
	Lives       int
	SpawnChance float64
	Routes      *route.Table
	Events      *event.Dispatcher
}

// Game is the whole simulation state, advanced by Tick. It is not safe for
// concurrent use.
type Game struct {
	words  WordSource
	rnd    *rand.Rand
	routes *route.Table
	events *event.Dispatcher
	lives  int

	state      State
	paused     bool
	difficulty model.Difficulty
	vp         route.Viewport

	enemies    *Registry
	session    Session
	castle     Castle
	boss       *Boss
	explosions []Explosion
	typedQueue []*Enemy

	round   RoundState
	score   ScoreState
	spawner spawner
	history []model.RoundSummary
}

// New creates a game waiting between rounds, before round 1.
func New(opts Options, words WordSource, rnd *rand.Rand) *Game {
	if _, ok := tiers[opts.Difficulty]; !ok {
		opts.Difficulty = model.Medium
	}
	if opts.Lives <= 0 {
		opts.Lives = DefaultLives
	}
	if opts.SpawnChance <= 0 || opts.SpawnChance > 1 {
		opts.SpawnChance = 1
	}
	if opts.Routes == nil {
		opts.Routes = route.Default()
	}
	if opts.Events == nil {
		opts.Events = event.NewDispatcher()
	}
	g := &Game{
		words:      words,
		rnd:        rnd,
		routes:     opts.Routes,
		events:     opts.Events,
		lives:      opts.Lives,
		difficulty: opts.Difficulty,
		vp:         opts.Routes.Reference(),
		enemies:    newRegistry(),
		spawner:    spawner{chance: opts.SpawnChance},
	}
	g.castle.lives = g.lives
	return g
}

// Tick advances the game by dt. Phases run in a fixed order: keys, effects,
// movement with collisions, spawning, scoring, and the round-over check
// last, so a keystroke or a collision can close the round in the same tick.
func (g *Game) Tick(dt time.Duration, keys []KeyEvent, vp route.Viewport) {
	if vp.Width > 0 && vp.Height > 0 {
		g.vp = vp
	}
	if dt < 0 {
		dt = 0
	}
	for _, k := range keys {
		if k.Pressed {
			g.HandleKey(k.Key)
		}
	}

	if !g.paused {
		g.explosions = ageExplosions(g.explosions, dt.Seconds())
	}
	if g.state == InRound && !g.paused {
		secs := dt.Seconds()
		g.round.Elapsed += dt
		g.moveEnemies(secs)
		g.spawnEnemies(secs)
	}
	g.drainTyped()
	if g.state == InRound && !g.paused {
		// Typed enemies are booked as unlived only now; catch up in this
		// tick when that emptied the field.
		g.trySpawn(false)
	}
	g.updateWPM()
	liftLabels(g.enemies.ordered)
	g.checkRoundOver()
}

// HandleKey applies a single pressed key outside of Tick. Tick calls it for
// every pressed key event.
func (g *Game) HandleKey(k Key) {
	if k.Kind == KeyRestart {
		g.Restart()
		return
	}
	switch g.state {
	case Lost:
		return
	case InBetweenRounds:
		if k.Kind == KeyNextRound {
			g.enterRound()
		}
		return
	}

	if k.Kind == KeyPause {
		g.paused = !g.paused
		return
	}
	if g.paused {
		return
	}
	switch k.Kind {
	case KeyLetter:
		g.typeLetter(k.Letter)
	default:
		g.resetTyping()
	}
}

// Restart starts a new game: round, score, streak and counters go back to
// zero and the game waits between rounds.
func (g *Game) Restart() {
	g.enemies.clear()
	g.session.clear()
	g.boss = nil
	g.explosions = nil
	g.typedQueue = g.typedQueue[:0]
	g.round = RoundState{}
	g.score = ScoreState{}
	g.castle.lives = g.lives
	g.spawner = spawner{chance: g.spawner.chance}
	g.history = nil
	g.paused = false
	g.state = InBetweenRounds
	g.emit(event.GameRestarted, nil)
}

// SetDifficulty selects the tier used from the next round on. It is only
// allowed between rounds and reports whether the change was applied.
func (g *Game) SetDifficulty(d model.Difficulty) bool {
	if g.state != InBetweenRounds {
		return false
	}
	if _, ok := tiers[d]; !ok {
		return false
	}
	g.difficulty = d
	return true
}

func (g *Game) State() State                  { return g.state }
func (g *Game) Paused() bool                  { return g.paused }
func (g *Game) Difficulty() model.Difficulty  { return g.difficulty }
func (g *Game) Round() RoundState             { return g.round }
func (g *Game) Score() ScoreState             { return g.score }
func (g *Game) Lives() int                    { return g.castle.lives }
func (g *Game) Viewport() route.Viewport      { return g.vp }
func (g *Game) Routes() *route.Table          { return g.routes }
func (g *Game) Events() *event.Dispatcher     { return g.events }
func (g *Game) Typing() bool                  { return g.session.Active() }
func (g *Game) Session() []ID                 { return g.session.IDs() }
func (g *Game) Registry() *Registry           { return g.enemies }
func (g *Game) Enemies() []*Enemy             { return g.enemies.All() }
func (g *Game) Explosions() []Explosion       { return append([]Explosion(nil), g.explosions...) }
func (g *Game) History() []model.RoundSummary { return append([]model.RoundSummary(nil), g.history...) }

// Boss returns the boss while a boss round is running.
func (g *Game) Boss() (*Boss, bool) {
	return g.boss, g.boss != nil
}
