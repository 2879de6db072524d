package game

import (
	"math"
	"time"

	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/model"
)

const (
	InitialMaxEnemies    = 2
	InitialSpeed         = 30.0
	InitialSpawnInterval = 2.0
	MinSpawnInterval     = 0.5
	// BossWordMultiplier is the number of ghost words per boss-round number.
	BossWordMultiplier = 3
	bossRoundEvery     = 10
)

// tier holds the per-round increments of a difficulty.
type tier struct {
	enemies          int
	speed            float64
	intervalDecrease float64
}

var tiers = map[model.Difficulty]tier{
	model.Easy:   {enemies: 2, speed: 3.75, intervalDecrease: 0.05},
	model.Medium: {enemies: 4, speed: 7.5, intervalDecrease: 0.1},
	model.Hard:   {enemies: 6, speed: 10.5, intervalDecrease: 0.15},
}

func tierFor(d model.Difficulty) tier {
	if t, ok := tiers[d]; ok {
		return t
	}
	return tiers[model.Medium]
}

// State is the round state machine's current state.
type State uint8

const (
	InBetweenRounds State = iota
	InRound
	Lost
)

func (s State) String() string {
	switch s {
	case InRound:
		return "in round"
	case Lost:
		return "lost"
	default:
		return "between rounds"
	}
}

// RoundState holds the counters and curves of the current round. Between
// rounds it keeps the values of the round that just ended.
type RoundState struct {
	Number        int
	Boss          bool
	Spawned       int
	Unlived       int
	Typed         int
	Lost          int
	MaxEnemies    int
	BaseSpeed     float64
	SpawnInterval float64
	Elapsed       time.Duration
}

// IsBossRound reports whether round n is a boss round.
func IsBossRound(n int) bool {
	return n > 0 && n%bossRoundEvery == 0
}

// curves computes the spawn cap, base speed and spawn interval of round n.
// Boss rounds ignore the difficulty.
func curves(n int, d model.Difficulty) (maxEnemies int, speed, interval float64) {
	t := tierFor(d)
	interval = math.Max(InitialSpawnInterval-float64(n)*t.intervalDecrease, MinSpawnInterval)
	if IsBossRound(n) {
		return BossWordMultiplier * n, InitialSpeed * 0.5, interval
	}
	return InitialMaxEnemies + n*t.enemies, InitialSpeed + float64(n)*t.speed, interval
}

// enterRound starts the next round.
func (g *Game) enterRound() {
	n := g.round.Number + 1
	maxEnemies, speed, interval := curves(n, g.difficulty)
	g.round = RoundState{
		Number:        n,
		Boss:          IsBossRound(n),
		MaxEnemies:    maxEnemies,
		BaseSpeed:     speed,
		SpawnInterval: interval,
	}
	if g.round.Boss {
		g.round.Spawned = BossWordMultiplier * n
	}
	g.score.WPM = 0
	g.spawner.reset(interval)
	g.session.clear()
	g.paused = false
	g.state = InRound

	if g.round.Boss {
		g.spawnBoss()
	}
	g.emit(event.RoundStarted, RoundInfo{
		Round:      n,
		Boss:       g.round.Boss,
		Difficulty: g.difficulty,
		MaxEnemies: maxEnemies,
	})
}

// checkRoundOver closes the round once every enemy of it has left play, or
// ends the game when the castle has no lives left.
func (g *Game) checkRoundOver() {
	if g.state != InRound {
		return
	}
	if g.castle.lives == 0 {
		summary := g.summarize()
		g.exitRound()
		g.state = Lost
		g.emit(event.GameLost, summary)
		return
	}
	if g.round.Unlived == g.round.MaxEnemies {
		summary := g.summarize()
		g.exitRound()
		g.state = InBetweenRounds
		g.emit(event.RoundOver, summary)
	}
}

func (g *Game) exitRound() {
	g.boss = nil
	g.paused = false
	g.resetTyping()
}

func (g *Game) summarize() model.RoundSummary {
	s := model.RoundSummary{
		Round:      g.round.Number,
		Difficulty: g.difficulty,
		Boss:       g.round.Boss,
		Spawned:    g.round.Spawned,
		Typed:      g.round.Typed,
		Lost:       g.round.Lost,
		Duration:   g.round.Elapsed,
		WPM:        g.score.WPM,
		Score:      g.score.Score,
	}
	g.history = append(g.history, s)
	return s
}
