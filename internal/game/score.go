package game

import (
	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/stats"
)

// ScoreState holds the running score, streak and words per minute.
type ScoreState struct {
	Score  uint64
	Streak int
	WPM    float64
}

// drainTyped books every enemy completed by typing this tick. Each one
// counts as typed and unlived, refreshes the WPM and then adds its points.
func (g *Game) drainTyped() {
	for _, e := range g.typedQueue {
		g.round.Typed++
		g.round.Unlived++
		g.score.WPM = stats.WPM(g.round.Typed, g.round.Elapsed)
		points := stats.ScoreIncrement(g.difficulty.Multiplier(), g.score.WPM, g.score.Streak, g.round.Number)
		g.score.Score += points
		g.emit(event.EnemyTyped, TypedInfo{ID: e.id, Word: e.word, Points: points})
	}
	clear(g.typedQueue)
	g.typedQueue = g.typedQueue[:0]
}

func (g *Game) updateWPM() {
	if g.state == InRound {
		g.score.WPM = stats.WPM(g.round.Typed, g.round.Elapsed)
	}
}
