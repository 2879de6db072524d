// Package sim drives the game headlessly with a bot typist.
package sim

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/game"
	"github.com/verte-zerg/castletype/internal/model"
	"github.com/verte-zerg/castletype/internal/route"
)

// Frame is the fixed simulation step.
const Frame = time.Second / 60

const defaultMaxDuration = 4 * time.Hour

// Options configures a simulation run.
type Options struct {
	Rounds      int
	CPS         float64
	Accuracy    float64
	Seed        int64
	Difficulty  model.Difficulty
	Lives       int
	SpawnChance float64
	// MaxDuration caps simulated time; zero means four hours.
	MaxDuration time.Duration
}

// Result is the outcome of a run.
type Result struct {
	Rounds   []model.RoundSummary
	Lost     bool
	TimedOut bool
	Score    uint64
	Elapsed  time.Duration
	Keys     int
	Mistypes int
	Typed    int
	Missed   int
}

// Run plays until opts.Rounds rounds are finished, the castle falls or the
// simulated time runs out.
func Run(ctx context.Context, opts Options, words game.WordSource) (Result, error) {
	if opts.Rounds <= 0 {
		return Result{}, fmt.Errorf("rounds must be positive")
	}
	if opts.CPS <= 0 {
		return Result{}, fmt.Errorf("cps must be positive")
	}
	if opts.Accuracy < 0 || opts.Accuracy > 1 {
		return Result{}, fmt.Errorf("accuracy must be in [0, 1]")
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = defaultMaxDuration
	}

	events := event.NewDispatcher()
	var res Result
	events.Subscribe(event.ListenerFunc(func(e event.Event) {
		switch e.Type {
		case event.EnemyTyped:
			res.Typed++
		case event.EnemyLost:
			res.Missed++
		}
	}), event.EnemyTyped, event.EnemyLost)

	g := game.New(game.Options{
		Difficulty:  opts.Difficulty,
		Lives:       opts.Lives,
		SpawnChance: opts.SpawnChance,
		Events:      events,
	}, words, rand.New(rand.NewSource(opts.Seed)))
	b := &bot{
		rnd:      rand.New(rand.NewSource(opts.Seed + 1)),
		cps:      opts.CPS,
		accuracy: opts.Accuracy,
	}
	vp := route.Reference

	for res.Elapsed < opts.MaxDuration {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var keys []game.KeyEvent
		switch g.State() {
		case game.Lost:
			res.Lost = true
			return finish(res, g, b), nil
		case game.InBetweenRounds:
			if len(g.History()) >= opts.Rounds {
				return finish(res, g, b), nil
			}
			keys = append(keys, game.Press(game.Key{Kind: game.KeyNextRound}))
		case game.InRound:
			keys = b.keys(g, Frame)
		}
		g.Tick(Frame, keys, vp)
		res.Elapsed += Frame
	}
	res.TimedOut = true
	return finish(res, g, b), nil
}

func finish(res Result, g *game.Game, b *bot) Result {
	res.Rounds = g.History()
	res.Score = g.Score().Score
	res.Keys = b.pressed
	res.Mistypes = b.mistyped
	return res
}

// bot types at a steady rate, aiming at the enemy closest to the castle and
// finishing whatever it has started.
type bot struct {
	rnd      *rand.Rand
	cps      float64
	accuracy float64
	budget   float64
	pressed  int
	mistyped int
}

func (b *bot) keys(g *game.Game, dt time.Duration) []game.KeyEvent {
	b.budget += b.cps * dt.Seconds()
	var out []game.KeyEvent
	for b.budget >= 1 {
		b.budget--
		letter, ok := b.intended(g, out)
		if !ok {
			break
		}
		if b.rnd.Float64() >= b.accuracy {
			letter = b.mistype(letter)
			b.mistyped++
		}
		b.pressed++
		out = append(out, game.Press(game.Letter(rune(letter))))
	}
	return out
}

// intended picks the next correct letter, given the keys already queued for
// this frame.
func (b *bot) intended(g *game.Game, queued []game.KeyEvent) (byte, bool) {
	target, typed := b.target(g)
	if target == nil {
		return 0, false
	}
	idx := typed + len(queued)
	if idx >= len(target.Word()) {
		return 0, false
	}
	return target.Word()[idx], true
}

func (b *bot) target(g *game.Game) (*game.Enemy, int) {
	if ids := g.Session(); len(ids) > 0 {
		if e, ok := g.Registry().Get(ids[0]); ok {
			p, _ := e.Progress()
			return e, p + 1
		}
	}
	var best *game.Enemy
	bestDist := math.Inf(1)
	center := game.CastleRect.Center()
	for _, e := range g.Enemies() {
		pos := e.Position()
		if d := math.Hypot(pos.X-center.X, pos.Y-center.Y); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, 0
}

func (b *bot) mistype(letter byte) byte {
	for {
		c := byte('a' + b.rnd.Intn(26))
		if c != letter {
			return c
		}
	}
}
