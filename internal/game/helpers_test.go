package game

import (
	"math/rand"
	"testing"

	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/route"
)

// cycleWords hands out its words in order, wrapping around.
type cycleWords struct {
	words []string
	next  int
}

func (c *cycleWords) Random(*rand.Rand) string {
	w := c.words[c.next%len(c.words)]
	c.next++
	return w
}

func newWords(words ...string) *cycleWords {
	if len(words) == 0 {
		words = []string{"castle"}
	}
	return &cycleWords{words: words}
}

// newRoundGame starts round 1 with the spawn quota already used up, so tests
// place every enemy themselves.
func newRoundGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g := New(opts, newWords(), rand.New(rand.NewSource(7)))
	g.HandleKey(Key{Kind: KeyNextRound})
	if g.State() != InRound {
		t.Fatalf("expected in round, got %s", g.State())
	}
	g.round.MaxEnemies = 100
	g.round.Spawned = 100
	return g
}

// place adds a motionless enemy on the Left route.
func place(g *Game, word string, pos route.Point) *Enemy {
	return g.enemies.add(word, walker{spawn: route.Left, pos: pos}, Pig)
}

// press feeds s as letter keys through a zero-length tick.
func press(g *Game, s string) {
	g.Tick(0, PressString(s), route.Reference)
}

func pressKey(g *Game, k Key) {
	g.Tick(0, []KeyEvent{Press(k)}, route.Reference)
}

// recorder collects dispatched events.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.Type) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(g *Game) *recorder {
	r := &recorder{}
	g.Events().Subscribe(r,
		event.EnemySpawned, event.EnemyTyped, event.EnemyLost, event.ExplosionSpawned,
		event.RoundStarted, event.RoundOver, event.GameLost, event.GameRestarted,
	)
	return r
}

func checkSessionInvariants(t *testing.T, g *Game) {
	t.Helper()
	if g.session.Active() != (g.session.Len() > 0) {
		t.Fatalf("session flag %v with %d targeted enemies", g.session.Active(), g.session.Len())
	}
	for _, e := range g.enemies.All() {
		if p, ok := e.Progress(); ok {
			if p < 0 || p >= len(e.Word()) {
				t.Fatalf("progress %d out of range for %q", p, e.Word())
			}
			if !g.session.Contains(e.ID()) {
				t.Fatalf("targeted enemy %q missing from session", e.Word())
			}
		}
	}
	for _, id := range g.session.IDs() {
		e, ok := g.enemies.Get(id)
		if !ok || !e.Targeted() {
			t.Fatalf("session holds enemy %d that is not targeted", id)
		}
	}
}
