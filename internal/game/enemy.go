// Package game holds the simulation core: enemies, typing, movement, rounds,
// scoring and spawning, advanced one tick at a time.
package game

import (
	"fmt"
	"math/rand"

	"github.com/verte-zerg/castletype/internal/route"
)

// ID identifies a live enemy. IDs are never reused within a game.
type ID uint64

// Archetype selects the sprite an enemy is drawn with.
type Archetype uint8

const (
	Pig Archetype = iota
	Bat
	Bee
	Bunny
	Chicken
	Mushroom
	BlueBird
	Radish
	Rino
	RockOne
	RockTwo
	RockThree
	Slime
	Snail
	Trunk
	Ghost
	KingSlime
)

var archetypeNames = [...]string{
	Pig:       "pig",
	Bat:       "bat",
	Bee:       "bee",
	Bunny:     "bunny",
	Chicken:   "chicken",
	Mushroom:  "mushroom",
	BlueBird:  "blue bird",
	Radish:    "radish",
	Rino:      "rino",
	RockOne:   "rock",
	RockTwo:   "rock",
	RockThree: "rock",
	Slime:     "slime",
	Snail:     "snail",
	Trunk:     "trunk",
	Ghost:     "ghost",
	KingSlime: "king slime",
}

func (a Archetype) String() string {
	if int(a) < len(archetypeNames) {
		return archetypeNames[a]
	}
	return fmt.Sprintf("archetype(%d)", uint8(a))
}

// randomArchetype draws one of 13 equally likely buckets; the rock bucket
// then picks one of its three variants.
func randomArchetype(rnd *rand.Rand) Archetype {
	switch n := rnd.Intn(13); {
	case n < 9:
		return Archetype(n)
	case n == 9:
		return RockOne + Archetype(rnd.Intn(3))
	default:
		return Slime + Archetype(n-10)
	}
}

// walker follows a route. Enemies and the boss share it.
type walker struct {
	spawn      route.SpawnPoint
	checkpoint int
	speed      float64
	pos        route.Point
}

// Enemy is one word-carrying unit on the field.
type Enemy struct {
	walker

	id        ID
	word      string
	progress  int // index of the last typed letter, -1 when not targeted
	archetype Archetype
	flipped   bool
	labelLift float64
}

func newEnemy(id ID, word string, w walker, archetype Archetype) *Enemy {
	if word == "" {
		panic("game: enemy word must not be empty")
	}
	return &Enemy{
		walker:    w,
		id:        id,
		word:      word,
		progress:  -1,
		archetype: archetype,
		flipped:   w.spawn.OnLeft(),
	}
}

func (e *Enemy) ID() ID                       { return e.id }
func (e *Enemy) Word() string                 { return e.word }
func (e *Enemy) Position() route.Point        { return e.pos }
func (e *Enemy) SpawnPoint() route.SpawnPoint { return e.spawn }
func (e *Enemy) Checkpoint() int              { return e.checkpoint }
func (e *Enemy) Speed() float64               { return e.speed }
func (e *Enemy) Archetype() Archetype         { return e.archetype }

// Flipped reports whether the sprite should be mirrored to face right.
func (e *Enemy) Flipped() bool { return e.flipped }

// LabelLift is the extra height applied to the label to avoid overlaps.
func (e *Enemy) LabelLift() float64 { return e.labelLift }

// Progress returns the index of the last typed letter and whether the enemy
// is currently targeted.
func (e *Enemy) Progress() (int, bool) {
	if e.progress < 0 {
		return 0, false
	}
	return e.progress, true
}

// Targeted reports whether the enemy is part of the typing session.
func (e *Enemy) Targeted() bool { return e.progress >= 0 }

// Typed returns the highlighted prefix of the word.
func (e *Enemy) Typed() string {
	if e.progress < 0 {
		return ""
	}
	return e.word[:e.progress+1]
}

// Remaining returns the part of the word still to type.
func (e *Enemy) Remaining() string {
	return e.word[len(e.Typed()):]
}

// Highlighted reports whether letter i is drawn in the typing colour.
func (e *Enemy) Highlighted(i int) bool {
	return e.progress >= 0 && i <= e.progress
}

// target starts typing the enemy with its first letter matched.
func (e *Enemy) target() {
	e.progress = 0
}

// advance moves the typed index forward by one and reports whether the word
// is now complete.
func (e *Enemy) advance() bool {
	if e.progress < 0 {
		panic(fmt.Sprintf("game: advancing untargeted enemy %d", e.id))
	}
	if e.progress+1 >= len(e.word) {
		panic(fmt.Sprintf("game: typed progress past the end of %q", e.word))
	}
	e.progress++
	return e.progress == len(e.word)-1
}

// next returns the letter after the typed prefix.
func (e *Enemy) next() byte {
	return e.word[e.progress+1]
}

func (e *Enemy) reset() {
	e.progress = -1
}

// Boss is the cosmetic king slime walking with the ghosts of a boss round.
// It never counts towards the round tallies.
type Boss struct {
	walker
}

func (b *Boss) Position() route.Point        { return b.pos }
func (b *Boss) SpawnPoint() route.SpawnPoint { return b.spawn }
func (b *Boss) Archetype() Archetype         { return KingSlime }
