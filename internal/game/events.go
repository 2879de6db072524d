package game

import (
	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/model"
	"github.com/verte-zerg/castletype/internal/route"
)

// LostReason says how an enemy left play without being typed.
type LostReason uint8

const (
	LostToCastle LostReason = iota
	LostOutOfBounds
)

func (r LostReason) String() string {
	if r == LostToCastle {
		return "castle"
	}
	return "out of bounds"
}

// SpawnInfo is the payload of event.EnemySpawned.
type SpawnInfo struct {
	ID        ID
	Word      string
	Spawn     route.SpawnPoint
	Archetype Archetype
}

// TypedInfo is the payload of event.EnemyTyped.
type TypedInfo struct {
	ID     ID
	Word   string
	Points uint64
}

// LostInfo is the payload of event.EnemyLost.
type LostInfo struct {
	ID        ID
	Word      string
	Reason    LostReason
	LivesLeft int
}

// ExplosionInfo is the payload of event.ExplosionSpawned.
type ExplosionInfo struct {
	Pos  route.Point
	Edge Edge
}

// RoundInfo is the payload of event.RoundStarted.
type RoundInfo struct {
	Round      int
	Boss       bool
	Difficulty model.Difficulty
	MaxEnemies int
}

// RoundOver and GameLost carry a model.RoundSummary; GameRestarted has no payload.

func (g *Game) emit(t event.Type, data any) {
	g.events.Dispatch(event.Event{Type: t, Data: data})
}
