// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the selectable tier that scales the round curves and the score.
// The zero value is unset.
type Difficulty uint8

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// Difficulties lists every tier from easiest to hardest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", uint8(d))
	}
}

// Multiplier is the score multiplier for the tier.
func (d Difficulty) Multiplier() int {
	switch d {
	case Easy:
		return 1
	case Hard:
		return 3
	default:
		return 2
	}
}

// ParseDifficulty parses a tier name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Config defines game settings.
type Config struct {
	Difficulty  Difficulty
	Lives       int
	WordsPath   string
	Seed        int64
	FPS         int
	SpawnChance float64
	Sound       bool
	LogFile     string
}

// RoundSummary captures a finished round.
type RoundSummary struct {
	Round      int
	Difficulty Difficulty
	Boss       bool
	Spawned    int
	Typed      int
	Lost       int
	Duration   time.Duration
	WPM        float64
	Score      uint64
}
