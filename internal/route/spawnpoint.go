package route

import (
	"fmt"
	"math/rand"
)

// SpawnPoint is one of the fixed screen-edge origins enemies appear from.
type SpawnPoint uint8

const (
	TopLeft SpawnPoint = iota
	TopRight
	Left
	Right
	BottomLeft
	BottomRight

	spawnPointCount = 6
)

// SpawnPoints lists every spawn point in declaration order.
var SpawnPoints = []SpawnPoint{TopLeft, TopRight, Left, Right, BottomLeft, BottomRight}

func (s SpawnPoint) String() string {
	switch s {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case Left:
		return "left"
	case Right:
		return "right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("spawn(%d)", uint8(s))
	}
}

// OnLeft reports whether the spawn point sits on the left half of the screen.
// Sprites from there face right and are mirrored.
func (s SpawnPoint) OnLeft() bool {
	return s == TopLeft || s == Left || s == BottomLeft
}

// NextExcludingSelf picks a uniformly random spawn point other than s.
func (s SpawnPoint) NextExcludingSelf(rnd *rand.Rand) SpawnPoint {
	candidates := make([]SpawnPoint, 0, spawnPointCount-1)
	for _, sp := range SpawnPoints {
		if sp != s {
			candidates = append(candidates, sp)
		}
	}
	return candidates[rnd.Intn(len(candidates))]
}
