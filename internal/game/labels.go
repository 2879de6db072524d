package game

import "math"

const (
	labelLetterWidth = 30.0
	labelLiftHeight  = 50.0
	labelNearY       = 10.0
)

// liftLabels raises the label of the left-most enemy of every pair whose
// labels would overlap: enemies within labelNearY vertically with
// overlapping label spans.
func liftLabels(enemies []*Enemy) {
	for _, e := range enemies {
		e.labelLift = 0
	}
	for i, a := range enemies {
		for _, b := range enemies[i+1:] {
			if math.Abs(a.pos.Y-b.pos.Y) >= labelNearY {
				continue
			}
			halfA := float64(len(a.word)) * labelLetterWidth / 2
			halfB := float64(len(b.word)) * labelLetterWidth / 2
			if math.Abs(a.pos.X-b.pos.X) >= halfA+halfB {
				continue
			}
			if a.pos.X <= b.pos.X {
				a.labelLift = labelLiftHeight
			} else {
				b.labelLift = labelLiftHeight
			}
		}
	}
}
