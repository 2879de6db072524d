// Package stats contains scoring formulas and round reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/castletype/internal/model"
)

const sparkChars = " .:-=+*#%@"

// WPM returns words (enemies typed) per minute over elapsed. A zero or
// negative elapsed time yields 0.
func WPM(typed int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	minutes := elapsed.Seconds() / 60.0
	if minutes <= 0 {
		return 0
	}
	return float64(typed) / minutes
}

// ScoreIncrement is the score awarded for one typed enemy:
// multiplier * wpm * (streak/50 + 1) * (round/10 + 1), truncated.
func ScoreIncrement(multiplier int, wpm float64, streak, round int) uint64 {
	if wpm <= 0 || multiplier <= 0 {
		return 0
	}
	v := float64(multiplier) * wpm * (float64(streak)/50.0 + 1.0) * (float64(round)/10.0 + 1.0)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return uint64(v)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 || len(values) == 0 {
		copy(out, values)
		return out
	}
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RoundWPMs extracts the per-round WPM series.
func RoundWPMs(rounds []model.RoundSummary) []float64 {
	out := make([]float64, len(rounds))
	for i, r := range rounds {
		out[i] = r.WPM
	}
	return out
}

// RenderSummary prints totals over the finished rounds.
func RenderSummary(w io.Writer, rounds []model.RoundSummary) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds finished.")
		return err
	}
	var typed, lost int
	var totalWPM, bestWPM float64
	for _, r := range rounds {
		typed += r.Typed
		lost += r.Lost
		totalWPM += r.WPM
		bestWPM = math.Max(bestWPM, r.WPM)
	}
	last := rounds[len(rounds)-1]
	lines := []string{
		"Summary",
		fmt.Sprintf("Rounds: %d", len(rounds)),
		fmt.Sprintf("Final score: %d", last.Score),
		fmt.Sprintf("Enemies typed: %d", typed),
		fmt.Sprintf("Enemies lost: %d", lost),
		fmt.Sprintf("Avg WPM: %.2f", totalWPM/float64(len(rounds))),
		fmt.Sprintf("Best WPM: %.2f", bestWPM),
		fmt.Sprintf("WPM trend: %s", Sparkline(MovingAverage(RoundWPMs(rounds), 3))),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderRounds prints one table row per finished round.
func RenderRounds(w io.Writer, rounds []model.RoundSummary) error {
	if len(rounds) == 0 {
		return nil
	}
	headers := []string{"Round", "Difficulty", "Boss", "Spawned", "Typed", "Lost", "Time", "WPM", "Score"}
	rows := make([][]string, 0, len(rounds))
	for _, r := range rounds {
		boss := ""
		if r.Boss {
			boss = "yes"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Round),
			r.Difficulty.String(),
			boss,
			fmt.Sprintf("%d", r.Spawned),
			fmt.Sprintf("%d", r.Typed),
			fmt.Sprintf("%d", r.Lost),
			r.Duration.Round(100 * time.Millisecond).String(),
			fmt.Sprintf("%.1f", r.WPM),
			fmt.Sprintf("%d", r.Score),
		})
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true}
	return WriteTable(w, headers, rows, rightAlign)
}
