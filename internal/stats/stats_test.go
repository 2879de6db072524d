package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/castletype/internal/model"
)

func TestWPMGuardsZeroElapsed(t *testing.T) {
	if got := WPM(5, 0); got != 0 {
		t.Fatalf("expected 0 wpm for zero elapsed, got %v", got)
	}
	if got := WPM(5, -time.Second); got != 0 {
		t.Fatalf("expected 0 wpm for negative elapsed, got %v", got)
	}
	if got := WPM(10, 30*time.Second); math.Abs(got-20) > 1e-9 {
		t.Fatalf("expected 20 wpm, got %v", got)
	}
}

func TestScoreIncrement(t *testing.T) {
	// 2 * 30 * (25/50 + 1) * (10/10 + 1) = 180
	if got := ScoreIncrement(2, 30, 25, 10); got != 180 {
		t.Fatalf("expected 180, got %d", got)
	}
	// 1 * 10.9 * 1 * 1.1 = 11.99 truncates to 11
	if got := ScoreIncrement(1, 10.9, 0, 1); got != 11 {
		t.Fatalf("expected truncation to 11, got %d", got)
	}
	if got := ScoreIncrement(3, 0, 100, 4); got != 0 {
		t.Fatalf("expected 0 for zero wpm, got %d", got)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4}, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	got := Sparkline([]float64{0, 10})
	if got != " @" {
		t.Fatalf("expected extremes, got %q", got)
	}
}

func TestRenderRoundsAndSummary(t *testing.T) {
	rounds := []model.RoundSummary{
		{Round: 1, Difficulty: model.Medium, Spawned: 6, Typed: 5, Lost: 1, Duration: 40 * time.Second, WPM: 7.5, Score: 30},
		{Round: 2, Difficulty: model.Hard, Boss: true, Spawned: 10, Typed: 10, Duration: 50 * time.Second, WPM: 12, Score: 260},
	}
	var buf bytes.Buffer
	if err := RenderRounds(&buf, rounds); err != nil {
		t.Fatalf("render rounds: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Round", "medium", "hard", "yes", "260"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderSummary(&buf, rounds); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out = buf.String()
	for _, want := range []string{"Rounds: 2", "Final score: 260", "Enemies typed: 15", "Enemies lost: 1", "Best WPM: 12.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if buf.String() != "No rounds finished.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
