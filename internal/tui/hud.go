package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/castletype/internal/game"
	"github.com/verte-zerg/castletype/internal/stats"
)

func (m *Model) renderHUD() string {
	round := m.game.Round()
	score := m.game.Score()
	segments := []string{
		fmt.Sprintf("Round %d", round.Number),
		fmt.Sprintf("Lives %d", m.game.Lives()),
		fmt.Sprintf("Score %d", score.Score),
		fmt.Sprintf("Streak %d", score.Streak),
		fmt.Sprintf("%.1f WPM", score.WPM),
		titleCase(m.game.Difficulty().String()),
	}
	if round.Boss {
		segments = append(segments, "BOSS")
	}
	line := hudStyle.Render(strings.Join(segments, "  "))
	if m.game.State() != game.InRound {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, m.bar.ViewAs(roundProgress(round)))
}

// roundProgress is the share of the round's enemies already dealt with.
func roundProgress(r game.RoundState) float64 {
	if r.MaxEnemies <= 0 {
		return 0
	}
	return min(float64(r.Unlived)/float64(r.MaxEnemies), 1)
}

func (m *Model) renderFooter() string {
	return footerStyle.Render(m.help.View(m.keys.forState(m.game.State())))
}

// renderOverlay returns the panel shown instead of the field, if any.
func (m *Model) renderOverlay() (string, bool) {
	g := m.game
	switch {
	case g.State() == game.Lost:
		return overlayStyle.Render(m.lostText()), true
	case g.State() == game.InBetweenRounds:
		return overlayStyle.Render(m.betweenText()), true
	case g.Paused():
		return overlayStyle.Render("Paused\n\ntab to resume"), true
	default:
		return "", false
	}
}

func (m *Model) betweenText() string {
	g := m.game
	lines := make([]string, 0, 8)
	history := g.History()
	if len(history) == 0 {
		lines = append(lines, "Defend the castle", "")
	} else {
		last := history[len(history)-1]
		lines = append(lines,
			fmt.Sprintf("Round %d cleared", last.Round),
			fmt.Sprintf("Typed %d of %d  %.1f WPM", last.Typed, last.Spawned, last.WPM),
		)
		if len(history) > 1 {
			lines = append(lines, "WPM "+stats.Sparkline(stats.RoundWPMs(history)))
		}
		lines = append(lines, "")
	}
	next := g.Round().Number + 1
	if game.IsBossRound(next) {
		lines = append(lines, fmt.Sprintf("Round %d is a boss round", next))
	}
	lines = append(lines,
		fmt.Sprintf("Difficulty: %s (1/2/3)", titleCase(g.Difficulty().String())),
		fmt.Sprintf("space to start round %d", next),
	)
	return strings.Join(lines, "\n")
}

func (m *Model) lostText() string {
	g := m.game
	lines := []string{
		"The castle has fallen",
		"",
		fmt.Sprintf("Reached round %d with %d points", g.Round().Number, g.Score().Score),
	}
	if history := g.History(); len(history) > 1 {
		lines = append(lines, "WPM "+stats.Sparkline(stats.RoundWPMs(history)))
	}
	lines = append(lines, "", "ctrl+r to play again, ctrl+c to quit")
	return strings.Join(lines, "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
