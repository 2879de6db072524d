// Package tui provides the Bubble Tea game host.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/castletype/internal/game"
	"github.com/verte-zerg/castletype/internal/model"
)

// maxDelta caps the step fed to the game after a stall (suspend, slow
// terminal) so enemies do not jump across the field.
const maxDelta = 100 * time.Millisecond

type tickMsg time.Time

// Model implements the Bubble Tea game UI.
type Model struct {
	config model.Config
	game   *game.Game
	keys   keyMap
	help   help.Model
	bar    progress.Model

	width  int
	height int

	pending  []game.KeyEvent
	lastTick time.Time
}

var (
	castleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	livesStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	enemyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FD962"))
	flippedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#62B6D9"))
	bossStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B362D9")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	targetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	typedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Underline(true)
	explosionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C1A")).Bold(true)
	fadingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	hudStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	overlayStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 3)
)

// NewModel constructs the game UI around g.
func NewModel(cfg model.Config, g *game.Game) *Model {
	bar := progress.New(progress.WithSolidFill("#C89A3A"), progress.WithoutPercentage())
	bar.Width = 30
	return &Model{
		config: cfg,
		game:   g,
		keys:   newKeyMap(),
		help:   help.New(),
		bar:    bar,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if d, ok := m.keys.difficultyFor(msg); ok && m.game.State() == game.InBetweenRounds {
			m.game.SetDifficulty(d)
			return m, nil
		}
		m.pending = append(m.pending, m.keys.gameKeys(msg)...)
		return m, nil
	case tickMsg:
		m.step(time.Time(msg))
		return m, m.tick()
	default:
		return m, nil
	}
}

// step advances the game with the keys queued since the previous frame.
func (m *Model) step(now time.Time) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = min(max(now.Sub(m.lastTick), 0), maxDelta)
	}
	m.lastTick = now
	keys := m.pending
	m.pending = nil
	m.game.Tick(dt, keys, m.game.Routes().Reference())
}

func (m *Model) tick() tea.Cmd {
	fps := m.config.FPS
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// History returns the summaries of every finished round.
func (m *Model) History() []model.RoundSummary {
	return m.game.History()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.renderHUD()
	}
	hud := m.renderHUD()
	footer := m.renderFooter()
	fieldRows := m.height - lipgloss.Height(hud) - lipgloss.Height(footer)
	if fieldRows < 1 {
		return hud
	}
	var field string
	if overlay, ok := m.renderOverlay(); ok {
		field = lipgloss.Place(m.width, fieldRows, lipgloss.Center, lipgloss.Center, overlay)
	} else {
		field = renderField(m.game, m.width, fieldRows)
	}
	return lipgloss.JoinVertical(lipgloss.Left, hud, field, footer)
}
