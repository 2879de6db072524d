package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/castletype/internal/game"
	"github.com/verte-zerg/castletype/internal/model"
)

type keyMap struct {
	Reset      key.Binding
	NextRound  key.Binding
	Pause      key.Binding
	Easy       key.Binding
	Medium     key.Binding
	Hard       key.Binding
	Restart    key.Binding
	Quit       key.Binding
	difficulty map[model.Difficulty]key.Binding
}

func newKeyMap() keyMap {
	k := keyMap{
		Reset:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "reset word")),
		NextRound: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "next round")),
		Pause:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pause")),
		Easy:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "easy")),
		Medium:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "medium")),
		Hard:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "hard")),
		Restart:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
	k.difficulty = map[model.Difficulty]key.Binding{
		model.Easy:   k.Easy,
		model.Medium: k.Medium,
		model.Hard:   k.Hard,
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.NextRound, k.Pause, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.NextRound, k.Pause},
		{k.Easy, k.Medium, k.Hard},
		{k.Restart, k.Quit},
	}
}

// forState returns a copy with only the bindings that do something in the
// given state enabled. Matching always uses the full map.
func (k keyMap) forState(state game.State) keyMap {
	between := state == game.InBetweenRounds
	k.NextRound.SetEnabled(between)
	k.Easy.SetEnabled(between)
	k.Medium.SetEnabled(between)
	k.Hard.SetEnabled(between)
	k.Reset.SetEnabled(state == game.InRound)
	k.Pause.SetEnabled(state == game.InRound)
	return k
}

// gameKeys translates a terminal key press into core key events. Keys the
// core does not know about yield nothing.
func (k keyMap) gameKeys(msg tea.KeyMsg) []game.KeyEvent {
	switch {
	case key.Matches(msg, k.Restart):
		return []game.KeyEvent{game.Press(game.Key{Kind: game.KeyRestart})}
	case key.Matches(msg, k.Pause):
		return []game.KeyEvent{game.Press(game.Key{Kind: game.KeyPause})}
	case key.Matches(msg, k.NextRound):
		return []game.KeyEvent{game.Press(game.Key{Kind: game.KeyNextRound})}
	case key.Matches(msg, k.Reset):
		return []game.KeyEvent{game.Press(game.Key{Kind: game.KeyReset})}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	out := make([]game.KeyEvent, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		out = append(out, game.Press(game.Letter(r)))
	}
	return out
}

// difficultyFor reports the tier a key selects, if any.
func (k keyMap) difficultyFor(msg tea.KeyMsg) (model.Difficulty, bool) {
	for _, d := range model.Difficulties {
		if key.Matches(msg, k.difficulty[d]) {
			return d, true
		}
	}
	return 0, false
}
