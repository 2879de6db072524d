package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/castletype/internal/game"
	"github.com/verte-zerg/castletype/internal/model"
)

func TestGameKeys(t *testing.T) {
	k := newKeyMap()
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want []game.Key
	}{
		{"letters", runes("aB'"), []game.Key{game.Letter('a'), game.Letter('b'), game.Letter('\'')}},
		{"digit resets", runes("7"), []game.Key{{Kind: game.KeyReset}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []game.Key{{Kind: game.KeyNextRound}}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []game.Key{{Kind: game.KeyReset}}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []game.Key{{Kind: game.KeyReset}}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []game.Key{{Kind: game.KeyPause}}},
		{"restart", tea.KeyMsg{Type: tea.KeyCtrlR}, []game.Key{{Kind: game.KeyRestart}}},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, nil},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true}, nil},
	}
	for _, tc := range cases {
		got := k.gameKeys(tc.msg)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %d events, got %d", tc.name, len(tc.want), len(got))
		}
		for i, ev := range got {
			if !ev.Pressed || ev.Key != tc.want[i] {
				t.Fatalf("%s: event %d = %+v, want %+v", tc.name, i, ev, tc.want[i])
			}
		}
	}
}

func TestDifficultyFor(t *testing.T) {
	k := newKeyMap()
	want := map[string]model.Difficulty{"1": model.Easy, "2": model.Medium, "3": model.Hard}
	for s, d := range want {
		got, ok := k.difficultyFor(runes(s))
		if !ok || got != d {
			t.Fatalf("%q: got %s %v, want %s", s, got, ok, d)
		}
	}
	if _, ok := k.difficultyFor(runes("4")); ok {
		t.Fatalf("4 must not select a tier")
	}
}

func TestHelpFollowsState(t *testing.T) {
	k := newKeyMap()
	between := k.forState(game.InBetweenRounds)
	if !between.NextRound.Enabled() || between.Pause.Enabled() {
		t.Fatalf("between rounds: expected next round only")
	}
	inRound := k.forState(game.InRound)
	if inRound.NextRound.Enabled() || !inRound.Pause.Enabled() || !inRound.Reset.Enabled() {
		t.Fatalf("in round: expected pause and reset")
	}
	if !k.NextRound.Enabled() {
		t.Fatalf("forState must not modify the receiver")
	}
}
