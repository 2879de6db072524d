package game

// KeyKind classifies the keys the core reacts to.
type KeyKind uint8

const (
	// KeyLetter is a-z or an apostrophe.
	KeyLetter KeyKind = iota
	// KeyReset clears the typing session (escape, backspace).
	KeyReset
	// KeyNextRound starts the next round between rounds; in a round it
	// behaves like any other non-letter key and resets typing.
	KeyNextRound
	// KeyPause toggles the simulation pause while in a round.
	KeyPause
	// KeyRestart starts a new game.
	KeyRestart
)

// Key is a key identity.
type Key struct {
	Kind   KeyKind
	Letter byte
}

// KeyEvent is a key press or release.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// Letter builds a letter key. Uppercase letters are folded to lowercase;
// anything outside a-z and the apostrophe becomes a reset key.
func Letter(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if (r >= 'a' && r <= 'z') || r == '\'' {
		return Key{Kind: KeyLetter, Letter: byte(r)}
	}
	return Key{Kind: KeyReset}
}

// Press wraps a key as a pressed event.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Pressed: true}
}

// PressString turns every rune of s into a pressed letter event.
func PressString(s string) []KeyEvent {
	out := make([]KeyEvent, 0, len(s))
	for _, r := range s {
		out = append(out, Press(Letter(r)))
	}
	return out
}
