package game

// typeLetter runs one letter through the matcher.
//
// With nothing being typed, every enemy whose word starts with the letter is
// targeted; several may share a prefix and stay targeted until they diverge.
// Single-letter words complete on the spot. Otherwise only targeted enemies
// are checked against their next letter: a match advances (and may complete)
// the enemy, a mismatch drops it from the session. The streak grows once per
// keystroke that matched anything and is cleared when a mismatch leaves the
// session empty.
func (g *Game) typeLetter(ch byte) {
	matched, mistake := false, false

	if !g.session.Active() {
		for _, e := range g.enemies.All() {
			if e.Targeted() || e.word[0] != ch {
				continue
			}
			matched = true
			if len(e.word) == 1 {
				g.completeTyped(e)
				continue
			}
			e.target()
			g.session.add(e.id)
		}
	} else {
		for _, id := range g.session.IDs() {
			e, ok := g.enemies.Get(id)
			if !ok {
				g.session.remove(id)
				continue
			}
			if e.next() != ch {
				e.reset()
				g.session.remove(id)
				mistake = true
				continue
			}
			matched = true
			if e.advance() {
				g.completeTyped(e)
			}
		}
	}

	if matched {
		g.score.Streak++
	}
	if mistake && !g.session.Active() {
		g.score.Streak = 0
	}
}

// resetTyping clears every targeted enemy back to its default state.
func (g *Game) resetTyping() {
	for _, id := range g.session.IDs() {
		if e, ok := g.enemies.Get(id); ok {
			e.reset()
		}
	}
	g.session.clear()
}

// completeTyped despawns a fully typed enemy and queues it for scoring.
func (g *Game) completeTyped(e *Enemy) {
	g.destroy(e)
	g.typedQueue = append(g.typedQueue, e)
}
