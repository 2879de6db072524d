package game

import "slices"

// Session is the ordered set of enemies currently being typed. The active
// flag is recomputed on every mutation, so it is true iff the set is
// non-empty.
type Session struct {
	ids    []ID
	active bool
}

// Active reports whether something is being typed.
func (s *Session) Active() bool { return s.active }

// Len returns the number of targeted enemies.
func (s *Session) Len() int { return len(s.ids) }

// IDs returns the targeted enemies in the order they were first matched.
func (s *Session) IDs() []ID {
	return slices.Clone(s.ids)
}

// Contains reports whether id is targeted.
func (s *Session) Contains(id ID) bool {
	return slices.Contains(s.ids, id)
}

func (s *Session) add(id ID) {
	if !s.Contains(id) {
		s.ids = append(s.ids, id)
	}
	s.refresh()
}

func (s *Session) remove(id ID) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
	}
	s.refresh()
}

func (s *Session) clear() {
	s.ids = s.ids[:0]
	s.refresh()
}

func (s *Session) refresh() {
	s.active = len(s.ids) > 0
}
