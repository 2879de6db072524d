package game

// Registry is the arena of live enemies, iterated in spawn order.
type Registry struct {
	nextID  ID
	byID    map[ID]*Enemy
	ordered []*Enemy
}

func newRegistry() *Registry {
	return &Registry{byID: make(map[ID]*Enemy)}
}

func (r *Registry) add(word string, w walker, archetype Archetype) *Enemy {
	r.nextID++
	e := newEnemy(r.nextID, word, w, archetype)
	r.byID[e.id] = e
	r.ordered = append(r.ordered, e)
	return e
}

// Get returns the enemy with the given id.
func (r *Registry) Get(id ID) (*Enemy, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Len returns the number of live enemies.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// All returns a snapshot of the live enemies in spawn order. Removing
// enemies while ranging over the snapshot is safe.
func (r *Registry) All() []*Enemy {
	out := make([]*Enemy, len(r.ordered))
	copy(out, r.ordered)
	return out
}

func (r *Registry) remove(id ID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, e := range r.ordered {
		if e.id == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return true
}

// clear drops every enemy but keeps the id counter, so ids stay unique.
func (r *Registry) clear() {
	clear(r.byID)
	r.ordered = r.ordered[:0]
}
