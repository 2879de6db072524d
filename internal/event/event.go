// Package event fans game notifications out to collaborators (HUD, sound, logs).
package event

// Type names an event.
type Type string

const (
	EnemySpawned     Type = "enemy_spawned"
	EnemyTyped       Type = "enemy_typed"
	EnemyLost        Type = "enemy_lost"
	ExplosionSpawned Type = "explosion_spawned"
	RoundStarted     Type = "round_started"
	RoundOver        Type = "round_over"
	GameLost         Type = "game_lost"
	GameRestarted    Type = "game_restarted"
)

// Event carries a type and an optional payload.
type Event struct {
	Type Type
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

// OnEvent implements Listener.
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Dispatcher delivers events synchronously, in subscription order.
// It is not safe for concurrent use; the game loop is single-threaded.
type Dispatcher struct {
	listeners map[Type][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Type][]Listener)}
}

// Subscribe registers l for each of the given types.
func (d *Dispatcher) Subscribe(l Listener, types ...Type) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], l)
	}
}

// Dispatch sends e to every listener subscribed to its type.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
