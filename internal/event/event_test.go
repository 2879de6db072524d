package event

import "testing"

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(ListenerFunc(func(Event) { got = append(got, "first") }), RoundOver)
	d.Subscribe(ListenerFunc(func(Event) { got = append(got, "second") }), RoundOver, GameLost)

	d.Dispatch(Event{Type: RoundOver})
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected delivery: %v", got)
	}

	got = nil
	d.Dispatch(Event{Type: GameLost})
	if len(got) != 1 || got[0] != "second" {
		t.Fatalf("unexpected delivery for game lost: %v", got)
	}

	got = nil
	d.Dispatch(Event{Type: EnemyTyped})
	if len(got) != 0 {
		t.Fatalf("expected no listeners for enemy typed, got %v", got)
	}
}
