package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/verte-zerg/castletype/internal/event"
)

func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer never ended")
	return 0, 0
}

func TestToneLengthAndGain(t *testing.T) {
	rate := beep.SampleRate(8000)
	n, peak := drain(t, NewTone(440, 100*time.Millisecond, WaveSine, rate, 0.5))
	if n != rate.N(100*time.Millisecond) {
		t.Fatalf("expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
	if peak > 0.5+1e-9 || peak == 0 {
		t.Fatalf("unexpected peak %v", peak)
	}
}

func TestSquareToneFadesOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewTone(100, 50*time.Millisecond, WaveSquare, rate, 1)
	buf := make([][2]float64, rate.N(50*time.Millisecond))
	n, ok := s.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("expected full buffer, got %d %v", n, ok)
	}
	head := 0.0
	for _, smp := range buf[:n/10] {
		head = math.Max(head, math.Abs(smp[0]))
	}
	if head < 0.5 || head > 1+1e-9 {
		t.Fatalf("expected near full amplitude at start, got %v", head)
	}
	if math.Abs(buf[n-1][0]) > 0.01 {
		t.Fatalf("expected faded tail, got %v", buf[n-1][0])
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Fatalf("expected drained streamer, got %d %v", n, ok)
	}
}

func TestUnplayableToneIsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	n, peak := drain(t, NewTone(6000, 20*time.Millisecond, WaveSine, rate, 1))
	if n != rate.N(20*time.Millisecond) || peak != 0 {
		t.Fatalf("expected %d silent samples, got %d peak %v", rate.N(20*time.Millisecond), n, peak)
	}
}

func TestZeroGainIsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	if _, peak := drain(t, NewTone(440, 20*time.Millisecond, WaveSine, rate, 0)); peak != 0 {
		t.Fatalf("expected silence, got peak %v", peak)
	}
}

func TestCues(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, typ := range []event.Type{event.EnemyTyped, event.EnemyLost, event.RoundStarted, event.RoundOver, event.GameLost} {
		s, ok := Cue(typ, rate)
		if !ok {
			t.Fatalf("expected cue for %s", typ)
		}
		if n, _ := drain(t, s); n == 0 {
			t.Fatalf("empty cue for %s", typ)
		}
	}
	if _, ok := Cue(event.EnemySpawned, rate); ok {
		t.Fatalf("spawns must stay silent")
	}
}

func TestPlayerWithoutSpeakerIsSilent(t *testing.T) {
	p := NewPlayer()
	d := event.NewDispatcher()
	p.Subscribe(d)
	d.Dispatch(event.Event{Type: event.EnemyTyped})
	if p.mixer.Len() != 0 {
		t.Fatalf("uninitialized player must not queue cues")
	}
	p.Close()
}
