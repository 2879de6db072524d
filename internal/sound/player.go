package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/verte-zerg/castletype/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes event cues into the system speaker.
type Player struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

// NewPlayer creates a player; call Init before cues are heard.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Without an audio device it returns an error and
// the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close silences every cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	p.ready = false
}

// Subscribe registers the player for every event it has a cue for.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.Subscribe(p, event.EnemyTyped, event.EnemyLost, event.RoundStarted, event.RoundOver, event.GameLost)
}

// OnEvent implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	s, ok := Cue(e.Type, sampleRate)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Cue returns the sound for an event type.
func Cue(t event.Type, rate beep.SampleRate) (beep.Streamer, bool) {
	switch t {
	case event.EnemyTyped:
		return NewTone(880, 60*time.Millisecond, WaveSine, rate, 0.3), true
	case event.EnemyLost:
		return NewTone(110, 150*time.Millisecond, WaveSquare, rate, 0.2), true
	case event.RoundStarted:
		return melody(rate, WaveSine, 80*time.Millisecond, 523.25, 659.25), true
	case event.RoundOver:
		return melody(rate, WaveSine, 90*time.Millisecond, 523.25, 659.25, 783.99), true
	case event.GameLost:
		return melody(rate, WaveSquare, 160*time.Millisecond, 392, 311.13, 261.63), true
	default:
		return nil, false
	}
}
