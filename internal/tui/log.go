package tui

import (
	"go.uber.org/zap"

	"github.com/verte-zerg/castletype/internal/event"
	"github.com/verte-zerg/castletype/internal/game"
	"github.com/verte-zerg/castletype/internal/model"
)

// LogEvents writes round transitions to log.
func LogEvents(d *event.Dispatcher, log *zap.Logger) {
	d.Subscribe(event.ListenerFunc(func(e event.Event) { logEvent(log, e) }),
		event.RoundStarted, event.RoundOver, event.GameLost, event.GameRestarted)
}

func logEvent(log *zap.Logger, e event.Event) {
	switch data := e.Data.(type) {
	case game.RoundInfo:
		log.Info(string(e.Type),
			zap.Int("round", data.Round),
			zap.String("difficulty", data.Difficulty.String()),
			zap.Bool("boss", data.Boss),
			zap.Int("max_enemies", data.MaxEnemies),
		)
	case model.RoundSummary:
		log.Info(string(e.Type),
			zap.Int("round", data.Round),
			zap.Int("typed", data.Typed),
			zap.Int("lost", data.Lost),
			zap.Float64("wpm", data.WPM),
			zap.Uint64("score", data.Score),
		)
	default:
		log.Info(string(e.Type))
	}
}
