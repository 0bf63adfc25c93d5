package app

import (
	"github.com/charmbracelet/log"

	"particlefield/internal/field"
)

// subscribe wires field events to logging and, when audio is non-nil, the chime.
func subscribe(bus *field.EventBus, logger *log.Logger, audio *Audio, canvasW func() int) {
	bus.Subscribe(field.EventSeeded, func(e field.Event) {
		if e.Data == 0 {
			logger.Warn("silhouette is empty; nothing to draw")
			return
		}
		logger.Debug("particles seeded", "count", e.Data)
	})
	bus.Subscribe(field.EventScatterBegin, func(e field.Event) {
		logger.Debug("scatter", "x", e.X, "y", e.Y, "particles", e.Data)
		pitch := 0.5
		if w := canvasW(); w > 0 {
			pitch = e.X / float64(w)
		}
		audio.Chime(pitch)
	})
	bus.Subscribe(field.EventScatterEnd, func(field.Event) {
		logger.Debug("scatter settled")
	})
}
