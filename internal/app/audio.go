//go:build !audio_stub

package app

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"particlefield/internal/sound"
)

const (
	chimeCooldown = 250 * time.Millisecond
	maxChimes     = 2
)

// Audio plays the scatter chime. A nil *Audio is silent.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	last    time.Time
	playing atomic.Int32
}

func NewAudio(volume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(sound.SampleRate, sound.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &Audio{ctx: ctx, ready: ready, volume: volume}, nil
}

// Chime plays one cue unless the context is still starting, a cue played
// within the cooldown, or too many are already sounding. pitch is in [0,1].
func (a *Audio) Chime(pitch float64) {
	if a == nil || a.volume <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	now := time.Now()
	if now.Sub(a.last) < chimeCooldown {
		return
	}
	if a.playing.Load() >= maxChimes {
		return
	}
	a.last = now
	a.playing.Add(1)

	samples := sound.Chime(pitch)
	go func() {
		defer a.playing.Add(-1)
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
