//go:build audio_stub

package app

// Audio is silent in audio_stub builds.
type Audio struct{}

func NewAudio(volume float64) (*Audio, error) { return nil, nil }

func (a *Audio) Chime(pitch float64) {}
