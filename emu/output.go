package emu

import (
	"fmt"

	"spcplay/emu/log"
	"spcplay/hw"
)

// Output consumes the samples produced by a Player.
type Output interface {
	// Write blocks until the samples have been accepted by the output.
	Write(samples []hw.Sample) error
	Close() error
}

// NewOutput opens the audio device selected in cfg.
func NewOutput(cfg AudioConfig) (Output, error) {
	if cfg.DisableAudio {
		log.ModSound.WarnZ("Audio disabled").End()
		return discard{}, nil
	}

	var (
		out Output
		err error
	)
	switch cfg.Backend {
	case BackendSDL:
		out, err = newSDLOutput(cfg)
	case BackendOto:
		out, err = newOtoOutput(cfg)
	default:
		return nil, fmt.Errorf("unknown audio backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s audio: %w", cfg.Backend, err)
	}

	log.ModSound.InfoZ("Audio enabled").
		String("backend", cfg.Backend).
		Int("rate", cfg.SampleRate).
		End()
	return out, nil
}

type discard struct{}

func (discard) Write([]hw.Sample) error { return nil }
func (discard) Close() error            { return nil }
