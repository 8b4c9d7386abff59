package emu

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"spcplay/emu/log"
	"spcplay/hw"
	"spcplay/hw/snapshot"
	"spcplay/spc"
)

// Samples produced between 2 writes to the output (16ms).
const chunkSize = 512

type PlayerOptions struct {
	// Play time before fading out. Zero plays until Stop is called.
	Duration time.Duration

	// Length of the linear fade out following Duration.
	Fade time.Duration

	// Keep playing when the song uses an unemulated DSP feature.
	AllowUnsupported bool
}

// Player runs an APU and sends its output to an Output.
type Player struct {
	APU *hw.APU

	out  Output
	opts PlayerOptions
	buf  []hw.Sample

	// These are accessed concurrently by the player loop and its controller.
	quit   atomic.Bool
	paused atomic.Bool
}

// NewPlayer creates a player for a copy of the given machine state.
func NewPlayer(s *snapshot.State, out Output, opts PlayerOptions) *Player {
	return &Player{
		APU:  hw.New(s.Clone()),
		out:  out,
		opts: opts,
		buf:  make([]hw.Sample, chunkSize),
	}
}

// PlayerOptionsFor returns the options to play f, using its ID666 tag for the
// song length when present.
func PlayerOptionsFor(f *spc.File, cfg EmulationConfig) PlayerOptions {
	opts := PlayerOptions{
		Duration:         f.Tag.Length,
		Fade:             f.Tag.Fade,
		AllowUnsupported: cfg.AllowUnsupported,
	}
	if opts.Duration == 0 {
		opts.Duration = time.Duration(cfg.DefaultSeconds) * time.Second
	}
	return opts
}

func durationToSamples(d time.Duration) int {
	return int(d * hw.SampleRate / time.Second)
}

// Run plays until Stop is called, the end of the song is reached or an error
// occurs. It doesn't close the output.
func (p *Player) Run() error {
	total := durationToSamples(p.opts.Duration)
	fade := durationToSamples(p.opts.Fade)
	if total > 0 {
		total += fade
	}

	warned := false
	for played := 0; total == 0 || played < total; {
		if p.quit.Load() {
			break
		}
		// Don't burn cpu while paused.
		if p.paused.Load() {
			time.Sleep(50 * time.Millisecond)
			continue
		}

		buf := p.buf
		if total > 0 {
			buf = buf[:min(len(buf), total-played)]
		}
		for i := range buf {
			s, err := p.APU.RunSample()
			if err != nil {
				if !errors.Is(err, hw.ErrUnsupported) || !p.opts.AllowUnsupported {
					return err
				}
				if !warned {
					log.ModEmu.WarnZ("Unsupported feature, output may be wrong").Error("err", err).End()
					warned = true
				}
			}
			buf[i] = s
		}
		if total > 0 {
			fadeOut(buf, played, total, fade)
		}
		if err := p.out.Write(buf); err != nil {
			return fmt.Errorf("audio output: %w", err)
		}
		played += len(buf)
	}

	log.ModEmu.InfoZ("Player loop exited").Int64("cycles", p.APU.Cycles()).End()
	return nil
}

// fadeOut linearly scales down the samples in the last fade samples before
// total. pos is the index of buf[0] in the song.
func fadeOut(buf []hw.Sample, pos, total, fade int) {
	start := total - fade
	for i := range buf {
		idx := pos + i
		if idx < start {
			continue
		}
		remain := int32(total - idx)
		buf[i].L = int16(int32(buf[i].L) * remain / int32(fade))
		buf[i].R = int16(int32(buf[i].R) * remain / int32(fade))
	}
}

// Stop makes Run return after the samples being produced are written.
func (p *Player) Stop() { p.quit.Store(true) }

func (p *Player) SetPause(pause bool) { p.paused.Store(pause) }

func (p *Player) IsPaused() bool { return p.paused.Load() }
