package emu

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"spcplay/hw"
)

// oto only supports one context per process.
var (
	otoCtx     *oto.Context
	otoRate    int
	otoInitErr error
	otoInit    sync.Once
)

func otoContext(rate int) (*oto.Context, error) {
	otoInit.Do(func() {
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   rate,
			ChannelCount: audioChannels,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		})
		if otoInitErr != nil {
			return
		}
		<-ready
		otoRate = rate
	})
	return otoCtx, otoInitErr
}

// otoOutput feeds an oto player, which pulls samples from a ring buffer.
type otoOutput struct {
	player *oto.Player
	rb     *ringBuffer
	rs     *Resampler
	outbuf []int16
	bytes  []byte
}

func newOtoOutput(cfg AudioConfig) (*otoOutput, error) {
	ctx, err := otoContext(cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	rb := newRingBuffer(cfg.BufferSize * bytesPerFrame)
	player := ctx.NewPlayer(rb)
	player.Play()

	return &otoOutput{
		player: player,
		rb:     rb,
		rs:     NewResampler(otoRate),
	}, nil
}

func (o *otoOutput) Write(samples []hw.Sample) error {
	o.outbuf = o.rs.Resample(o.outbuf[:0], samples)

	o.bytes = o.bytes[:0]
	for _, s := range o.outbuf {
		o.bytes = append(o.bytes, byte(s), byte(s>>8))
	}
	_, err := o.rb.Write(o.bytes)
	return err
}

func (o *otoOutput) Close() error {
	for range 500 {
		if o.rb.Buffered() == 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	o.rb.Close()
	return o.player.Close()
}
