package emu

import (
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"spcplay/emu/log"
	"spcplay/hw"
)

const (
	audioFormat   = sdl.AUDIO_S16LSB
	audioChannels = 2
	bytesPerFrame = 2 * audioChannels
)

// sdlOutput queues samples to an SDL audio device.
type sdlOutput struct {
	dev      sdl.AudioDeviceID
	rs       *Resampler
	outbuf   []int16
	maxQueue uint32 // in bytes
}

func newSDLOutput(cfg AudioConfig) (*sdlOutput, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, err
	}

	want := sdl.AudioSpec{
		Freq:     int32(cfg.SampleRate),
		Format:   audioFormat,
		Channels: audioChannels,
		Samples:  uint16(min(cfg.BufferSize, 0x8000)),
	}
	var have sdl.AudioSpec
	dev, err := sdl.OpenAudioDevice("", false, &want, &have, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, err
	}
	sdl.PauseAudioDevice(dev, false)

	log.ModSound.DebugZ("SDL audio device opened").
		Int("freq", int(have.Freq)).
		Int("samples", int(have.Samples)).
		End()

	return &sdlOutput{
		dev:      dev,
		rs:       NewResampler(int(have.Freq)),
		maxQueue: uint32(2 * cfg.BufferSize * bytesPerFrame),
	}, nil
}

func (o *sdlOutput) Write(samples []hw.Sample) error {
	o.outbuf = o.rs.Resample(o.outbuf[:0], samples)
	if len(o.outbuf) == 0 {
		return nil
	}

	// QueueAudio copies the buffer.
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&o.outbuf[0])), len(o.outbuf)*2)
	if err := sdl.QueueAudio(o.dev, buf); err != nil {
		return err
	}

	// Don't let the emulation run ahead of the device.
	for sdl.GetQueuedAudioSize(o.dev) > o.maxQueue {
		time.Sleep(time.Millisecond)
	}
	return nil
}

func (o *sdlOutput) Close() error {
	for range 500 {
		if sdl.GetQueuedAudioSize(o.dev) == 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	sdl.CloseAudioDevice(o.dev)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
