package emu

import (
	"slices"

	"github.com/arl/blip"

	"spcplay/hw"
)

// Number of DSP samples fed to blip per time frame. At the highest output
// rate this stays below blip.MaxFrame output samples.
const maxFrameIn = 1024

// Resampler converts the 32kHz DSP output to another rate using a pair of
// band-limited buffers, one per channel.
type Resampler struct {
	bufleft  *blip.Buffer
	bufright *blip.Buffer

	prevOutleft  int16
	prevOutright int16
}

func NewResampler(rate int) *Resampler {
	r := &Resampler{
		bufleft:  blip.NewBuffer(blip.MaxFrame),
		bufright: blip.NewBuffer(blip.MaxFrame),
	}
	// One clock per DSP sample.
	r.bufleft.SetRates(hw.SampleRate, float64(rate))
	r.bufright.SetRates(hw.SampleRate, float64(rate))
	return r
}

// Resample appends to dst the interleaved stereo samples resulting from the
// conversion of in, and returns the extended slice.
func (r *Resampler) Resample(dst []int16, in []hw.Sample) []int16 {
	for len(in) > 0 {
		n := min(len(in), maxFrameIn)
		for i, s := range in[:n] {
			if s.L != r.prevOutleft {
				r.bufleft.AddDelta(uint64(i), int32(s.L)-int32(r.prevOutleft))
				r.prevOutleft = s.L
			}
			if s.R != r.prevOutright {
				r.bufright.AddDelta(uint64(i), int32(s.R)-int32(r.prevOutright))
				r.prevOutright = s.R
			}
		}
		r.bufleft.EndFrame(n)
		r.bufright.EndFrame(n)

		avail := r.bufleft.SamplesAvailable()
		start := len(dst)
		dst = slices.Grow(dst, avail*2)[:start+avail*2]
		r.bufleft.ReadSamples(dst[start:], avail, blip.Stereo)
		r.bufright.ReadSamples(dst[start+1:], avail, blip.Stereo)

		in = in[n:]
	}
	return dst
}

// interleave appends the samples to dst without rate conversion.
func interleave(dst []int16, in []hw.Sample) []int16 {
	for _, s := range in {
		dst = append(dst, s.L, s.R)
	}
	return dst
}
