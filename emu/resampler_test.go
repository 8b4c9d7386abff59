package emu

import (
	"testing"

	"spcplay/hw"
)

func TestResamplerSampleCount(t *testing.T) {
	in := make([]hw.Sample, hw.SampleRate)
	for i := range in {
		if i/40%2 == 0 {
			in[i] = hw.Sample{L: 8000, R: -8000}
		}
	}

	for _, rate := range []int{22050, 32000, 44100, 48000, 96000} {
		r := NewResampler(rate)

		var out []int16
		// Irregular chunks, some larger than a blip frame.
		for chunk, rest := 1, in; len(rest) > 0; chunk = chunk*3 + 1 {
			n := min(chunk, len(rest))
			out = r.Resample(out, rest[:n])
			rest = rest[n:]
		}

		if len(out)%2 != 0 {
			t.Fatalf("rate %d: odd number of values %d", rate, len(out))
		}
		if got := len(out) / 2; got < rate-2 || got > rate {
			t.Errorf("rate %d: got %d samples for one second", rate, got)
		}
	}
}

func TestResamplerChannels(t *testing.T) {
	in := make([]hw.Sample, 4000)
	for i := range in {
		if i/16%2 == 0 {
			in[i] = hw.Sample{L: 10000}
		} else {
			in[i] = hw.Sample{L: -10000}
		}
	}

	out := NewResampler(44100).Resample(nil, in)

	var peakL int16
	for i := 0; i < len(out); i += 2 {
		peakL = max(peakL, out[i])
		if out[i+1] != 0 {
			t.Fatalf("right channel sample %d = %d, want 0", i/2, out[i+1])
		}
	}
	if peakL < 5000 {
		t.Errorf("left channel peak = %d, want a signal", peakL)
	}
}

func TestInterleave(t *testing.T) {
	got := interleave(nil, []hw.Sample{{L: 1, R: 2}, {L: -3, R: -4}})
	want := []int16{1, 2, -3, -4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
