package hw

import "testing"

// Number of samples between 2 envelope updates, for each rate.
var ratePeriods = [32]int{
	0, 2048, 1536, 1280, 1024, 768, 640, 512,
	384, 320, 256, 192, 160, 128, 96, 80,
	64, 48, 40, 32, 24, 20, 16, 12,
	10, 8, 6, 5, 4, 3, 2, 1,
}

func TestRateCounters(t *testing.T) {
	const nsamples = 61440 // multiple of every period

	var fired [32]int
	rc := newRateCounters()
	for range nsamples {
		rc.step()
		for rate := range fired {
			if rc.fires(rate) {
				fired[rate]++
			}
		}
	}

	if fired[0] != 0 {
		t.Errorf("rate 0 fired %d times", fired[0])
	}
	for rate := 1; rate < 32; rate++ {
		if want := nsamples / ratePeriods[rate]; fired[rate] != want {
			t.Errorf("rate %d fired %d times, want %d", rate, fired[rate], want)
		}
	}
}

func TestAttackFastest(t *testing.T) {
	tests := []struct {
		name  string
		env   int32
		ticks []int32 // env after each tick
		want  EnvelopeState
	}{
		{name: "from 0x400", env: 0x400, ticks: []int32{envMax}, want: EnvDecay},
		{name: "from zero", env: 0, ticks: []int32{0x400, envMax}, want: EnvDecay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := newRateCounters()
			v := Voice{envState: EnvAttack, env: tt.env}
			for i, want := range tt.ticks {
				rc.step()
				if !v.runEnvelope(&rc, 0x8F, 0x00) {
					t.Fatal("ADSR should be supported")
				}
				if v.env != want {
					t.Errorf("tick %d: env = %#x, want %#x", i, v.env, want)
				}
				if i < len(tt.ticks)-1 && v.envState != EnvAttack {
					t.Errorf("tick %d: state = %s, want %s", i, v.envState, EnvAttack)
				}
			}
			if v.envState != tt.want {
				t.Errorf("state = %s, want %s", v.envState, tt.want)
			}
		})
	}
}

func TestEnvelopePhases(t *testing.T) {
	// Fastest attack, fastest decay down to sustain level 4 (0x500), then no
	// sustain decrease.
	const adsr1, adsr2 = 0xFF, 0x80

	rc := newRateCounters()
	v := Voice{envState: EnvAttack}

	var states []EnvelopeState
	for range 1000 {
		rc.step()
		v.runEnvelope(&rc, adsr1, adsr2)
		if len(states) == 0 || states[len(states)-1] != v.envState {
			states = append(states, v.envState)
		}
	}

	want := []EnvelopeState{EnvAttack, EnvDecay, EnvSustain}
	if len(states) != len(want) {
		t.Fatalf("went through %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("went through %v, want %v", states, want)
		}
	}
	if v.env > 0x510 || v.env < 0x4F0 {
		t.Errorf("sustain level = %#x, want about 0x500", v.env)
	}
}

func TestExpStep(t *testing.T) {
	tests := []struct{ env, want int32 }{
		{0x7FF, -7},
		{0x6FF, -6},
		{0x1FF, -1},
		{0x100, 0},
		{0x0FF, 0},
		{0x0FE, 1},
		{0x000, 1},
	}
	for _, tt := range tests {
		if got := expStep(tt.env); got != tt.want {
			t.Errorf("expStep(%#x) = %d, want %d", tt.env, got, tt.want)
		}
	}
}

func TestSustainFastest(t *testing.T) {
	// Sustain rate 31 updates on every sample.
	rc := newRateCounters()
	v := Voice{envState: EnvSustain, env: envMax}
	for range 64 {
		rc.step()
		v.runEnvelope(&rc, 0x80, 0x1F)
	}
	if v.env != 0x693 {
		t.Errorf("env = %#x after 64 samples, want 0x693", v.env)
	}
	if v.envState != EnvSustain {
		t.Errorf("state = %s, want %s", v.envState, EnvSustain)
	}
}

func TestGAINUnsupported(t *testing.T) {
	rc := newRateCounters()
	v := Voice{envState: EnvAttack, env: 0x100}
	if v.runEnvelope(&rc, 0x0F, 0x00) {
		t.Fatal("GAIN mode should be reported")
	}
	if v.env != 0x100 {
		t.Errorf("env = %#x, should be left untouched", v.env)
	}
}

func TestRelease(t *testing.T) {
	v := Voice{envState: EnvRelease, env: 20}
	if !v.release() || v.env != 12 {
		t.Fatalf("env = %d after first release step, want 12", v.env)
	}
	if !v.release() || v.env != 4 {
		t.Fatalf("env = %d after second release step, want 4", v.env)
	}
	if v.release() {
		t.Fatal("voice should be silent")
	}
	if v.env != 0 {
		t.Errorf("env = %d, want 0", v.env)
	}
}
