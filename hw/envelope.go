package hw

//go:generate go tool stringer -type=EnvelopeState -trimprefix=Env

// EnvelopeState is the ADSR phase of a voice.
type EnvelopeState uint8

const (
	EnvRelease EnvelopeState = iota
	EnvAttack
	EnvDecay
	EnvSustain
)

const envMax = 0x7FF

// rateMask returns the counter mask for an envelope rate that fires once every
// period samples, for a counter decremented by div every 8 samples.
func rateMask(period, div int) uint16 {
	if period >= div {
		return uint16(period/div*8 - 1)
	}
	return uint16(period - 1)
}

// Counter mask and counter selection for each of the 32 envelope rates.
var (
	rateMasks = [32]uint16{
		rateMask(2, 2), rateMask(2048, 4), rateMask(1536, 3),
		rateMask(1280, 5), rateMask(1024, 4), rateMask(768, 3),
		rateMask(640, 5), rateMask(512, 4), rateMask(384, 3),
		rateMask(320, 5), rateMask(256, 4), rateMask(192, 3),
		rateMask(160, 5), rateMask(128, 4), rateMask(96, 3),
		rateMask(80, 5), rateMask(64, 4), rateMask(48, 3),
		rateMask(40, 5), rateMask(32, 4), rateMask(24, 3),
		rateMask(20, 5), rateMask(16, 4), rateMask(12, 3),
		rateMask(10, 5), rateMask(8, 4), rateMask(6, 3),
		rateMask(5, 5), rateMask(4, 4), rateMask(3, 3),
		rateMask(2, 4),
		rateMask(1, 4),
	}
	rateSelect = [32]uint8{0, 2, 1, 3, 2, 1, 3, 2, 1, 3, 2, 1, 3, 2, 1, 3, 2, 1, 3, 2, 1, 3, 2, 1, 3, 2, 1, 3, 2, 1, 2, 2}
)

// rateCounters are the free-running counters shared by all voices to pace
// envelope updates. Index 0 is unused.
type rateCounters [4]uint16

func newRateCounters() rateCounters {
	return rateCounters{1, 0, 0xFFE0, 0x0B} // 0xFFE0 is -0x20
}

// step advances the 3 counters by one sample.
func (rc *rateCounters) step() {
	for i := 1; i <= 3; i++ {
		n := rc[i]
		if n&7 == 0 {
			n -= uint16(6 - i)
		}
		rc[i] = n - 1
	}
}

// fires reports whether rate qualifies for an envelope update on the current
// sample. Rate 0 never fires.
func (rc *rateCounters) fires(rate int) bool {
	if rate == 0 {
		return false
	}
	return rc[rateSelect[rate]]&rateMasks[rate] == 0
}

// expStep is the exponential step used by decay and sustain. Levels below
// 0xFF step up by one.
func expStep(env int32) int32 {
	return -((env + 1) >> 8) + 1
}

// runEnvelope performs one ADSR step for v. It returns false if v is in a
// mode that can't be emulated.
func (v *Voice) runEnvelope(rc *rateCounters, adsr1, adsr2 uint8) bool {
	if adsr1&0x80 == 0 {
		return false
	}

	switch v.envState {
	case EnvAttack:
		rate := int(adsr1&0x0F)*2 + 1
		step := int32(0x20)
		if rate == 31 {
			step = 0x400
		}
		v.applyEnv(rc, rate, step)
	case EnvDecay:
		rate := int(adsr1>>4&0x07)*2 + 16
		v.applyEnv(rc, rate, expStep(v.env))
		if v.envPending <= int32(adsr2>>5+1)*0x100 {
			v.envState = EnvSustain
		}
	case EnvSustain:
		rate := int(adsr2 & 0x1F)
		v.applyEnv(rc, rate, expStep(v.env))
	}
	return true
}

// applyEnv computes the next envelope level, which only becomes the current
// level if rate fires on this sample. Reaching the top of the range during
// attack moves on to decay.
func (v *Voice) applyEnv(rc *rateCounters, rate int, step int32) {
	next := v.env + step
	if next < 0 || next > envMax {
		next = min(max(next, 0), envMax)
		if v.envState == EnvAttack {
			v.envState = EnvDecay
		}
	}
	v.envPending = next
	if rc.fires(rate) {
		v.env = next
	}
}

// release decreases the envelope by 8 on every sample, regardless of rate
// counters. It returns false once the voice is silent.
func (v *Voice) release() bool {
	v.env -= 8
	v.envPending = v.env
	if v.env <= 0 {
		v.env = 0
		v.envPending = 0
		return false
	}
	return true
}
