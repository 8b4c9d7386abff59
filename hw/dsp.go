package hw

import (
	"spcplay/emu/log"
	"spcplay/hw/snapshot"
)

// Global DSP registers.
const (
	regMVOLL = 0x0C
	regMVOLR = 0x1C
	regEVOLL = 0x2C
	regEVOLR = 0x3C
	regKON   = 0x4C
	regKOFF  = 0x5C
	regFLG   = 0x6C
	regENDX  = 0x7C
	regPMON  = 0x2D
	regNON   = 0x3D
	regEON   = 0x4D
	regDIR   = 0x5D
)

// FLG bits.
const (
	flgMute  = 1 << 6
	flgReset = 1 << 7
)

const (
	// SampleRate is the DSP output rate, in Hz.
	SampleRate = 32000

	// CPU cycles per output sample.
	cyclesPerSample = 32
)

// Sample is a stereo DSP output sample.
type Sample struct {
	L, R int16
}

// Frame is a stereo sample scaled down to floating point.
type Frame struct {
	L, R float32
}

// Float returns both channels divided by 65535.
func (s Sample) Float() (l, r float32) {
	return float32(s.L) / 0xFFFF, float32(s.R) / 0xFFFF
}

func (s Sample) Frame() Frame {
	l, r := s.Float()
	return Frame{L: l, R: r}
}

// A cpuRunner advances the CPU up to a point in time.
type cpuRunner interface {
	RunUntil(target int64) error
}

// DSP is the S-DSP sound generator. It produces one stereo sample every 32
// CPU cycles, running the CPU up to that point first.
type DSP struct {
	regs *[0x80]uint8
	ram  *[0x10000]uint8
	cpu  cpuRunner

	cpuTime    int64
	everyOther bool
	keyOn      uint8 // latched KON
	keyOff     uint8 // latched KOFF
	counters   rateCounters
	voices     [8]Voice

	warned uint8 // voices for which an unsupported feature has been reported
}

// NewDSP creates a DSP working on the registers and RAM of s.
func NewDSP(s *snapshot.State, cpu cpuRunner) *DSP {
	d := &DSP{
		regs:       &s.DSP,
		ram:        &s.RAM,
		cpu:        cpu,
		everyOther: true,
		counters:   newRateCounters(),
	}
	for i := range d.voices {
		d.voices[i] = Voice{
			idx:      i,
			regs:     (*[0x10]uint8)(s.DSP[i*0x10 : i*0x10+0x10]),
			envState: EnvRelease,
		}
	}
	return d
}

// Voice returns the voice at index i.
func (d *DSP) Voice(i int) *Voice { return &d.voices[i] }

func (d *DSP) ReadReg(addr uint8) uint8 {
	return d.regs[addr&0x7F]
}

// WriteReg writes a DSP register. Addresses above 0x7F are read-only mirrors
// and writing to ENDX clears it.
func (d *DSP) WriteReg(addr, val uint8) {
	if addr >= 0x80 {
		log.ModDSP.DebugZ("ignored write to mirror").
			Hex8("addr", addr).
			Hex8("val", val).
			End()
		return
	}
	if addr == regENDX {
		val = 0
	}
	log.ModDSP.DebugZ("write register").
		Hex8("addr", addr).
		Hex8("val", val).
		End()
	d.regs[addr] = val
}

func (d *DSP) dir() uint16 {
	return uint16(d.regs[regDIR]) << 8
}

// RunSample runs the CPU for one sample period and then produces the next
// stereo sample. A CPU error is returned as is and no sample is produced. An
// *UnsupportedError is returned along with the sample, which is then
// inaccurate.
func (d *DSP) RunSample() (Sample, error) {
	d.cpuTime += cyclesPerSample
	if err := d.cpu.RunUntil(d.cpuTime); err != nil {
		return Sample{}, err
	}

	if d.regs[regFLG]&flgReset != 0 {
		for i := range d.voices {
			d.voices[i].stop()
			d.voices[i].konDelay = 0
		}
	}

	d.everyOther = !d.everyOther
	if d.everyOther {
		d.keyOn = d.regs[regKON]
		d.regs[regKON] = 0
		d.keyOff = d.regs[regKOFF]
	}

	d.counters.step()

	var (
		suml, sumr int
		err        error
	)
	for i := range d.voices {
		v := &d.voices[i]
		out, ok := d.runVoice(v)
		if !ok && err == nil {
			err = d.unsupported(v, "GAIN")
		}
		suml += int(out) * int(int8(v.regs[vregVOLL]))
		sumr += int(out) * int(int8(v.regs[vregVOLR]))
	}

	var s Sample
	if d.regs[regFLG]&flgMute == 0 {
		s.L = int16(clamp16(int32(suml * int(int8(d.regs[regMVOLL])) >> 14)))
		s.R = int16(clamp16(int32(sumr * int(int8(d.regs[regMVOLR])) >> 14)))
	}
	return s, err
}

// runVoice advances v by one sample and returns its output, before volume.
// It returns false if the voice uses a mode that can't be emulated.
func (d *DSP) runVoice(v *Voice) (int32, bool) {
	bit := uint8(1) << v.idx
	pitch := v.pitch()

	if v.konDelay > 0 {
		v.keyOnStep(d.ram, d.dir())
		pitch = 0
	}

	if d.everyOther {
		if d.keyOff&bit != 0 {
			v.envState = EnvRelease
		}
		if d.keyOn&bit != 0 {
			v.envState = EnvAttack
			v.konDelay = keyOnDelay
			d.regs[regENDX] &^= bit
		}
	}

	supported := true
	if v.konDelay == 0 {
		if v.envState == EnvRelease {
			if !v.release() {
				v.active = false
				v.regs[vregENVX] = 0
				v.regs[vregOUTX] = 0
				return 0, true
			}
		} else {
			supported = v.runEnvelope(&d.counters, v.regs[vregADSR1], v.regs[vregADSR2])
		}
	}

	old := v.interp
	v.interp = old&0x3FFF + pitch
	if old >= 0x4000 {
		end, stop := v.decodeBRR(d.ram, d.dir())
		if end {
			d.regs[regENDX] |= bit
		}
		if stop {
			v.stop()
		}
	}

	var out int32
	if v.envPending > 0 {
		out = v.gaussInterpolate() * v.envPending >> 11
	}

	v.regs[vregENVX] = uint8(v.env >> 4)
	v.regs[vregOUTX] = uint8(out >> 8)
	return out, supported
}

func (d *DSP) unsupported(v *Voice, feature string) error {
	bit := uint8(1) << v.idx
	if d.warned&bit == 0 {
		d.warned |= bit
		log.ModDSP.WarnZ("unsupported feature").
			String("feature", feature).
			Int("voice", v.idx).
			Stringer("state", v.envState).
			End()
	}
	return &UnsupportedError{Feature: feature, Voice: v.idx}
}
