package hw

// Per-voice DSP registers, relative to the voice base address (voice * 0x10).
const (
	vregVOLL   = 0x0
	vregVOLR   = 0x1
	vregPITCHL = 0x2
	vregPITCHH = 0x3
	vregSRCN   = 0x4
	vregADSR1  = 0x5
	vregADSR2  = 0x6
	vregGAIN   = 0x7
	vregENVX   = 0x8
	vregOUTX   = 0x9
)

// Samples between a key-on and the start of the attack.
const keyOnDelay = 5

// Voice is one of the 8 DSP sample playback channels.
type Voice struct {
	idx  int
	regs *[0x10]uint8

	konDelay int
	active   bool

	srcn   uint8
	addr   uint16 // current BRR block
	offs   int    // offset of the next sample bytes within the block, minus the header
	buf    [24]int16
	bufpos int

	envState   EnvelopeState
	env        int32 // current envelope level
	envPending int32 // level computed on the last sample, committed or not
	interp     int32 // pitch accumulator, 12-bit fractional position
}

func (v *Voice) pitch() int32 {
	return int32(v.regs[vregPITCHH]&0x3F)<<8 | int32(v.regs[vregPITCHL])
}

// EnvelopeState returns the ADSR phase of the voice.
func (v *Voice) EnvelopeState() EnvelopeState { return v.envState }

// Envelope returns the current 11-bit envelope level.
func (v *Voice) Envelope() int32 { return v.env }

// Active reports whether the voice is playing a sample.
func (v *Voice) Active() bool { return v.active }

func (v *Voice) stop() {
	v.active = false
	v.envState = EnvRelease
	v.env = 0
	v.envPending = 0
}

// keyOnStep performs one step of the key-on sequence. Sample decoding starts
// one sample after key-on, and the first 3 decode steps happen before the
// voice is audible.
func (v *Voice) keyOnStep(ram *[0x10000]uint8, dir uint16) {
	v.konDelay--
	if v.konDelay == keyOnDelay-1 {
		v.srcn = v.regs[vregSRCN]
		v.addr = dirEntry(ram, dir, v.srcn, dirStart)
		v.offs = 0
		v.bufpos = 0
		v.active = true
	}

	v.env = 0
	v.envPending = 0
	v.interp = 0
	if v.konDelay < 3 {
		v.interp = 0x4000
	}
}
