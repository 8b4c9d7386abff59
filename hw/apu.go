package hw

import (
	"fmt"

	"spcplay/emu/log"
	"spcplay/hw/hwio"
	"spcplay/hw/snapshot"
)

// Function registers.
const (
	ioTEST    = 0xF0
	ioCONTROL = 0xF1
	ioDSPADDR = 0xF2
	ioDSPDATA = 0xF3
	ioCPUIO0  = 0xF4
	ioAUXIO4  = 0xF8
	ioT0DIV   = 0xFA
	ioT0OUT   = 0xFD
)

// APU is the SNES sound module: the SPC700 CPU, its 3 timers and the DSP, all
// sharing 64kB of RAM.
type APU struct {
	CPU    *CPU
	DSP    *DSP
	Timers [3]Timer

	state *snapshot.State
	io    *hwio.Table
}

// New creates an APU resuming execution from s. The APU takes ownership of
// s, which is modified as emulation goes.
func New(s *snapshot.State) *APU {
	a := &APU{state: s}
	a.CPU = NewCPU(s)
	a.DSP = NewDSP(s, a.CPU)

	ctrl := s.RAM[ioCONTROL]
	for i := range a.Timers {
		a.Timers[i] = newTimer(i,
			hwio.GetBit8(ctrl, uint(i)),
			s.RAM[ioT0DIV+i],
			s.RAM[ioT0OUT+i])
	}

	a.initIO()
	a.CPU.io = a.io
	return a
}

func (a *APU) initIO() {
	a.io = hwio.NewTable("smp", ioTEST, 16)
	ram := &a.state.RAM

	reg := func(addr uint16, name string) *hwio.Reg8 {
		r := &hwio.Reg8{Name: name, Value: &ram[addr]}
		a.io.MapReg8(addr, r)
		return r
	}

	reg(ioTEST, "TEST").WriteCb = a.ignoredWrite("TEST")
	reg(ioCONTROL, "CONTROL").WriteCb = a.WriteCONTROL
	reg(ioDSPADDR, "DSPADDR")

	data := reg(ioDSPDATA, "DSPDATA")
	data.ReadCb = a.ReadDSPDATA
	data.WriteCb = a.WriteDSPDATA

	for i, name := range []string{"CPUIO0", "CPUIO1", "CPUIO2", "CPUIO3", "AUXIO4", "AUXIO5"} {
		reg(ioCPUIO0+uint16(i), name).WriteCb = a.ignoredWrite(name)
	}

	for i := range a.Timers {
		t := &a.Timers[i]
		div := reg(ioT0DIV+uint16(i), fmt.Sprintf("T%dDIV", i))
		div.WriteCb = func(_, val uint8) { t.SetDivisor(a.CPU.Cycles, val) }

		out := reg(ioT0OUT+uint16(i), fmt.Sprintf("T%dOUT", i))
		out.Flags = hwio.ReadOnlyFlag
		out.ReadCb = func(uint8) uint8 { return t.ReadCounter(a.CPU.Cycles) }
	}
}

func (a *APU) ignoredWrite(name string) func(old, val uint8) {
	return func(_, val uint8) {
		log.ModHwIo.DebugZ("ignored write").
			String("reg", name).
			Hex8("val", val).
			End()
	}
}

// CONTROL: $F1
func (a *APU) WriteCONTROL(old, val uint8) {
	for i := range a.Timers {
		a.Timers[i].SetEnabled(a.CPU.Cycles, hwio.GetBit8(val, uint(i)))
	}
}

// DSPDATA: $F3
func (a *APU) ReadDSPDATA(uint8) uint8 {
	return a.DSP.ReadReg(a.state.RAM[ioDSPADDR])
}

func (a *APU) WriteDSPDATA(old, val uint8) {
	a.DSP.WriteReg(a.state.RAM[ioDSPADDR], val)
}

// RunSample runs the APU for one DSP sample period. See DSP.RunSample.
func (a *APU) RunSample() (Sample, error) {
	return a.DSP.RunSample()
}

// Render fills frames with consecutive samples. It stops at the first error
// and returns the number of frames filled. An *UnsupportedError doesn't
// interrupt rendering and is returned at the end.
func (a *APU) Render(frames []Frame) (int, error) {
	var unsupported error
	for i := range frames {
		s, err := a.RunSample()
		if err != nil {
			if !isUnsupported(err) {
				return i, err
			}
			if unsupported == nil {
				unsupported = err
			}
		}
		frames[i] = s.Frame()
	}
	return len(frames), unsupported
}

// Cycles returns the number of CPU cycles elapsed since New.
func (a *APU) Cycles() int64 { return a.CPU.Cycles }

// State returns a copy of the current state.
func (a *APU) State() *snapshot.State {
	a.CPU.SaveState(a.state)
	return a.state.Clone()
}

func (a *APU) AddLogContext(z *log.EntryZ) {
	z.Int64("cycle", a.CPU.Cycles)
}
