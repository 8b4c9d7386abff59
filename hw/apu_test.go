package hw

import (
	"testing"

	"spcplay/tests"
)

func TestTimerRegisters(t *testing.T) {
	a := New(tests.NewImage().Snapshot())
	c := a.CPU

	c.write8(ioT0DIV, 2)
	c.write8(ioCONTROL, 0x01) // enable timer 0

	c.Cycles = 128 * 2 * 3
	if got := c.read8(ioT0OUT); got != 3 {
		t.Errorf("T0OUT = %d, want 3", got)
	}
	if got := c.read8(ioT0OUT); got != 0 {
		t.Errorf("T0OUT = %d on second read, want 0", got)
	}

	// Writes to counters are ignored.
	c.write8(ioT0OUT, 9)
	if got := c.read8(ioT0OUT); got != 0 {
		t.Errorf("T0OUT = %d after write, want 0", got)
	}

	// Timer 1 is still disabled.
	if got := c.read8(ioT0OUT + 1); got != 0 {
		t.Errorf("T1OUT = %d, want 0", got)
	}
}

func TestTimersFromSnapshot(t *testing.T) {
	im := tests.NewImage()
	im.RAM[ioCONTROL] = 0x04 // timer 2 enabled
	im.RAM[ioT0DIV+2] = 4
	im.RAM[ioT0OUT+2] = 5

	a := New(im.Snapshot())
	a.CPU.Cycles = 16 * 4 * 2
	if got := a.CPU.read8(ioT0OUT + 2); got != 7 {
		t.Errorf("T2OUT = %d, want 7", got)
	}
}

func TestProgramTimerPolling(t *testing.T) {
	im := tests.NewImage()
	im.SetProgram(tests.ProgramAddr,
		0x8F, 0x01, 0xFA, // MOV $FA,#$01
		0x8F, 0x01, 0xF1, // MOV $F1,#$01
		0xE4, 0xFD, // loop: MOV A,$FD
		0xF0, 0xFC, // BEQ loop
		0xC4, 0x10, // MOV $10,A
		0xEF, // SLEEP
	)

	a := New(im.Snapshot())
	for range 16 {
		if _, err := a.RunSample(); err != nil {
			t.Fatal(err)
		}
	}
	if !a.CPU.Halted() {
		t.Fatal("program should have seen the timer tick")
	}
	if got := a.State().RAM[0x10]; got != 1 {
		t.Errorf("counter = %d, want 1", got)
	}
}

func TestProgramWritesDSP(t *testing.T) {
	im := tests.SquareImage()
	im.DSP[tests.RegKON] = 0
	im.SetProgram(tests.ProgramAddr,
		0x8F, tests.RegKON, 0xF2, // MOV $F2,#KON
		0x8F, 0x01, 0xF3, // MOV $F3,#$01
		0x8F, tests.RegDIR, 0xF2, // MOV $F2,#DIR
		0xE4, 0xF3, // MOV A,$F3
		0xEF, // SLEEP
	)

	a := New(im.Snapshot())
	out := render(t, a, 64)
	if nonSilent(out) == 0 {
		t.Error("voice keyed on by the program should play")
	}
	if a.CPU.A != tests.DirAddr>>8 {
		t.Errorf("A = %#x, want DIR register %#x", a.CPU.A, tests.DirAddr>>8)
	}
}

func TestCyclesAndState(t *testing.T) {
	a := New(tests.NewImage().Snapshot())
	render(t, a, 10)
	if got := a.Cycles(); got != 10*cyclesPerSample {
		t.Errorf("Cycles() = %d, want %d", got, 10*cyclesPerSample)
	}

	s := a.State()
	if s.PC != tests.ProgramAddr {
		t.Errorf("PC = %04x, want %04x", s.PC, tests.ProgramAddr)
	}
	s.RAM[0] = 0xFF
	if a.State().RAM[0] == 0xFF {
		t.Error("State should return a copy")
	}
}
