package hw

import (
	"errors"
	"testing"
)

func TestRunUntilSlice(t *testing.T) {
	prog := make([]uint8, 16) // NOPs
	c := newTestCPU(prog...)
	if err := c.RunUntil(cyclesPerSample); err != nil {
		t.Fatal(err)
	}
	if c.PC != progStart+16 {
		t.Errorf("PC = %04x, want %04x", c.PC, progStart+16)
	}
	if c.Cycles != cyclesPerSample {
		t.Errorf("cycles = %d, want %d", c.Cycles, cyclesPerSample)
	}
}

func TestRunUntilDoesNotOvershoot(t *testing.T) {
	// MUL takes 9 cycles, the second one doesn't fit.
	c := newTestCPU(0xCF, 0xCF)
	if err := c.RunUntil(10); err != nil {
		t.Fatal(err)
	}
	if c.Cycles != 9 || c.PC != progStart+1 {
		t.Fatalf("cycles=%d PC=%04x, want cycles=9 PC=%04x", c.Cycles, c.PC, progStart+1)
	}

	// It runs on the next slice.
	if err := c.RunUntil(19); err != nil {
		t.Fatal(err)
	}
	if c.Cycles != 18 {
		t.Errorf("cycles = %d, want 18", c.Cycles)
	}
}

func TestSleep(t *testing.T) {
	c := newTestCPU(0x00, 0xEF, 0x00) // NOP; SLEEP
	if err := c.RunUntil(100); err != nil {
		t.Fatal(err)
	}
	if !c.Halted() {
		t.Fatal("CPU should be halted")
	}
	if c.PC != progStart+2 {
		t.Errorf("PC = %04x, want %04x", c.PC, progStart+2)
	}
	if c.Cycles != 100 {
		t.Errorf("cycles = %d, want 100", c.Cycles)
	}
	if err := c.RunUntil(200); err != nil {
		t.Fatal(err)
	}
	if c.Cycles != 200 || c.PC != progStart+2 {
		t.Errorf("cycles=%d PC=%04x after halt, want cycles=200 PC=%04x", c.Cycles, c.PC, progStart+2)
	}
}

func TestUnknownOpcode(t *testing.T) {
	const opcode = 0xFF
	saved := ops[opcode]
	ops[opcode] = nil
	t.Cleanup(func() { ops[opcode] = saved })

	c := newTestCPU(0x00, opcode)
	err := c.RunUntil(100)

	var operr *OpcodeError
	if !errors.As(err, &operr) {
		t.Fatalf("RunUntil error = %v, want *OpcodeError", err)
	}
	if operr.Opcode != opcode || operr.PC != progStart+1 {
		t.Errorf("got opcode=%02x pc=%04x, want opcode=%02x pc=%04x", operr.Opcode, operr.PC, opcode, progStart+1)
	}
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Errorf("error should wrap ErrUnknownOpcode")
	}
	if c.Cycles != 2 {
		t.Errorf("cycles = %d, want 2", c.Cycles)
	}

	// The error is sticky.
	if err2 := c.RunUntil(200); err2 != err {
		t.Errorf("second RunUntil error = %v, want %v", err2, err)
	}
	if c.Cycles != 2 {
		t.Errorf("cycles after error = %d, want 2", c.Cycles)
	}
}

func TestADCSBCRoundTrip(t *testing.T) {
	tests := []struct {
		a, v uint8
	}{
		{0x00, 0x00},
		{0x12, 0x34},
		{0x7F, 0x01},
		{0x80, 0x80},
		{0xFF, 0x01},
		{0xF0, 0xF0},
	}
	for _, tt := range tests {
		// CLRC; ADC A,#v; SETC; SBC A,#v
		c := newTestCPU(0x60, 0x88, tt.v, 0x80, 0xA8, tt.v)
		c.A = tt.a
		for range 4 {
			step(t, c)
		}
		if c.A != tt.a {
			t.Errorf("%02x+%02x-%02x = %02x, want %02x", tt.a, tt.v, tt.v, c.A, tt.a)
		}
	}
}

func TestADCFlags(t *testing.T) {
	tests := []struct {
		name       string
		a, v       uint8
		carryIn    bool
		want       uint8
		carry      bool
		half       bool
		zero, sign bool
	}{
		{name: "simple", a: 0x01, v: 0x02, want: 0x03},
		{name: "carry in", a: 0x01, v: 0x02, carryIn: true, want: 0x04},
		{name: "half carry", a: 0x0F, v: 0x01, want: 0x10, half: true},
		{name: "carry out", a: 0xFF, v: 0x01, want: 0x00, carry: true, half: true, zero: true},
		{name: "negative", a: 0x7F, v: 0x01, want: 0x80, half: true, sign: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(0x88, tt.v)
			c.A = tt.a
			c.carry = tt.carryIn
			step(t, c)
			if c.A != tt.want {
				t.Errorf("A = %02x, want %02x", c.A, tt.want)
			}
			if c.carry != tt.carry || c.half != tt.half {
				t.Errorf("C=%t H=%t, want C=%t H=%t", c.carry, c.half, tt.carry, tt.half)
			}
			if c.IsZero() != tt.zero || c.IsNegative() != tt.sign {
				t.Errorf("Z=%t N=%t, want Z=%t N=%t", c.IsZero(), c.IsNegative(), tt.zero, tt.sign)
			}
			if c.overflow {
				t.Errorf("V should never be set by ADC")
			}
		})
	}
}

func TestMUL(t *testing.T) {
	c := newTestCPU(0xCF)
	c.Y, c.A = 0x12, 0x34
	step(t, c)
	if c.YA() != 0x12*0x34 {
		t.Errorf("YA = %04x, want %04x", c.YA(), 0x12*0x34)
	}
	if c.IsZero() || c.IsNegative() {
		t.Errorf("N and Z should follow Y=%02x", c.Y)
	}
}

func TestDIV(t *testing.T) {
	tests := []struct {
		name     string
		ya       uint16
		x        uint8
		a, y     uint8
		overflow bool
	}{
		{name: "exact", ya: 0x0100, x: 0x10, a: 0x10, y: 0x00},
		{name: "remainder", ya: 0x0123, x: 0x10, a: 0x12, y: 0x03},
		{name: "by zero", ya: 0x0123, x: 0x00, a: 0xFE, y: 0x23, overflow: true},
		{name: "quotient overflow", ya: 0x2000, x: 0x10, a: 0xFF, y: 0x10, overflow: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(0x9E)
			c.setYA(tt.ya)
			c.X = tt.x
			step(t, c)
			if c.A != tt.a || c.Y != tt.y {
				t.Errorf("A=%02x Y=%02x, want A=%02x Y=%02x", c.A, c.Y, tt.a, tt.y)
			}
			if c.overflow != tt.overflow {
				t.Errorf("V = %t, want %t", c.overflow, tt.overflow)
			}
		})
	}
}

func TestDAA(t *testing.T) {
	tests := []struct{ a, v, want uint8 }{
		{0x09, 0x01, 0x10},
		{0x19, 0x28, 0x47},
		{0x45, 0x45, 0x90},
	}
	for _, tt := range tests {
		// CLRC; ADC A,#v; DAA
		c := newTestCPU(0x60, 0x88, tt.v, 0xDF)
		c.A = tt.a
		for range 3 {
			step(t, c)
		}
		if c.A != tt.want {
			t.Errorf("%02x+%02x = %02x, want %02x", tt.a, tt.v, c.A, tt.want)
		}
	}
}

func TestWordOps(t *testing.T) {
	// MOVW YA,$40; INCW $40; ADDW YA,$40; CMPW YA,$40
	c := newTestCPU(0xBA, 0x40, 0x3A, 0x40, 0x7A, 0x40, 0x5A, 0x40)
	c.ram[0x40], c.ram[0x41] = 0xFF, 0x00

	step(t, c)
	if c.YA() != 0x00FF {
		t.Fatalf("MOVW: YA = %04x, want 00FF", c.YA())
	}
	step(t, c)
	if w := c.dpWord(0x40); w != 0x0100 {
		t.Fatalf("INCW: word = %04x, want 0100", w)
	}
	c.carry = true // ADDW ignores carry in
	step(t, c)
	if c.YA() != 0x01FF || c.carry {
		t.Fatalf("ADDW: YA=%04x C=%t, want 01FF false", c.YA(), c.carry)
	}
	step(t, c)
	if !c.carry || c.IsZero() {
		t.Errorf("CMPW 01FF-0100: C=%t Z=%t, want C=true Z=false", c.carry, c.IsZero())
	}
}

func TestPushPopPSW(t *testing.T) {
	// PUSH PSW; CLRC; POP PSW
	c := newTestCPU(0x0D, 0x60, 0x8E)
	c.Unpack(Carry | Negative | DirectPage)
	for range 3 {
		step(t, c)
	}
	if got := c.Pack(); got != Carry|Negative|DirectPage {
		t.Errorf("PSW = %s, want %s", got, Carry|Negative|DirectPage)
	}
}
