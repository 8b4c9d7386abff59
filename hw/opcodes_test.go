package hw

import (
	"testing"

	"spcplay/hw/snapshot"
)

func TestAllOpcodesAreImplemented(t *testing.T) {
	for opcode, op := range ops {
		if op == nil {
			t.Errorf("opcode %02x not implemented", opcode)
		}
	}
}

const progStart = 0x200

// newTestCPU returns a CPU about to execute prog, without function registers.
func newTestCPU(prog ...uint8) *CPU {
	s := &snapshot.State{PC: progStart, SP: 0xEF}
	copy(s.RAM[progStart:], prog)
	return NewCPU(s)
}

func step(t *testing.T, c *CPU) {
	t.Helper()
	if err := c.Step(); err != nil {
		t.Fatal(err)
	}
}

func setVector(vec, addr uint16) func(c *CPU) {
	return func(c *CPU) {
		c.ram[vec] = uint8(addr)
		c.ram[vec+1] = uint8(addr >> 8)
	}
}

func TestOpcodeTiming(t *testing.T) {
	tests := []struct {
		name   string
		prog   []uint8
		init   func(c *CPU)
		pc     uint16
		cycles int64
	}{
		{name: "NOP", prog: []uint8{0x00}, pc: progStart + 1, cycles: 2},
		{name: "MOV A,#imm", prog: []uint8{0xE8, 0x12}, pc: progStart + 2, cycles: 2},
		{name: "MOV A,!abs", prog: []uint8{0xE5, 0x00, 0x10}, pc: progStart + 3, cycles: 4},
		{name: "MOV dp,#imm", prog: []uint8{0x8F, 0x12, 0x40}, pc: progStart + 3, cycles: 5},
		{name: "OR dp,dp", prog: []uint8{0x09, 0x40, 0x41}, pc: progStart + 3, cycles: 6},
		{name: "MOV A,(X)", prog: []uint8{0xE6}, pc: progStart + 1, cycles: 3},
		{name: "OR (X),(Y)", prog: []uint8{0x19}, pc: progStart + 1, cycles: 5},
		{name: "MOV1 C,mem.bit", prog: []uint8{0xAA, 0x00, 0x20}, pc: progStart + 3, cycles: 4},
		{name: "MUL YA", prog: []uint8{0xCF}, pc: progStart + 1, cycles: 9},
		{name: "DIV YA,X", prog: []uint8{0x9E}, init: func(c *CPU) { c.X = 1 }, pc: progStart + 1, cycles: 12},
		{name: "CALL", prog: []uint8{0x3F, 0x34, 0x12}, pc: 0x1234, cycles: 8},
		{name: "PCALL", prog: []uint8{0x4F, 0x80}, pc: 0xFF80, cycles: 6},
		{name: "JMP !abs", prog: []uint8{0x5F, 0x00, 0x03}, pc: 0x0300, cycles: 3},
		{name: "BRA", prog: []uint8{0x2F, 0x10}, pc: progStart + 2 + 0x10, cycles: 4},
		{name: "BRA backward", prog: []uint8{0x2F, 0xFE}, pc: progStart, cycles: 4},
		{
			name:   "BNE taken",
			prog:   []uint8{0xD0, 0x05},
			init:   func(c *CPU) { c.nz = 1 },
			pc:     progStart + 2 + 5,
			cycles: 4,
		},
		{
			name:   "BNE not taken",
			prog:   []uint8{0xD0, 0x05},
			init:   func(c *CPU) { c.nz = 0 },
			pc:     progStart + 2,
			cycles: 2,
		},
		{
			name:   "CBNE taken",
			prog:   []uint8{0x2E, 0x40, 0x05},
			init:   func(c *CPU) { c.A = 1 },
			pc:     progStart + 3 + 5,
			cycles: 7,
		},
		{name: "CBNE not taken", prog: []uint8{0x2E, 0x40, 0x05}, pc: progStart + 3, cycles: 5},
		{
			name:   "BBS taken",
			prog:   []uint8{0x03, 0x40, 0x05},
			init:   func(c *CPU) { c.ram[0x40] = 0x01 },
			pc:     progStart + 3 + 5,
			cycles: 7,
		},
		{
			name:   "DBNZ Y",
			prog:   []uint8{0xFE, 0xFE},
			init:   func(c *CPU) { c.Y = 2 },
			pc:     progStart,
			cycles: 6,
		},
		{
			name:   "TCALL 1",
			prog:   []uint8{0x11},
			init:   setVector(0xFFDC, 0x0500),
			pc:     0x0500,
			cycles: 8,
		},
		{
			name:   "BRK",
			prog:   []uint8{0x0F},
			init:   setVector(BRKVector, 0x0600),
			pc:     0x0600,
			cycles: 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(tt.prog...)
			if tt.init != nil {
				tt.init(c)
			}
			step(t, c)
			if c.PC != tt.pc {
				t.Errorf("PC = %04x, want %04x", c.PC, tt.pc)
			}
			if c.Cycles != tt.cycles {
				t.Errorf("cycles = %d, want %d", c.Cycles, tt.cycles)
			}
		})
	}
}

// Length in bytes of each instruction.
var opcodeLengths = [256]uint8{
	1, 1, 2, 3, 2, 3, 1, 2, 2, 3, 3, 2, 3, 1, 3, 1,
	2, 1, 2, 3, 2, 3, 3, 2, 3, 1, 2, 2, 1, 1, 3, 3,
	1, 1, 2, 3, 2, 3, 1, 2, 2, 3, 3, 2, 3, 1, 3, 2,
	2, 1, 2, 3, 2, 3, 3, 2, 3, 1, 2, 2, 1, 1, 2, 3,
	1, 1, 2, 3, 2, 3, 1, 2, 2, 3, 3, 2, 3, 1, 3, 2,
	2, 1, 2, 3, 2, 3, 3, 2, 3, 1, 2, 2, 1, 1, 3, 3,
	1, 1, 2, 3, 2, 3, 1, 2, 2, 3, 3, 2, 3, 1, 3, 1,
	2, 1, 2, 3, 2, 3, 3, 2, 3, 1, 2, 2, 1, 1, 2, 1,
	1, 1, 2, 3, 2, 3, 1, 2, 2, 3, 3, 2, 3, 2, 1, 3,
	2, 1, 2, 3, 2, 3, 3, 2, 3, 1, 2, 2, 1, 1, 1, 1,
	1, 1, 2, 3, 2, 3, 1, 2, 2, 3, 3, 2, 3, 2, 1, 1,
	2, 1, 2, 3, 2, 3, 3, 2, 3, 1, 2, 2, 1, 1, 1, 1,
	1, 1, 2, 3, 2, 3, 1, 2, 2, 3, 3, 2, 3, 2, 1, 1,
	2, 1, 2, 3, 2, 3, 3, 2, 2, 2, 2, 2, 1, 1, 3, 1,
	1, 1, 2, 3, 2, 3, 1, 2, 2, 3, 3, 2, 3, 1, 1, 1,
	2, 1, 2, 3, 2, 3, 3, 2, 2, 2, 3, 2, 1, 1, 2, 1,
}

// jumps reports whether op always transfers control away from the next
// instruction, or halts the CPU.
func jumps(op uint8) bool {
	if op&0x0F == 0x01 { // TCALL
		return true
	}
	switch op {
	case 0x0F, 0x1F, 0x3F, 0x4F, 0x5F, 0x6F, 0x7F, 0xEF, 0xFF:
		return true
	}
	return false
}

// conditional reports whether op is a conditional branch.
func conditional(op uint8) bool {
	switch {
	case op&0x1F == 0x10: // BPL, BMI, ..., BEQ
		return true
	case op&0x0F == 0x03: // BBS, BBC
		return true
	}
	switch op {
	case 0x2E, 0x6E, 0xDE, 0xFE:
		return true
	}
	return false
}

// With zeroed operands, taken branches land on the next instruction too.
func TestOpcodeLengthsAndCycles(t *testing.T) {
	for i := range 256 {
		op := uint8(i)
		if jumps(op) {
			continue
		}
		c := newTestCPU(op, 0, 0)
		step(t, c)

		if want := uint16(progStart) + uint16(opcodeLengths[op]); c.PC != want {
			t.Errorf("opcode %02X: PC = %04x, want %04x", op, c.PC, want)
		}
		want := int64(cycleTable[op])
		switch {
		case conditional(op):
			if c.Cycles != want && c.Cycles != want-2 {
				t.Errorf("opcode %02X: cycles = %d, want %d or %d", op, c.Cycles, want, want-2)
			}
		case c.Cycles != want:
			t.Errorf("opcode %02X: cycles = %d, want %d", op, c.Cycles, want)
		}
	}
}

func TestCallReturn(t *testing.T) {
	c := newTestCPU(0x3F, 0x00, 0x03) // CALL !$0300
	c.ram[0x300] = 0x6F               // RET

	step(t, c)
	if c.SP != 0xED {
		t.Fatalf("SP after CALL = %02x, want ED", c.SP)
	}
	step(t, c)
	if c.PC != progStart+3 {
		t.Errorf("PC after RET = %04x, want %04x", c.PC, progStart+3)
	}
	if c.SP != 0xEF {
		t.Errorf("SP after RET = %02x, want EF", c.SP)
	}
}

func TestDirectPageWraps(t *testing.T) {
	c := newTestCPU(0xF4, 0xFF) // MOV A,dp+X
	c.X = 2
	c.ram[0x0001] = 0x42
	c.ram[0x0101] = 0x24
	step(t, c)
	if c.A != 0x42 {
		t.Errorf("A = %02x, want 42", c.A)
	}

	c = newTestCPU(0x40, 0xF4, 0xFF) // SETP; MOV A,dp+X
	c.X = 2
	c.ram[0x0101] = 0x24
	step(t, c)
	step(t, c)
	if c.A != 0x24 {
		t.Errorf("A with P set = %02x, want 24", c.A)
	}
}
