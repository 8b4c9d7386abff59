package hw

import (
	"spcplay/emu/log"
	"spcplay/hw/hwio"
	"spcplay/hw/snapshot"
)

// Locations reserved for vector pointers.
const (
	BRKVector   = uint16(0xFFDE) // Software break
	TCALLVector = uint16(0xFFDE) // TCALL n jumps through TCALLVector - 2n
)

const stackPage = 0x100

// Regs is the SPC700 register file.
type Regs struct {
	PC          uint16
	SP, A, X, Y uint8

	Status
}

// YA is the 16-bit register formed by Y (high) and A (low).
func (r *Regs) YA() uint16 { return uint16(r.Y)<<8 | uint16(r.A) }

func (r *Regs) setYA(v uint16) {
	r.Y = uint8(v >> 8)
	r.A = uint8(v)
}

// CPU is the SPC700 sound CPU. It executes from the RAM it shares with the
// DSP, in units of whole instructions.
type CPU struct {
	Regs

	Cycles int64 // elapsed CPU cycles

	ram *[0x10000]uint8
	io  *hwio.Table // function registers window, nil when absent

	data   uint8 // operand byte following the opcode
	halted bool
	err    error
}

// NewCPU creates a CPU with the registers and memory of s. The CPU works
// directly on s.RAM.
func NewCPU(s *snapshot.State) *CPU {
	c := &CPU{ram: &s.RAM}
	c.PC = s.PC
	c.SP = s.SP
	c.A = s.A
	c.X = s.X
	c.Y = s.Y
	c.Unpack(PSW(s.PSW))
	return c
}

// SaveState copies the registers into s.
func (c *CPU) SaveState(s *snapshot.State) {
	s.PC = c.PC
	s.SP = c.SP
	s.A = c.A
	s.X = c.X
	s.Y = c.Y
	s.PSW = uint8(c.Pack())
}

// Halted reports whether the CPU executed SLEEP or STOP.
func (c *CPU) Halted() bool { return c.halted }

// RunUntil executes instructions until the cycle counter reaches target. An
// instruction that would end past target is not started. Once an error has
// been returned, every subsequent call returns it.
func (c *CPU) RunUntil(target int64) error {
	if c.err != nil {
		return c.err
	}

	for c.Cycles < target {
		if c.halted {
			c.Cycles = target
			break
		}
		if c.Cycles+int64(cycleTable[c.ram[c.PC]]) > target {
			break
		}
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes a single instruction. It does nothing if the CPU is halted.
func (c *CPU) Step() error {
	if c.err != nil || c.halted {
		return c.err
	}

	opcode := c.ram[c.PC]
	op := ops[opcode]
	if op == nil {
		c.err = &OpcodeError{Opcode: opcode, PC: c.PC}
		log.ModCPU.ErrorZ("unknown opcode").
			Hex16("PC", c.PC).
			Hex8("opcode", opcode).
			End()
		return c.err
	}

	c.Cycles += int64(cycleTable[opcode])
	c.PC++
	c.data = c.fetch()
	op(c)

	if c.halted {
		log.ModCPU.WarnZ("CPU halted").
			Hex16("PC", c.PC).
			Hex8("opcode", opcode).
			End()
	}
	return nil
}

func (c *CPU) halt() {
	c.halted = true
}

// fetch returns the byte at PC and moves PC past it. Instruction bytes are
// read directly from RAM, without register side effects.
func (c *CPU) fetch() uint8 {
	v := c.ram[c.PC]
	c.PC++
	return v
}

func (c *CPU) read8(addr uint16) uint8 {
	if c.io != nil && c.io.Contains(addr) {
		return c.io.Read8(addr)
	}
	return c.ram[addr]
}

func (c *CPU) write8(addr uint16, val uint8) {
	if c.io != nil && c.io.Contains(addr) {
		c.io.Write8(addr, val)
		return
	}
	c.ram[addr] = val
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := c.read8(addr)
	hi := c.read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Direct page accesses wrap within the page.

func (c *CPU) dpAddr(off uint8) uint16 {
	return c.dp | uint16(off)
}

func (c *CPU) dpWord(off uint8) uint16 {
	lo := c.read8(c.dpAddr(off))
	hi := c.read8(c.dpAddr(off + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) writeDPWord(off uint8, v uint16) {
	c.write8(c.dpAddr(off), uint8(v))
	c.write8(c.dpAddr(off+1), uint8(v>>8))
}

// Stack

func (c *CPU) push8(v uint8) {
	c.ram[stackPage|uint16(c.SP)] = v
	c.SP--
}

func (c *CPU) pop8() uint8 {
	c.SP++
	return c.ram[stackPage|uint16(c.SP)]
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pop16() uint16 {
	lo := c.pop8()
	hi := c.pop8()
	return uint16(hi)<<8 | uint16(lo)
}

// Addressing modes. Each returns the effective address and consumes the
// operand bytes it needs.

func (c *CPU) modeDP() uint16  { return c.dpAddr(c.data) }
func (c *CPU) modeDPX() uint16 { return c.dpAddr(c.data + c.X) }
func (c *CPU) modeDPY() uint16 { return c.dpAddr(c.data + c.Y) }

func (c *CPU) modeAbs() uint16 {
	return uint16(c.fetch())<<8 | uint16(c.data)
}

func (c *CPU) modeAbsX() uint16 { return c.modeAbs() + uint16(c.X) }
func (c *CPU) modeAbsY() uint16 { return c.modeAbs() + uint16(c.Y) }

// (X), the instruction has no operand.
func (c *CPU) modeIndX() uint16 {
	c.PC--
	return c.dpAddr(c.X)
}

// [dp+X]
func (c *CPU) modeDPXInd() uint16 { return c.dpWord(c.data + c.X) }

// [dp]+Y
func (c *CPU) modeDPIndY() uint16 { return c.dpWord(c.data) + uint16(c.Y) }

// mem.bit: 13-bit address and 3-bit bit index.
func (c *CPU) modeMemBit() (uint16, uint) {
	w := c.modeAbs()
	return w & 0x1FFF, uint(w >> 13)
}

func (c *CPU) branch(cond bool, rel uint8) {
	if cond {
		c.PC += uint16(int8(rel))
		return
	}
	c.Cycles -= 2
}

// ALU

func (c *CPU) or(x, y uint8) uint8 {
	c.nz = x | y
	return c.nz
}

func (c *CPU) and(x, y uint8) uint8 {
	c.nz = x & y
	return c.nz
}

func (c *CPU) eor(x, y uint8) uint8 {
	c.nz = x ^ y
	return c.nz
}

// adc never sets the overflow flag.
func (c *CPU) adc(x, y uint8) uint8 {
	t := uint16(x) + uint16(y) + uint16(b2u8(c.carry))
	c.half = (x^y^uint8(t))&0x10 != 0
	c.carry = t > 0xFF
	c.nz = uint8(t)
	return uint8(t)
}

func (c *CPU) sbc(x, y uint8) uint8 {
	return c.adc(x, ^y)
}

// cmp sets the flags of x-y and returns x unchanged.
func (c *CPU) cmp(x, y uint8) uint8 {
	t := int16(x) - int16(y)
	c.carry = t >= 0
	c.nz = uint8(t)
	return x
}

func (c *CPU) asl(v uint8) uint8 {
	c.carry = v&0x80 != 0
	c.nz = v << 1
	return c.nz
}

func (c *CPU) lsr(v uint8) uint8 {
	c.carry = v&0x01 != 0
	c.nz = v >> 1
	return c.nz
}

func (c *CPU) rol(v uint8) uint8 {
	c.nz = v<<1 | b2u8(c.carry)
	c.carry = v&0x80 != 0
	return c.nz
}

func (c *CPU) ror(v uint8) uint8 {
	c.nz = v>>1 | b2u8(c.carry)<<7
	c.carry = v&0x01 != 0
	return c.nz
}

func (c *CPU) inc(v uint8) uint8 {
	c.nz = v + 1
	return c.nz
}

func (c *CPU) dec(v uint8) uint8 {
	c.nz = v - 1
	return c.nz
}

// rmw applies op to the byte at addr.
func (c *CPU) rmw(addr uint16, op func(uint8) uint8) {
	c.write8(addr, op(c.read8(addr)))
}

// aluDPDP applies op to dp(dst) and dp(src), encoded as op src dst.
func (c *CPU) aluDPDP(op func(x, y uint8) uint8, store bool) {
	src := c.read8(c.dpAddr(c.data))
	dst := c.dpAddr(c.fetch())
	r := op(c.read8(dst), src)
	if store {
		c.write8(dst, r)
	}
}

// aluDPImm applies op to dp and an immediate, encoded as op imm dp.
func (c *CPU) aluDPImm(op func(x, y uint8) uint8, store bool) {
	dst := c.dpAddr(c.fetch())
	r := op(c.read8(dst), c.data)
	if store {
		c.write8(dst, r)
	}
}

// aluIndXY applies op to (X) and (Y).
func (c *CPU) aluIndXY(op func(x, y uint8) uint8, store bool) {
	c.PC--
	src := c.read8(c.dpAddr(c.Y))
	dst := c.dpAddr(c.X)
	r := op(c.read8(dst), src)
	if store {
		c.write8(dst, r)
	}
}

func (c *CPU) memBit() bool {
	addr, bit := c.modeMemBit()
	return hwio.GetBit8(c.read8(addr), bit)
}
