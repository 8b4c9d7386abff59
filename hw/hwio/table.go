package hwio

import (
	"fmt"

	"spcplay/emu/log"
)

// Table is a closed window of contiguous 8-bit registers. Registers are
// resolved by their offset in the window, once per access.
type Table struct {
	Name string

	base uint16
	regs []*Reg8
}

// NewTable creates an empty table of size registers starting at base.
func NewTable(name string, base uint16, size int) *Table {
	return &Table{
		Name: name,
		base: base,
		regs: make([]*Reg8, size),
	}
}

// Contains reports whether addr falls within the table window.
func (t *Table) Contains(addr uint16) bool {
	return addr >= t.base && int(addr-t.base) < len(t.regs)
}

// MapReg8 maps reg at addr. It panics if addr is outside the window or if a
// register is already mapped there.
func (t *Table) MapReg8(addr uint16, reg *Reg8) {
	if !t.Contains(addr) {
		panic(fmt.Sprintf("%s: address %04x out of window", t.Name, addr))
	}
	if cur := t.regs[addr-t.base]; cur != nil {
		panic(fmt.Sprintf("%s: address %04x already mapped to %s", t.Name, addr, cur.Name))
	}
	t.regs[addr-t.base] = reg
}

// Reg returns the register mapped at addr, or nil.
func (t *Table) Reg(addr uint16) *Reg8 {
	if !t.Contains(addr) {
		return nil
	}
	return t.regs[addr-t.base]
}

func (t *Table) Read8(addr uint16) uint8 {
	reg := t.Reg(addr)
	if reg == nil {
		log.ModHwIo.ErrorZ("unmapped Read8").
			String("table", t.Name).
			Hex16("addr", addr).
			End()
		return 0
	}
	return reg.Read8()
}

func (t *Table) Peek8(addr uint16) uint8 {
	if reg := t.Reg(addr); reg != nil {
		return reg.Peek8()
	}
	return 0
}

func (t *Table) Write8(addr uint16, val uint8) {
	reg := t.Reg(addr)
	if reg == nil {
		log.ModHwIo.ErrorZ("unmapped Write8").
			String("table", t.Name).
			Hex16("addr", addr).
			Hex8("val", val).
			End()
		return
	}
	reg.Write8(val)
}
