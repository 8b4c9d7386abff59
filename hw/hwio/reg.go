package hwio

import "spcplay/emu/log"

type RWFlags uint8

const (
	ReadOnlyFlag  RWFlags = 1 << iota // writes are stored but have no effect
	WriteOnlyFlag                     // reads return the last written byte
)

// Reg8 is an 8-bit hardware register aliasing a byte of memory. The aliased
// byte always holds what a plain read of the register returns.
type Reg8 struct {
	Name  string
	Value *uint8
	Flags RWFlags

	// ReadCb, if set, is called on every read with the stored value and
	// returns the up-to-date value, which is stored back before being
	// returned.
	ReadCb func(val uint8) uint8

	// WriteCb, if set, is called after the written value has been stored.
	WriteCb func(old, val uint8)
}

func (r *Reg8) Read8() uint8 {
	if r.Flags&WriteOnlyFlag == 0 && r.ReadCb != nil {
		*r.Value = r.ReadCb(*r.Value)
	}
	return *r.Value
}

// Peek8 returns the stored value, without side effects.
func (r *Reg8) Peek8() uint8 {
	return *r.Value
}

func (r *Reg8) Write8(val uint8) {
	old := *r.Value
	*r.Value = val

	switch {
	case r.Flags&ReadOnlyFlag != 0:
		log.ModHwIo.DebugZ("ignored write to readonly register").
			String("name", r.Name).
			Hex8("val", val).
			End()
		return
	case r.WriteCb == nil:
		return
	}
	r.WriteCb(old, val)
}
