package hw

// PSW is the packed SPC700 processor status word.
type PSW uint8

const (
	Carry PSW = 1 << iota
	Zero
	Interrupt
	HalfCarry
	Break
	DirectPage
	Overflow
	Negative
)

func (p PSW) String() string {
	const bits = "nvpbhizcNVPBHIZC"

	s := make([]byte, 8)
	for i := range 8 {
		ibit := (uint8(p) & (1 << (7 - i))) >> (7 - i)
		s[i] = bits[i+int(8*ibit)]
	}
	return string(s)
}

// Status is the processor status as the CPU keeps it while executing. It is
// only packed into a PSW when the program observes it (PUSH PSW, BRK) or when
// the state is saved.
type Status struct {
	// nz holds the last result: zero iff nz is 0, negative iff bit 7 is set.
	nz       uint8
	carry    bool
	overflow bool
	half     bool
	dp       uint16 // direct page base, 0x000 or 0x100
	bi       PSW    // break and interrupt bits, carried as is
}

// Unpack loads the status from p. A PSW with both N and Z set unpacks as
// zero.
func (s *Status) Unpack(p PSW) {
	switch {
	case p&Zero != 0:
		s.nz = 0
	case p&Negative != 0:
		s.nz = 0x80
	default:
		s.nz = 1
	}
	s.carry = p&Carry != 0
	s.overflow = p&Overflow != 0
	s.half = p&HalfCarry != 0
	s.dp = 0
	if p&DirectPage != 0 {
		s.dp = 0x100
	}
	s.bi = p & (Break | Interrupt)
}

// Pack returns the status as a PSW.
func (s Status) Pack() PSW {
	p := s.bi
	if s.IsNegative() {
		p |= Negative
	}
	if s.IsZero() {
		p |= Zero
	}
	if s.carry {
		p |= Carry
	}
	if s.overflow {
		p |= Overflow
	}
	if s.half {
		p |= HalfCarry
	}
	if s.dp != 0 {
		p |= DirectPage
	}
	return p
}

func (s Status) IsNegative() bool   { return s.nz&0x80 != 0 }
func (s Status) IsZero() bool       { return s.nz == 0 }
func (s Status) Carry() bool        { return s.carry }
func (s Status) Overflow() bool     { return s.overflow }
func (s Status) DirectPage() uint16 { return s.dp }

// setNZ16 records a 16-bit result: zero iff the whole word is zero, negative
// iff bit 15 is set.
func (s *Status) setNZ16(v uint16) {
	s.nz = uint8(v>>8) | b2u8(v&0xFF != 0)
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
