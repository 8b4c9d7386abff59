package hw

import "testing"

func TestPSWString(t *testing.T) {
	p := PSW(0b00110100)
	if got := p.String(); got != "nvPBhIzc" {
		t.Errorf("got PSW = %s, want %s", got, "nvPBhIzc")
	}
	p = PSW(0b10000011)
	if got := p.String(); got != "NvpbhiZC" {
		t.Errorf("got PSW = %s, want %s", got, "NvpbhiZC")
	}
}

func TestStatusPackUnpack(t *testing.T) {
	// N and Z are exclusive once unpacked.
	for p := range 256 {
		psw := PSW(p)
		if psw&Negative != 0 && psw&Zero != 0 {
			continue
		}
		var s Status
		s.Unpack(psw)
		if got := s.Pack(); got != psw {
			t.Errorf("Unpack(%s).Pack() = %s", psw, got)
		}
	}
}

func TestStatusNZ16(t *testing.T) {
	tests := []struct {
		v        uint16
		zero     bool
		negative bool
	}{
		{0x0000, true, false},
		{0x0001, false, false},
		{0x0100, false, false},
		{0x7FFF, false, false},
		{0x8000, false, true},
		{0xFF00, false, true},
		{0x00FF, false, false},
	}
	for _, tt := range tests {
		var s Status
		s.setNZ16(tt.v)
		if s.IsZero() != tt.zero || s.IsNegative() != tt.negative {
			t.Errorf("setNZ16(%04x): zero=%t negative=%t, want zero=%t negative=%t",
				tt.v, s.IsZero(), s.IsNegative(), tt.zero, tt.negative)
		}
	}
}
