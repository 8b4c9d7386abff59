package snapshot

// State is the complete machine state of the sound unit: CPU registers, the
// 64KB RAM it shares with the DSP and the 128 DSP registers.
type State struct {
	PC  uint16
	SP  uint8
	PSW uint8
	A   uint8
	X   uint8
	Y   uint8

	RAM [0x10000]uint8
	DSP [0x80]uint8
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	return &c
}
