package hwio

// 8-bit operations
func GetBit8(v uint8, n uint) bool {
	return GetBiti8(v, n) != 0
}

func GetBiti8(v uint8, n uint) uint8 {
	return v >> n & 0x01
}

func SetBit8(v *uint8, n uint) {
	*v |= 1 << n
}

func ClearBit8(v *uint8, n uint) {
	*v &^= 1 << n
}

// WriteBit8 sets or clears bit n of v.
func WriteBit8(v *uint8, n uint, set bool) {
	if set {
		SetBit8(v, n)
	} else {
		ClearBit8(v, n)
	}
}

// 16-bit operations

// Read16 reads a little-endian 16-bit value from buf at off. The high byte
// wraps around at the end of the buffer.
func Read16(buf []uint8, off uint16) uint16 {
	lo := buf[int(off)%len(buf)]
	hi := buf[(int(off)+1)%len(buf)]
	return uint16(lo) | uint16(hi)<<8
}
