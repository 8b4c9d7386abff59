package hw

import "spcplay/hw/hwio"

// A BRR block is a header byte followed by 8 bytes holding 16 4-bit samples.
const brrBlockSize = 9

// BRR header fields.
const (
	brrEnd  = 1 << 0
	brrLoop = 1 << 1
)

func clamp16(v int32) int32 {
	return min(max(v, -32768), 32767)
}

// decodeNibble decodes a single 4-bit sample and appends it to the history
// ring. The previous 2 samples feed the prediction filter.
func (v *Voice) decodeNibble(nibble uint8, shift uint8, filter uint8) {
	s := int32(int8(nibble<<4) >> 4)
	s = (s << shift) >> 1
	if shift >= 13 {
		// Out of range shifts only keep the sign.
		s = (s >> 25) << 11
	}

	p1 := int32(v.buf[v.bufpos+11])
	p2 := int32(v.buf[v.bufpos+10]) >> 1

	switch filter {
	case 1:
		s += p1 >> 1
		s += -p1 >> 5
	case 2:
		s += p1 - p2
		s += p2 >> 4
		s += (p1 * -3) >> 6
	case 3:
		s += p1 - p2
		s += (p1 * -13) >> 7
		s += (p2 * 3) >> 4
	}

	s = int32(int16(clamp16(s) << 1))
	v.buf[v.bufpos] = int16(s)
	v.buf[v.bufpos+12] = int16(s)
	v.bufpos++
	if v.bufpos >= 12 {
		v.bufpos = 0
	}
}

// decodeBRR decodes the next 4 samples of the current block, moving on to
// the next block when the current one is exhausted. end reports that an end
// block has just been consumed, stop that it had no loop flag.
func (v *Voice) decodeBRR(ram *[0x10000]uint8, dir uint16) (end, stop bool) {
	header := ram[v.addr]
	b1 := ram[v.addr+uint16(v.offs)+1]
	b2 := ram[v.addr+uint16(v.offs)+2]
	v.offs += 2

	shift := header >> 4
	filter := header >> 2 & 0x03

	v.decodeNibble(b1>>4, shift, filter)
	v.decodeNibble(b1&0x0F, shift, filter)
	v.decodeNibble(b2>>4, shift, filter)
	v.decodeNibble(b2&0x0F, shift, filter)

	if v.offs < 8 {
		return false, false
	}

	v.offs = 0
	switch {
	case header&brrEnd == 0:
		v.addr += brrBlockSize
		return false, false
	case header&brrLoop != 0:
		v.addr = dirEntry(ram, dir, v.srcn, dirLoop)
		return true, false
	}
	return true, true
}

const (
	dirStart = 0
	dirLoop  = 2
)

// dirEntry reads the start or loop address of sample srcn from the sample
// directory at dir.
func dirEntry(ram *[0x10000]uint8, dir uint16, srcn uint8, which uint16) uint16 {
	return hwio.Read16(ram[:], dir+uint16(srcn)*4+which)
}
