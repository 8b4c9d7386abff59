// Package tests provides helpers to build sound programs and SPC files for
// tests.
package tests

import (
	"spcplay/hw/snapshot"
	"spcplay/spc"
)

// Default locations used by Image.
const (
	ProgramAddr = 0x0200
	DirAddr     = 0x0300
	SampleAddr  = 0x0400
)

// DSP registers.
const (
	RegMVOLL = 0x0C
	RegMVOLR = 0x1C
	RegKON   = 0x4C
	RegKOFF  = 0x5C
	RegFLG   = 0x6C
	RegENDX  = 0x7C
	RegDIR   = 0x5D
)

// Voice register offsets.
const (
	VRegVOLL   = 0x0
	VRegVOLR   = 0x1
	VRegPITCHL = 0x2
	VRegPITCHH = 0x3
	VRegSRCN   = 0x4
	VRegADSR1  = 0x5
	VRegADSR2  = 0x6
	VRegGAIN   = 0x7
	VRegENVX   = 0x8
	VRegOUTX   = 0x9
)

// Image is a sound module snapshot under construction. The zero value isn't
// usable, call NewImage.
type Image struct {
	snapshot.State
	Tag spc.ID666

	next uint16 // where the next sample goes
}

// NewImage returns an image whose program sleeps forever, with the sample
// directory at DirAddr, both master volumes at 0x7F and all voices silent.
func NewImage() *Image {
	im := &Image{next: SampleAddr}
	im.PC = ProgramAddr
	im.SP = 0xEF
	im.SetProgram(ProgramAddr, 0xEF) // SLEEP
	im.DSP[RegDIR] = DirAddr >> 8
	im.DSP[RegMVOLL] = 0x7F
	im.DSP[RegMVOLR] = 0x7F
	im.DSP[RegFLG] = 0x20 // echo writes disabled
	return im
}

// SetProgram copies prog at addr.
func (im *Image) SetProgram(addr uint16, prog ...uint8) {
	copy(im.RAM[addr:], prog)
}

// AddSample stores a BRR sample made of blocks, registers it as srcn in the
// sample directory and returns its address. The sample loops to the block at
// index loop.
func (im *Image) AddSample(srcn uint8, loop int, blocks ...[9]uint8) uint16 {
	start := im.next
	for _, b := range blocks {
		copy(im.RAM[im.next:], b[:])
		im.next += 9
	}

	loopAddr := start + uint16(loop)*9
	entry := DirAddr + uint16(srcn)*4
	im.RAM[entry+0] = uint8(start)
	im.RAM[entry+1] = uint8(start >> 8)
	im.RAM[entry+2] = uint8(loopAddr)
	im.RAM[entry+3] = uint8(loopAddr >> 8)
	return start
}

// SetVoice configures voice v to play sample srcn at pitch with ADSR
// envelope adsr1/adsr2 and volume vol on both channels. It doesn't key on.
func (im *Image) SetVoice(v int, srcn uint8, pitch uint16, adsr1, adsr2 uint8, vol int8) {
	base := v * 0x10
	im.DSP[base+VRegVOLL] = uint8(vol)
	im.DSP[base+VRegVOLR] = uint8(vol)
	im.DSP[base+VRegPITCHL] = uint8(pitch)
	im.DSP[base+VRegPITCHH] = uint8(pitch>>8) & 0x3F
	im.DSP[base+VRegSRCN] = srcn
	im.DSP[base+VRegADSR1] = adsr1
	im.DSP[base+VRegADSR2] = adsr2
}

// KeyOn sets the key-on bit of voice v.
func (im *Image) KeyOn(v int) {
	im.DSP[RegKON] |= 1 << v
}

// Snapshot returns a copy of the machine state.
func (im *Image) Snapshot() *snapshot.State {
	return im.Clone()
}

// BRR block header flags.
const (
	BlockEnd  = 0x01
	BlockLoop = 0x02
)

// Block returns a BRR block with filter 0, the given shift and flags and 16
// samples.
func Block(shift, flags uint8, samples [16]int8) [9]uint8 {
	var b [9]uint8
	b[0] = shift<<4 | flags
	for i := range 8 {
		hi := uint8(samples[2*i]) & 0x0F
		lo := uint8(samples[2*i+1]) & 0x0F
		b[1+i] = hi<<4 | lo
	}
	return b
}

// SquareBlock returns a looping BRR block holding one period of a square
// wave.
func SquareBlock() [9]uint8 {
	var s [16]int8
	for i := range s {
		s[i] = 7
		if i >= 8 {
			s[i] = -7
		}
	}
	return Block(11, BlockEnd|BlockLoop, s)
}

// SquareImage returns an image playing a square wave on voice 0, with the
// fastest attack and a constant sustain.
func SquareImage() *Image {
	im := NewImage()
	im.AddSample(0, 0, SquareBlock())
	im.SetVoice(0, 0, 0x1000, 0xFF, 0xE0, 0x7F)
	im.KeyOn(0)
	return im
}
