// Package spc implements a reader for SPC files, snapshots of the SNES sound
// module taken while a game plays music.
package spc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"spcplay/hw/snapshot"
)

// Signature starts every SPC file, it includes the minor version (30).
const Signature = "SNES-SPC700 Sound File Data v0.30\x1A\x1A\x1A\x1E"

var (
	ErrSignature = errors.New("invalid SPC signature")
	ErrTruncated = errors.New("truncated SPC file")
)

// File layout.
const (
	offPC       = 0x25
	offA        = 0x27
	offX        = 0x28
	offY        = 0x29
	offPSW      = 0x2A
	offSP       = 0x2B
	offTag      = 0x2E
	offRAM      = 0x100
	offDSP      = 0x10100
	offUnused   = 0x10180
	offExtraRAM = 0x101C0

	// MinSize is the size of a file holding everything up to the DSP
	// registers.
	MinSize = offUnused

	// Size of a complete file, extra RAM included.
	Size = offExtraRAM + 0x40
)

// File is the content of an SPC file.
type File struct {
	Tag ID666

	state snapshot.State
}

// Open reads the SPC file at path.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	spc := new(File)
	if _, err := spc.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spc, nil
}

// ReadFrom implements io.ReaderFrom.
func (f *File) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return int64(len(buf)), err
	}
	return int64(len(buf)), f.decode(buf)
}

func (f *File) decode(buf []byte) error {
	if !bytes.HasPrefix(buf, []byte(Signature)) {
		return ErrSignature
	}
	if len(buf) < MinSize {
		return fmt.Errorf("%w: %d bytes, need %d", ErrTruncated, len(buf), MinSize)
	}

	s := &f.state
	s.PC = uint16(buf[offPC]) | uint16(buf[offPC+1])<<8
	s.A = buf[offA]
	s.X = buf[offX]
	s.Y = buf[offY]
	s.PSW = buf[offPSW]
	s.SP = buf[offSP]
	copy(s.RAM[:], buf[offRAM:offRAM+len(s.RAM)])
	copy(s.DSP[:], buf[offDSP:offDSP+len(s.DSP)])
	f.Tag.decode(buf[offTag:offRAM])
	return nil
}

// State returns a copy of the machine state stored in f.
func (f *File) State() *snapshot.State {
	return f.state.Clone()
}

// ID666 is the tag describing the song held in an SPC file.
type ID666 struct {
	Song     string
	Game     string
	Dumper   string
	Comments string
	Date     string
	Author   string

	// Length is the play time before fading out, Fade the duration of the
	// fade. Zero when unspecified.
	Length time.Duration
	Fade   time.Duration

	Muted    uint8 // channels disabled by default
	Emulator uint8 // emulator used to dump the file
}

// Tag fields, relative to the tag start.
type tagField struct{ off, len int }

var (
	tagSong     = tagField{0x00, 32}
	tagGame     = tagField{0x20, 32}
	tagDumper   = tagField{0x40, 16}
	tagComments = tagField{0x50, 32}
	tagDate     = tagField{0x70, 11}
	tagLength   = tagField{0x7B, 3}
	tagFade     = tagField{0x7E, 5}
	tagAuthor   = tagField{0x83, 32}
	tagMuted    = tagField{0xA3, 1}
	tagEmulator = tagField{0xA4, 1}
)

func (tf tagField) bytes(tag []byte) []byte {
	return tag[tf.off : tf.off+tf.len]
}

func (tf tagField) text(tag []byte) string {
	b := tf.bytes(tag)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(bytes.TrimSpace(b))
}

// number parses a text field holding ASCII digits. It returns 0 for empty or
// binary content.
func (tf tagField) number(tag []byte) int {
	n, err := strconv.Atoi(tf.text(tag))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (t *ID666) decode(tag []byte) {
	t.Song = tagSong.text(tag)
	t.Game = tagGame.text(tag)
	t.Dumper = tagDumper.text(tag)
	t.Comments = tagComments.text(tag)
	t.Date = tagDate.text(tag)
	t.Author = tagAuthor.text(tag)
	t.Length = time.Duration(tagLength.number(tag)) * time.Second
	t.Fade = time.Duration(tagFade.number(tag)) * time.Millisecond
	t.Muted = tag[tagMuted.off]
	t.Emulator = tag[tagEmulator.off]
}
