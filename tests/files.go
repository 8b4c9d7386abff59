package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"spcplay/spc"
)

// SPC file layout.
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
	offExtraRAM = 0x101C0
)

// Encode returns im as a complete SPC file, with a text ID666 tag.
func (im *Image) Encode() []byte {
	buf := make([]byte, spc.Size)
	copy(buf, spc.Signature)
	buf[offPC] = uint8(im.PC)
	buf[offPC+1] = uint8(im.PC >> 8)
	buf[offA] = im.A
	buf[offX] = im.X
	buf[offY] = im.Y
	buf[offPSW] = im.PSW
	buf[offSP] = im.SP
	encodeTag(buf[offTag:offRAM], &im.Tag)
	copy(buf[offRAM:], im.RAM[:])
	copy(buf[offDSP:], im.DSP[:])
	// The extra RAM region mirrors the top 64 bytes of RAM.
	copy(buf[offExtraRAM:], im.RAM[0xFFC0:])
	return buf
}

func encodeTag(tag []byte, t *spc.ID666) {
	put := func(off, n int, s string) { copy(tag[off:off+n], s) }

	put(0x00, 32, t.Song)
	put(0x20, 32, t.Game)
	put(0x40, 16, t.Dumper)
	put(0x50, 32, t.Comments)
	put(0x70, 11, t.Date)
	put(0x83, 32, t.Author)
	if t.Length > 0 {
		put(0x7B, 3, fmt.Sprintf("%03d", min(int(t.Length/time.Second), 999)))
	}
	if t.Fade > 0 {
		put(0x7E, 5, fmt.Sprintf("%05d", min(int(t.Fade/time.Millisecond), 99999)))
	}
	tag[0xA3] = t.Muted
	tag[0xA4] = t.Emulator
}

// WriteSPC encodes im as an SPC file in a temporary directory and returns its
// path.
func WriteSPC(tb testing.TB, im *Image, name string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, im.Encode(), 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}

// SPCFiles returns the real SPC files found in the directory set by
// SPCPLAY_TESTDATA, or in tests/spc. The test is skipped if there are none.
func SPCFiles(tb testing.TB) []string {
	dir := os.Getenv("SPCPLAY_TESTDATA")
	if dir == "" {
		_, b, _, _ := runtime.Caller(0)
		dir = filepath.Join(filepath.Dir(b), "spc")
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.spc"))
	if err != nil {
		tb.Fatal(err)
	}
	if len(paths) == 0 {
		tb.Skipf("no SPC files in %s", dir)
	}
	return paths
}
