package spc_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"spcplay/spc"
	"spcplay/tests"
)

func testImage() *tests.Image {
	im := tests.SquareImage()
	im.A, im.X, im.Y = 0x12, 0x34, 0x56
	im.PSW = 0x02
	im.RAM[0xFFFF] = 0xAA
	im.Tag = spc.ID666{
		Song:     "Square",
		Game:     "Synthetic",
		Dumper:   "tests",
		Comments: "one voice",
		Date:     "10/19/2026",
		Author:   "nobody",
		Length:   90 * time.Second,
		Fade:     10 * time.Second,
		Emulator: 1,
	}
	return im
}

func TestReadFrom(t *testing.T) {
	im := testImage()

	b := im.Encode()
	var f spc.File
	n, err := f.ReadFrom(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if n != spc.Size {
		t.Errorf("read %d bytes, want %d", n, spc.Size)
	}
	if diff := cmp.Diff(im.Tag, f.Tag); diff != "" {
		t.Errorf("tag mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(im.Snapshot(), f.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen(t *testing.T) {
	path := tests.WriteSPC(t, testImage(), "square.spc")
	f, err := spc.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Tag.Song != "Square" || f.Tag.Length != 90*time.Second {
		t.Errorf("got song %q length %s", f.Tag.Song, f.Tag.Length)
	}
	if s := f.State(); s.PC != tests.ProgramAddr {
		t.Errorf("PC = %04x, want %04x", s.PC, tests.ProgramAddr)
	}
}

func TestStateIsACopy(t *testing.T) {
	var f spc.File
	if _, err := f.ReadFrom(bytes.NewReader(testImage().Encode())); err != nil {
		t.Fatal(err)
	}

	s := f.State()
	s.RAM[0x1234] = 0xFF
	if f.State().RAM[0x1234] == 0xFF {
		t.Error("modifying a returned state should not modify the file")
	}
}

func TestReadErrors(t *testing.T) {
	valid := testImage().Encode()

	badsig := bytes.Clone(valid)
	badsig[0] = 'X'

	version := bytes.Clone(valid)
	version[0x24] = 0x1F

	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{"empty", nil, spc.ErrSignature},
		{"bad signature", badsig, spc.ErrSignature},
		{"bad version", version, spc.ErrSignature},
		{"signature only", []byte(spc.Signature), spc.ErrTruncated},
		{"no DSP", valid[:0x10100], spc.ErrTruncated},
		{"minimum", valid[:spc.MinSize], nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f spc.File
			_, err := f.ReadFrom(bytes.NewReader(tt.buf))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadFrom() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBinaryTagNumbers(t *testing.T) {
	b := testImage().Encode()
	// Binary ID666 stores the length as a 24-bit integer.
	copy(b[0xA9:], []byte{0x5A, 0x00, 0x00})

	var f spc.File
	if _, err := f.ReadFrom(bytes.NewReader(b)); err != nil {
		t.Fatal(err)
	}
	if f.Tag.Length != 0 {
		t.Errorf("length = %s, want 0 for non-text content", f.Tag.Length)
	}
}

func TestRealFiles(t *testing.T) {
	for _, path := range tests.SPCFiles(t) {
		t.Run(path, func(t *testing.T) {
			f, err := spc.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			t.Logf("%+v", f.Tag)
		})
	}
}
