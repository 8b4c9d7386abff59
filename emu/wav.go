package emu

import (
	"bufio"
	"encoding/binary"
	"io"

	"spcplay/hw"
)

const wavHeaderSize = 44

// WAVWriter is an Output writing 16-bit stereo PCM to a WAV file. The sizes
// in the header are patched when the writer is closed.
type WAVWriter struct {
	ws     io.WriteSeeker
	w      *bufio.Writer
	rate   int
	rs     *Resampler // nil when writing at the DSP rate
	outbuf []int16
	ndata  uint32 // bytes of sample data written
}

// NewWAVWriter writes a WAV header to ws and returns a writer producing
// samples at the given rate.
func NewWAVWriter(ws io.WriteSeeker, rate int) (*WAVWriter, error) {
	ww := &WAVWriter{
		ws:   ws,
		w:    bufio.NewWriter(ws),
		rate: rate,
	}
	if rate != hw.SampleRate {
		ww.rs = NewResampler(rate)
	}
	if err := ww.writeHeader(); err != nil {
		return nil, err
	}
	return ww, nil
}

func (ww *WAVWriter) writeHeader() error {
	var hdr [wavHeaderSize]byte
	le := binary.LittleEndian

	copy(hdr[0:], "RIFF")
	le.PutUint32(hdr[4:], 36+ww.ndata)
	copy(hdr[8:], "WAVE")

	copy(hdr[12:], "fmt ")
	le.PutUint32(hdr[16:], 16)  // chunk size
	le.PutUint16(hdr[20:], 1)   // PCM
	le.PutUint16(hdr[22:], audioChannels)
	le.PutUint32(hdr[24:], uint32(ww.rate))
	le.PutUint32(hdr[28:], uint32(ww.rate*bytesPerFrame))
	le.PutUint16(hdr[32:], bytesPerFrame)
	le.PutUint16(hdr[34:], 16) // bits per sample

	copy(hdr[36:], "data")
	le.PutUint32(hdr[40:], ww.ndata)

	_, err := ww.w.Write(hdr[:])
	return err
}

func (ww *WAVWriter) Write(samples []hw.Sample) error {
	if ww.rs != nil {
		ww.outbuf = ww.rs.Resample(ww.outbuf[:0], samples)
	} else {
		ww.outbuf = interleave(ww.outbuf[:0], samples)
	}
	if err := binary.Write(ww.w, binary.LittleEndian, ww.outbuf); err != nil {
		return err
	}
	ww.ndata += uint32(len(ww.outbuf) * 2)
	return nil
}

// Close flushes the samples and rewrites the header. It doesn't close the
// underlying writer.
func (ww *WAVWriter) Close() error {
	if err := ww.w.Flush(); err != nil {
		return err
	}
	if _, err := ww.ws.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := ww.writeHeader(); err != nil {
		return err
	}
	if err := ww.w.Flush(); err != nil {
		return err
	}
	_, err := ww.ws.Seek(0, io.SeekEnd)
	return err
}
