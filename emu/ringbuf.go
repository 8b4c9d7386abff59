package emu

import (
	"io"
	"sync"
)

// ringBuffer is a fixed size byte FIFO shared by a producer and a consumer.
// Write blocks while the buffer is full, Read blocks while it is empty.
type ringBuffer struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    []byte
	rpos   int
	count  int
	closed bool
}

func newRingBuffer(size int) *ringBuffer {
	rb := &ringBuffer{buf: make([]byte, size)}
	rb.cond = sync.NewCond(&rb.mu)
	return rb
}

func (rb *ringBuffer) Write(p []byte) (int, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	n := 0
	for len(p) > 0 {
		for rb.count == len(rb.buf) && !rb.closed {
			rb.cond.Wait()
		}
		if rb.closed {
			return n, io.ErrClosedPipe
		}

		wpos := (rb.rpos + rb.count) % len(rb.buf)
		end := len(rb.buf)
		if wpos < rb.rpos {
			end = rb.rpos
		}
		// Free space may wrap around, in which case the rest is written
		// on the next iteration.
		nw := copy(rb.buf[wpos:end], p)
		rb.count += nw
		n += nw
		p = p[nw:]
		rb.cond.Broadcast()
	}
	return n, nil
}

// Read implements io.Reader. It returns io.EOF once the buffer is closed and
// drained.
func (rb *ringBuffer) Read(p []byte) (int, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	for rb.count == 0 {
		if rb.closed {
			return 0, io.EOF
		}
		rb.cond.Wait()
	}

	n := min(len(p), rb.count)
	first := copy(p[:n], rb.buf[rb.rpos:])
	copy(p[first:n], rb.buf[:n-first])
	rb.rpos = (rb.rpos + n) % len(rb.buf)
	rb.count -= n
	rb.cond.Broadcast()
	return n, nil
}

func (rb *ringBuffer) Buffered() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

func (rb *ringBuffer) Close() error {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.closed = true
	rb.cond.Broadcast()
	return nil
}
