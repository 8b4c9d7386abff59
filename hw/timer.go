package hw

import "spcplay/emu/log"

// Timer is one of the 3 programmable timers. Its 4-bit counter is brought up
// to date lazily, whenever the program accesses one of the timer registers.
type Timer struct {
	idx     int
	rate    int64 // CPU cycles per timer stage tick
	enabled bool
	divisor uint8 // 0 means 256
	counter uint8
	last    int64 // CPU time of the last synchronization
}

// Timer 0 and 1 run at 8kHz, timer 2 at 64kHz.
var timerRates = [3]int64{128, 128, 16}

func newTimer(idx int, enabled bool, divisor, counter uint8) Timer {
	return Timer{
		idx:     idx,
		rate:    timerRates[idx],
		enabled: enabled,
		divisor: divisor,
		counter: counter & 0x0F,
	}
}

func (t *Timer) div() int64 {
	if t.divisor == 0 {
		return 256
	}
	return int64(t.divisor)
}

// runUntil accumulates the ticks elapsed since the last synchronization. The
// synchronization point moves even when the timer is disabled.
func (t *Timer) runUntil(time int64) {
	if t.enabled {
		ticks := time/t.rate/t.div() - t.last/t.rate/t.div()
		t.counter = uint8((int64(t.counter) + ticks) & 0x0F)
	}
	t.last = time
}

func (t *Timer) SetEnabled(time int64, enabled bool) {
	if enabled == t.enabled {
		return
	}
	t.runUntil(time)
	t.enabled = enabled
	if enabled {
		t.counter = 0
	}
	log.ModTimer.DebugZ("timer enable").
		Int("timer", t.idx).
		Bool("enabled", enabled).
		Int64("time", time).
		End()
}

func (t *Timer) SetDivisor(time int64, divisor uint8) {
	if divisor == t.divisor {
		return
	}
	t.runUntil(time)
	t.divisor = divisor
}

// ReadCounter returns the counter value as of time and resets it.
func (t *Timer) ReadCounter(time int64) uint8 {
	t.runUntil(time)
	v := t.counter
	t.counter = 0
	return v
}
