package hw

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is wrapped by errors reporting an opcode the CPU
	// cannot execute.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrUnsupported is wrapped by errors reporting a hardware feature that
	// is not emulated.
	ErrUnsupported = errors.New("unsupported feature")
)

// OpcodeError reports an opcode without implementation. The CPU stops for
// good when it encounters one.
type OpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02x at pc=0x%04x", e.Opcode, e.PC)
}

func (e *OpcodeError) Unwrap() error { return ErrUnknownOpcode }

// UnsupportedError reports a voice configured to use a feature that is not
// emulated.
type UnsupportedError struct {
	Feature string
	Voice   int
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("voice %d: %s is not supported", e.Voice, e.Feature)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

func isUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}
