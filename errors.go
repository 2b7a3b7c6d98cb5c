package resort

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

var (
	// ErrInvalidUTF8 is returned when the input is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

	// ErrBufferSize matches every *BufferSizeError.
	ErrBufferSize = errors.New("over max buffer size")
)

// BufferSizeError reports that the input grew past Options.MaxBuffer.
type BufferSizeError struct {
	Max MaxBuffer
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("over max buffer size: %d", uint64(e.Max))
}

// Is reports ErrBufferSize as a match.
func (e *BufferSizeError) Is(target error) bool {
	return target == ErrBufferSize
}

// KeyParseError reports a key that the active Mode cannot parse.
type KeyParseError struct {
	Err  error
	Line string
	Key  KeyRange
	// LineNo is the 0-based position of Line in the input.
	LineNo int
	Mode   Mode
}

func (e *KeyParseError) Error() string {
	return fmt.Sprintf("(%d,%d):'%s': %v", e.Key.Start, e.Key.End, e.Line, e.Err)
}

func (e *KeyParseError) Unwrap() error { return e.Err }

// ConfigError reports a malformed option value.
type ConfigError struct {
	Err    error
	Option string
	Value  string
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: can not parse '%s': %v", e.Option, e.Value, e.Err)
	}

	return fmt.Sprintf("%s: can not parse '%s'", e.Option, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IsBrokenPipe reports whether err means the output consumer has gone away.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}
