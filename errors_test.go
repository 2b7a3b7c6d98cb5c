package resort

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"
)

var errBrokenPipe = &os.PathError{Op: "write", Path: "|1", Err: syscall.EPIPE}

func TestIsBrokenPipe(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want bool
	}{
		{errBrokenPipe, true},
		{syscall.EPIPE, true},
		{io.ErrClosedPipe, true},
		{fmt.Errorf("wrapped: %w", os.ErrClosed), true},
		{nil, false},
		{io.EOF, false},
		{syscall.ENOSPC, false},
	}

	for _, tc := range cases {
		if got := IsBrokenPipe(tc.err); got != tc.want {
			t.Fatalf("IsBrokenPipe(%v) = %v; want %v", tc.err, got, tc.want)
		}
	}
}

func TestRun_ClosedPipe(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	_ = pr.Close()

	if err := Run(strings.NewReader("b\na\n"), pw, Options{}); err != nil {
		t.Fatalf("Run into closed pipe: %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{&BufferSizeError{Max: 1024}, "over max buffer size: 1024"},
		{&ConfigError{Option: "color", Value: "sometimes"}, "color: can not parse 'sometimes'"},
		{&ConfigError{Option: "exp", Value: "(", Err: errors.New("missing )")}, "exp: can not parse '(': missing )"},
		{
			&KeyParseError{Err: errInvalidMonth, Line: "x:Foo", Key: KeyRange{2, 5}, Mode: ModeMonth},
			"(2,5):'x:Foo': invalid month strings",
		},
	}

	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error() = %q; want %q", got, tc.want)
		}
	}

	if !errors.Is(&BufferSizeError{Max: 1}, ErrBufferSize) {
		t.Fatalf("BufferSizeError does not match ErrBufferSize")
	}

	if errors.Is(ErrInvalidUTF8, ErrBufferSize) {
		t.Fatalf("ErrInvalidUTF8 matches ErrBufferSize")
	}
}
