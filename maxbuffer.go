package resort

import (
	"errors"
	"math/bits"
	"strconv"
	"strings"
)

var errSizeOverflow = errors.New("size overflows 64-bit integer")

// MaxBuffer is a byte limit on the total length of lines read.
// Zero means unlimited.
type MaxBuffer uint64

// Allows reports whether total is within the limit.
func (m MaxBuffer) Allows(total uint64) bool {
	return m == 0 || total <= uint64(m)
}

// String returns the limit in bytes.
func (m MaxBuffer) String() string {
	return strconv.FormatUint(uint64(m), 10)
}

// ParseMaxBuffer parses a size such as "512", "64k", "10MB" or "1Gb".
// Units K, M, G, T and P are powers of 1024 and case-insensitive; an
// optional trailing b/B is ignored.
func ParseMaxBuffer(s string) (MaxBuffer, error) {
	m := maxBufferRe.FindStringSubmatch(s)
	if m == nil {
		return 0, &ConfigError{Option: "max-buffer", Value: s}
	}

	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = errSizeOverflow
		}
		return 0, &ConfigError{Option: "max-buffer", Value: s, Err: err}
	}

	hi, lo := bits.Mul64(n, unitMultiplier(m[2]))
	if hi != 0 {
		return 0, &ConfigError{Option: "max-buffer", Value: s, Err: errSizeOverflow}
	}

	return MaxBuffer(lo), nil
}

func unitMultiplier(unit string) uint64 {
	switch strings.ToLower(unit) {
	case "k":
		return 1 << 10
	case "m":
		return 1 << 20
	case "g":
		return 1 << 30
	case "t":
		return 1 << 40
	case "p":
		return 1 << 50
	default:
		return 1
	}
}
