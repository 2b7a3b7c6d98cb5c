package resort

import (
	"errors"
	"strconv"
)

var (
	errIntEmpty    = errors.New("cannot parse integer from empty string")
	errIntDigit    = errors.New("invalid digit found in string")
	errIntTooLarge = errors.New("number too large to fit in target type")
	errIntTooSmall = errors.New("number too small to fit in target type")
)

// parseNumeric reads the whole key as a base-10 signed 64-bit integer.
func parseNumeric(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, intError(s, err)
	}

	return n, nil
}

// parseUnsigned reads s as a base-10 unsigned 64-bit integer.
func parseUnsigned(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, intError(s, err)
	}

	return n, nil
}

// intError maps strconv failures to a short, input-free description.
func intError(s string, err error) error {
	switch {
	case s == "":
		return errIntEmpty
	case errors.Is(err, strconv.ErrRange) && s[0] == '-':
		return errIntTooSmall
	case errors.Is(err, strconv.ErrRange):
		return errIntTooLarge
	default:
		return errIntDigit
	}
}
