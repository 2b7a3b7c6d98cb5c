package resort

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var errTimeRange = errors.New("time value out of range")

// parseTime reads a [[H:]M:]S[.N] key. N after the last '.' is a literal
// count of milliseconds, so "1.5" is one second and five milliseconds.
func parseTime(s string) (time.Duration, error) {
	for _, c := range s {
		if (c < '0' || c > '9') && c != ':' && c != '.' {
			return 0, fmt.Errorf("unexpected character '%c' while parsing time", c)
		}
	}

	rest := s

	var millis uint64
	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		n, err := parseUnsigned(rest[i+1:])
		if err != nil {
			return 0, fmt.Errorf("can not parse millis: '%s': %w", rest[i:], err)
		}
		millis, rest = n, rest[:i]
	}

	// Seconds exist only after a ':'; a lone field is read as minutes.
	var seconds uint64
	if i := strings.LastIndexByte(rest, ':'); i >= 0 {
		n, err := parseUnsigned(rest[i+1:])
		if err != nil {
			return 0, fmt.Errorf("can not parse seconds: '%s', already: %dms: %w", rest[i:], millis, err)
		}
		seconds, rest = n, rest[:i]
	}

	var minutes uint64
	if rest != "" {
		field, next := rest, ""
		if i := strings.LastIndexByte(rest, ':'); i >= 0 {
			field, next = rest[i+1:], rest[:i]
		}
		n, err := parseUnsigned(field)
		if err != nil {
			return 0, fmt.Errorf("can not parse minutes: '%s', already: %d.%d: %w", field, seconds, millis, err)
		}
		minutes, rest = n, next
	}

	var hours uint64
	if rest != "" {
		n, err := parseUnsigned(rest)
		if err != nil {
			return 0, fmt.Errorf("can not parse hours: '%s', already: %d:%d.%d: %w", rest, minutes, seconds, millis, err)
		}
		hours = n
	}

	return makeDuration(hours, minutes, seconds, millis)
}

// makeDuration sums the fields, failing when the total overflows time.Duration.
func makeDuration(hours, minutes, seconds, millis uint64) (time.Duration, error) {
	const maxMillis = uint64(math.MaxInt64 / int64(time.Millisecond))

	if millis > maxMillis {
		return 0, errTimeRange
	}

	total := millis
	for _, part := range [...]struct{ n, unit uint64 }{
		{hours, 3600 * 1000},
		{minutes, 60 * 1000},
		{seconds, 1000},
	} {
		if part.n > (maxMillis-total)/part.unit {
			return 0, errTimeRange
		}
		total += part.n * part.unit
	}

	return time.Duration(total) * time.Millisecond, nil
}
