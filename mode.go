package resort

import (
	"cmp"
	"strings"
	"time"

	sv "github.com/woozymasta/semver"
)

// sortKey is the parsed key of one line. Which field is set depends on the
// Mode it was parsed with: str for ModeString, ver for ModeVersion and num
// for the integer-like modes (numeric value, month index, milliseconds).
type sortKey struct {
	ver sv.Semver
	str string
	num int64
}

// parseKey decodes the key substring s according to m.
func parseKey(m Mode, s string) (sortKey, error) {
	switch m {
	case ModeNumeric:
		n, err := parseNumeric(s)
		return sortKey{num: n}, err

	case ModeVersion:
		v, err := parseVersion(s)
		return sortKey{ver: v}, err

	case ModeMonth:
		n, err := parseMonth(s)
		return sortKey{num: n}, err

	case ModeTime:
		d, err := parseTime(s)
		return sortKey{num: int64(d / time.Millisecond)}, err

	default:
		return sortKey{str: s}, nil
	}
}

// compareKeys orders two keys parsed with the same Mode.
func compareKeys(m Mode, a, b *sortKey) int {
	switch m {
	case ModeNumeric, ModeMonth, ModeTime:
		return cmp.Compare(a.num, b.num)

	case ModeVersion:
		return a.ver.Compare(b.ver)

	default:
		return strings.Compare(a.str, b.str)
	}
}
