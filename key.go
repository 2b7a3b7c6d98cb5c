package resort

import "regexp"

// KeyRange is a half-open byte range [Start, End) of a line.
type KeyRange struct {
	Start int
	End   int
}

// Len returns the width of the range in bytes.
func (k KeyRange) Len() int { return k.End - k.Start }

// Of returns the substring of line covered by the range.
func (k KeyRange) Of(line string) string { return line[k.Start:k.End] }

// Locate returns the key range of line.
//
// Without an expression, or when it does not match, the whole line is the
// key. Otherwise capture group 1 is used when it took part in the match,
// falling back to the whole match.
func Locate(line string, re *regexp.Regexp) KeyRange {
	whole := KeyRange{Start: 0, End: len(line)}
	if re == nil {
		return whole
	}

	loc := re.FindStringSubmatchIndex(line)
	if loc == nil {
		return whole
	}

	if len(loc) >= 4 && loc[2] >= 0 {
		return KeyRange{Start: loc[2], End: loc[3]}
	}

	return KeyRange{Start: loc[0], End: loc[1]}
}
