package resort

import (
	"cmp"

	"go.uber.org/zap"
)

// Line is an output line with the byte range of its sort key. Lines that
// were not sorted (head and tail) carry an empty range.
type Line struct {
	Text string
	Key  KeyRange
}

// entry is a buffered line, its parsed key and its push position.
type entry struct {
	key  sortKey
	line Line
	idx  int
}

// sortBuffer collects lines for one Mode and sorts them stably: equal keys
// keep push order whether or not the order is reversed.
type sortBuffer struct {
	entries []entry
	mode    Mode
	reverse bool
}

func newSortBuffer(mode Mode, reverse bool, sizeHint int) *sortBuffer {
	return &sortBuffer{
		entries: make([]entry, 0, sizeHint),
		mode:    mode,
		reverse: reverse,
	}
}

// push parses the key of line. lineNo is only used for error reporting.
func (b *sortBuffer) push(line Line, lineNo int) error {
	k, err := parseKey(b.mode, line.Key.Of(line.Text))
	if err != nil {
		return &KeyParseError{
			Err:    err,
			Line:   line.Text,
			Key:    line.Key,
			LineNo: lineNo,
			Mode:   b.mode,
		}
	}

	b.entries = append(b.entries, entry{key: k, line: line, idx: len(b.entries)})

	return nil
}

func (b *sortBuffer) compare(x, y entry) int {
	c := compareKeys(b.mode, &x.key, &y.key)
	if b.reverse {
		c = -c
	}

	if c != 0 {
		return c
	}

	return cmp.Compare(x.idx, y.idx)
}

// sorted sorts the buffer and returns the lines in order.
func (b *sortBuffer) sorted(threshold int, log *zap.Logger) []Line {
	chunks := parallelSortFunc(b.entries, b.compare, threshold)
	log.Debug("sorted body",
		zap.Stringer("mode", b.mode),
		zap.Bool("reverse", b.reverse),
		zap.Int("lines", len(b.entries)),
		zap.Int("chunks", chunks))

	out := make([]Line, len(b.entries))
	for i := range b.entries {
		out[i] = b.entries[i].line
	}

	return out
}
