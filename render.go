package resort

import "bytes"

// Render formats lines as newline-terminated text. With opt.Color set to
// ColorAlways the key of each line is wrapped in opt.Colors markers; empty
// keys are written without markers.
func Render(lines []Line, opt Options) []byte {
	color := opt.Color == ColorAlways

	size := 0
	for _, l := range lines {
		size += len(l.Text) + 1
		if color {
			size += len(opt.Colors.Start) + len(opt.Colors.End)
		}
	}

	var b bytes.Buffer
	b.Grow(size)
	for _, l := range lines {
		if color && l.Key.Len() > 0 {
			b.WriteString(l.Text[:l.Key.Start])
			b.WriteString(opt.Colors.Start)
			b.WriteString(l.Key.Of(l.Text))
			b.WriteString(opt.Colors.End)
			b.WriteString(l.Text[l.Key.End:])
		} else {
			b.WriteString(l.Text)
		}
		b.WriteByte('\n')
	}

	return b.Bytes()
}
