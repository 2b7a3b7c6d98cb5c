package resort

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"go.uber.org/zap"
)

// maxLineSize bounds a single input line read by Run.
const maxLineSize = 1 << 30

// Run reads every line of r, sorts them according to opt and writes the
// result to w in a single write. Nothing is written when reading or
// sorting fails. A consumer that stops reading (broken pipe) is not an
// error.
//
// Lines are split on '\n'; a trailing "\r" is dropped with it.
func Run(r io.Reader, w io.Writer, opt Options) error {
	opt = opt.normalized()

	p := newPipeline(opt)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		if err := p.add(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	lines, err := p.finish()
	if err != nil {
		return err
	}

	out := Render(lines, opt)
	if _, err := w.Write(out); err != nil {
		if IsBrokenPipe(err) {
			opt.Logger.Debug("output closed early", zap.Error(err))
			return nil
		}
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// Sort orders lines according to opt. The result holds head lines, the
// sorted body and tail lines, deduplicated when opt.Unique is set.
func Sort(lines []string, opt Options) ([]Line, error) {
	opt = opt.normalized()

	p := newPipeline(opt)
	for _, l := range lines {
		if err := p.add(l); err != nil {
			return nil, err
		}
	}

	return p.finish()
}

// pipeline holds the state of a single sort pass.
type pipeline struct {
	opt   Options
	head  []Line
	body  []Line
	total uint64
	count int
}

func newPipeline(opt Options) *pipeline {
	return &pipeline{opt: opt}
}

// add accounts for one input line and classifies it as head or body.
func (p *pipeline) add(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}

	p.total += uint64(len(text))
	if !p.opt.MaxBuffer.Allows(p.total) {
		return &BufferSizeError{Max: p.opt.MaxBuffer}
	}
	p.count++

	if len(p.head) < p.opt.Head {
		p.head = append(p.head, Line{Text: text})
		return nil
	}

	p.body = append(p.body, Line{Text: text, Key: Locate(text, p.opt.Expression)})

	return nil
}

// finish splits off the tail, sorts the body and reassembles the output.
func (p *pipeline) finish() ([]Line, error) {
	body, tail := splitTail(p.body, p.opt.Tail)

	p.opt.Logger.Debug("input read",
		zap.Int("lines", p.count),
		zap.Uint64("bytes", p.total),
		zap.Int("head", len(p.head)),
		zap.Int("body", len(body)),
		zap.Int("tail", len(tail)))

	buf := newSortBuffer(p.opt.Mode, p.opt.Reverse, len(body))
	for i, l := range body {
		if err := buf.push(l, len(p.head)+i); err != nil {
			return nil, err
		}
	}

	out := make([]Line, 0, p.count)
	out = append(out, p.head...)
	out = append(out, buf.sorted(p.opt.ParallelThreshold, p.opt.Logger)...)
	out = append(out, tail...)

	if p.opt.Unique {
		out = dedupe(out)
	}

	return out, nil
}

// splitTail moves the last n lines of body into the tail and clears their
// keys. A tail longer than the body takes all of it.
func splitTail(body []Line, n int) ([]Line, []Line) {
	if n <= 0 {
		return body, nil
	}

	cut := max(len(body)-n, 0)

	tail := make([]Line, 0, len(body)-cut)
	for _, l := range body[cut:] {
		tail = append(tail, Line{Text: l.Text})
	}

	return body[:cut], tail
}

// dedupe drops every line whose text equals the previously kept line.
func dedupe(lines []Line) []Line {
	out := lines[:0]
	for i, l := range lines {
		if i > 0 && l.Text == out[len(out)-1].Text {
			continue
		}
		out = append(out, l)
	}

	return out
}
