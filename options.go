package resort

import (
	"regexp"

	"go.uber.org/zap"
)

// DefaultParallelThreshold is the body size from which sorting is split
// across goroutines.
const DefaultParallelThreshold = 1 << 14

// Options configures key extraction, ordering and rendering.
type Options struct {
	// Expression locates the sort key inside each line. Capture group 1 is
	// used when it participates in the match, otherwise the whole match.
	// Nil means the whole line is the key.
	Expression *regexp.Regexp

	// Logger receives debug events. Nil disables logging.
	Logger *zap.Logger

	// Colors brackets the key substring when Color is ColorAlways.
	Colors Colors

	// Mode selects how keys are parsed and compared.
	Mode Mode

	// Color controls key highlighting. ColorAuto must be resolved by the
	// caller with ColorWhen.Resolve; an unresolved ColorAuto renders plain.
	Color ColorWhen

	// Head is the number of leading lines kept in place.
	Head int

	// Tail is the number of trailing lines kept in place.
	Tail int

	// MaxBuffer caps the total bytes of lines read. Zero is unlimited.
	MaxBuffer MaxBuffer

	// ParallelThreshold is the body size from which sorting runs in
	// parallel. Zero means DefaultParallelThreshold, negative disables it.
	ParallelThreshold int

	// Reverse inverts key comparison. Equal keys keep input order.
	Reverse bool

	// Unique drops a line equal to the previously written line.
	Unique bool
}

// normalized returns a copy with implicit defaults applied.
func (o Options) normalized() Options {
	out := o

	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}

	if out.Head < 0 {
		out.Head = 0
	}

	if out.Tail < 0 {
		out.Tail = 0
	}

	if out.ParallelThreshold == 0 {
		out.ParallelThreshold = DefaultParallelThreshold
	}

	// Without a terminal to ask, auto means plain output.
	if out.Color == ColorAuto {
		out.Color = ColorNever
	}

	return out
}

// Mode selects the key parser and ordering.
type Mode uint8

const (
	// ModeString compares keys byte-wise.
	ModeString Mode = iota
	// ModeNumeric compares keys as signed 64-bit integers.
	ModeNumeric
	// ModeVersion compares keys by SemVer precedence.
	ModeVersion
	// ModeMonth compares keys as calendar month names.
	ModeMonth
	// ModeTime compares keys as [[H:]M:]S[.millis] durations.
	ModeTime
)

// String returns a stable textual representation for Mode.
func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeVersion:
		return "version"
	case ModeMonth:
		return "month"
	case ModeTime:
		return "time"
	default:
		return "string"
	}
}

// ParseMode maps a word to Mode (case-insensitive):
//
//	"month", "numeric", "string", "time", "version"
func ParseMode(s string) (Mode, error) {
	switch toTok(s) {
	case "month":
		return ModeMonth, nil
	case "numeric":
		return ModeNumeric, nil
	case "string":
		return ModeString, nil
	case "time":
		return ModeTime, nil
	case "version":
		return ModeVersion, nil
	default:
		return ModeString, &ConfigError{Option: "according-to", Value: s}
	}
}

// ColorWhen controls when the key substring is highlighted.
type ColorWhen uint8

const (
	// ColorNever writes lines verbatim.
	ColorNever ColorWhen = iota
	// ColorAlways wraps the key with Colors markers.
	ColorAlways
	// ColorAuto highlights only when the output is a terminal.
	ColorAuto
)

// String returns a stable textual representation for ColorWhen.
func (c ColorWhen) String() string {
	switch c {
	case ColorAlways:
		return "always"
	case ColorAuto:
		return "auto"
	default:
		return "never"
	}
}

// Resolve turns ColorAuto into ColorAlways or ColorNever.
func (c ColorWhen) Resolve(isTerminal bool) ColorWhen {
	if c != ColorAuto {
		return c
	}

	if isTerminal {
		return ColorAlways
	}

	return ColorNever
}

// ParseColorWhen maps "always", "never" or "auto" to ColorWhen.
func ParseColorWhen(s string) (ColorWhen, error) {
	switch toTok(s) {
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	case "auto":
		return ColorAuto, nil
	default:
		return ColorNever, &ConfigError{Option: "color", Value: s}
	}
}

// Colors holds the markers written around a highlighted key.
type Colors struct {
	Start string
	End   string
}

// CompileExpression compiles the key expression. An empty string yields nil.
func CompileExpression(s string) (*regexp.Regexp, error) {
	if s == "" {
		return nil, nil
	}

	re, err := regexp.Compile(s)
	if err != nil {
		return nil, &ConfigError{Option: "exp", Value: s, Err: err}
	}

	return re, nil
}
