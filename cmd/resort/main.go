/*
Package main is the resort cli tool: it sorts lines of text read from
stdin, optionally by a key located with a regular expression.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/woozymasta/resort"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const programName = "resort"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type Options struct {
	// betteralign:ignore

	// Ordering
	OptionsOrdering OptionsOrdering `group:"Ordering options"`
	// Key, output and limits
	OptionsOther OptionsOther `group:"Other options"`
	// Highlight markers
	OptionsEnv OptionsEnv `group:"Environments"`
	// Help, version and x options
	OptionsInfo OptionsInfo `group:"Info options"`
}

type OptionsOrdering struct {
	AccordingTo string `long:"according-to" value-name:"word" description:"sort according to <word>: month, numeric, string, time, version" default:"string"`
	Head        uint   `short:"h" long:"head" value-name:"num" description:"unsort the first <num> lines"`
	Tail        uint   `short:"t" long:"tail" value-name:"num" description:"unsort the last <num> lines"`
	Reverse     bool   `short:"r" long:"reverse" description:"reverse the result of comparisons"`
}

type OptionsOther struct {
	Color     string `long:"color" value-name:"when" description:"use markers to highlight the matching strings: always, never, auto" default:"never"`
	Exp       string `short:"e" long:"exp" value-name:"exp" description:"regular expression, sort by the entire match or its first capture"`
	MaxBuffer string `long:"max-buffer" value-name:"size" description:"max total input size, e.g. 512, 64k, 10M (0 = unlimited)" default:"0"`
	Unique    bool   `short:"u" long:"unique" description:"output only the first line of an equal run"`
}

type OptionsEnv struct {
	ColorSeqStart string `long:"color-seq-start" env:"RESORT_COLOR_SEQ_ST" value-name:"seq" description:"color start sequence specified by ansi"`
	ColorSeqEnd   string `long:"color-seq-end" env:"RESORT_COLOR_SEQ_ED" value-name:"seq" description:"color end sequence specified by ansi"`
}

type OptionsInfo struct {
	X       []string `short:"X" value-name:"x-option" description:"x options, try -X help"`
	Help    bool     `short:"H" long:"help" description:"display this help and exit"`
	Version bool     `short:"V" long:"version" description:"display version information and exit"`
}

const examplesText = `
Examples:
  This sort via utf-8 code:
    cat file1.txt | resort
  This sort via 1st chunk of numeric character according to numeric:
    cat file1.txt | resort -e "[0-9]+" --according-to numeric
  This sort via 1st capture of month character according to month:
    cat file1.txt | resort -e ":([^:]+)$" --according-to month
  This sort via 1st capture of version character according to version:
    cat file1.txt | resort -e "[^:]+:[^:]+:([0-9.]+):" --according-to version
  This sort via 1st capture of time character according to time:
    cat file1.txt | resort -e "([0-9]+:([0-9]+:)?[0-9]+(.[0-9]+)?)" --according-to time
`

const xHelpText = `Options:
  -X help                  display x options and exit
  -X go-version-info       display go version info and exit
  -X debug                 write debug logs to stderr
`

func main() {
	// Report EPIPE on stdout as a write error instead of dying from SIGPIPE.
	signal.Ignore(syscall.SIGPIPE)

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opt Options
	parser := flags.NewParser(&opt, flags.PassDoubleDash)
	parser.Name = programName
	parser.Usage = "[options]"
	parser.LongDescription = "sort lines of text."

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return fail(stderr, err)
	}

	switch {
	case opt.OptionsInfo.Help:
		fmt.Fprintln(stdout, versionMessage())
		fmt.Fprintln(stdout)
		parser.WriteHelp(stdout)
		fmt.Fprint(stdout, examplesText)
		return 0

	case opt.OptionsInfo.Version:
		fmt.Fprintln(stdout, versionMessage())
		return 0
	}

	debugLog := false
	for _, x := range opt.OptionsInfo.X {
		switch strings.TrimSpace(x) {
		case "help":
			fmt.Fprint(stdout, xHelpText)
			return 0
		case "go-version-info":
			fmt.Fprintln(stdout, goVersionInfo())
			return 0
		case "debug":
			debugLog = true
		default:
			return fail(stderr, fmt.Errorf("invalid x option: %s", x))
		}
	}

	if len(rest) > 0 {
		return fail(stderr, fmt.Errorf("unexpected argument: %s", rest[0]))
	}

	log := newLogger(stderr, debugLog)
	defer func() { _ = log.Sync() }()

	rOpt, err := buildOptions(opt, isTerminal(stdout))
	if err != nil {
		return fail(stderr, err)
	}
	rOpt.Logger = log

	log.Debug("options resolved",
		zap.Stringer("mode", rOpt.Mode),
		zap.Stringer("color", rOpt.Color),
		zap.Stringer("max_buffer", rOpt.MaxBuffer),
		zap.Int("head", rOpt.Head),
		zap.Int("tail", rOpt.Tail))

	if err := resort.Run(stdin, stdout, rOpt); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 1
	}

	return 0
}

// buildOptions validates the flag values and maps them to resort.Options.
func buildOptions(opt Options, tty bool) (resort.Options, error) {
	mode, err := resort.ParseMode(opt.OptionsOrdering.AccordingTo)
	if err != nil {
		return resort.Options{}, err
	}

	color, err := resort.ParseColorWhen(opt.OptionsOther.Color)
	if err != nil {
		return resort.Options{}, err
	}

	maxBuf, err := resort.ParseMaxBuffer(strings.TrimSpace(opt.OptionsOther.MaxBuffer))
	if err != nil {
		return resort.Options{}, err
	}

	re, err := resort.CompileExpression(opt.OptionsOther.Exp)
	if err != nil {
		return resort.Options{}, err
	}

	return resort.Options{
		Mode:       mode,
		Reverse:    opt.OptionsOrdering.Reverse,
		Expression: re,
		Head:       int(opt.OptionsOrdering.Head),
		Tail:       int(opt.OptionsOrdering.Tail),
		Unique:     opt.OptionsOther.Unique,
		MaxBuffer:  maxBuf,
		Color:      color.Resolve(tty),
		Colors: resort.Colors{
			Start: opt.OptionsEnv.ColorSeqStart,
			End:   opt.OptionsEnv.ColorSeqEnd,
		},
	}, nil
}

// fail prints an option error with a hint and returns the exit code.
func fail(stderr io.Writer, err error) int {
	var flagErr *flags.Error
	if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
		return 0
	}

	fmt.Fprintf(stderr, "%s: %v\nTry --help for help.\n", programName, err)

	return 1
}

func versionMessage() string {
	return programName + " " + version
}

func goVersionInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "build info unavailable"
	}

	return info.GoVersion + " " + info.Main.Path + " " + info.Main.Version
}

// newLogger logs warnings to w, or everything from debug level when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)

	return zap.New(core).Named(programName)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
