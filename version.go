package resort

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// versionPart names the component a version lexer error occurred in.
type versionPart uint8

const (
	partMajor versionPart = iota
	partMinor
	partPatch
	partPre
	partBuild
)

func (p versionPart) String() string {
	switch p {
	case partMinor:
		return "minor version number"
	case partPatch:
		return "patch version number"
	case partPre:
		return "pre-release identifier"
	case partBuild:
		return "build metadata"
	default:
		return "major version number"
	}
}

type versionErrKind uint8

const (
	verUnexpectedChar versionErrKind = iota
	verUnexpectedEnd
	verAfterNumber
	verLeadingZero
	verOverflow
	verEmptySegment
	verEmpty
)

// VersionError describes why a key is not a version.
type VersionError struct {
	// Pos is the byte offset of the offending character within the key.
	Pos int
	// Char is the offending character, zero at end of input.
	Char rune
	Part versionPart
	kind versionErrKind
}

func (e *VersionError) Error() string {
	switch e.kind {
	case verUnexpectedEnd:
		return fmt.Sprintf("unexpected end of input while parsing %s", e.Part)
	case verAfterNumber:
		return fmt.Sprintf("unexpected character %q after %s", e.Char, e.Part)
	case verLeadingZero:
		return fmt.Sprintf("invalid leading zero in %s", e.Part)
	case verOverflow:
		return fmt.Sprintf("value of %s exceeds int max", e.Part)
	case verEmptySegment:
		return fmt.Sprintf("empty identifier segment in %s", e.Part)
	case verEmpty:
		return "empty string, expected a semver version"
	default:
		return fmt.Sprintf("unexpected character %q while parsing %s", e.Char, e.Part)
	}
}

// versionLexer checks MAJOR[.MINOR[.PATCH]][-PRE][+BUILD]. Input ending
// right after MAJOR or MINOR is accepted and completed later.
type versionLexer struct {
	s   string
	pos int
}

func scanVersion(s string) error {
	if s == "" {
		return &VersionError{kind: verEmpty}
	}

	lx := versionLexer{s: s}

	if err := lx.number(partMajor); err != nil {
		return err
	}
	if lx.eof() {
		return nil
	}
	if err := lx.dot(partMajor); err != nil {
		return err
	}

	if err := lx.number(partMinor); err != nil {
		return err
	}
	if lx.eof() {
		return nil
	}
	if err := lx.dot(partMinor); err != nil {
		return err
	}

	if err := lx.number(partPatch); err != nil {
		return err
	}
	if lx.eof() {
		return nil
	}

	switch lx.s[lx.pos] {
	case '-':
		lx.pos++
		if err := lx.identifiers(partPre); err != nil {
			return err
		}
	case '+':
	default:
		return lx.fail(partPatch, verAfterNumber)
	}

	if lx.eof() {
		return nil
	}

	if lx.s[lx.pos] != '+' {
		return lx.fail(partPre, verUnexpectedChar)
	}
	lx.pos++

	return lx.identifiers(partBuild)
}

func (lx *versionLexer) eof() bool { return lx.pos >= len(lx.s) }

func (lx *versionLexer) fail(p versionPart, kind versionErrKind) *VersionError {
	e := &VersionError{Pos: lx.pos, Part: p, kind: kind}
	if !lx.eof() {
		e.Char, _ = utf8.DecodeRuneInString(lx.s[lx.pos:])
	}

	return e
}

func (lx *versionLexer) dot(after versionPart) error {
	if lx.s[lx.pos] != '.' {
		return lx.fail(after, verAfterNumber)
	}
	lx.pos++

	return nil
}

// number reads a numeric component without leading zeros.
func (lx *versionLexer) number(p versionPart) error {
	if lx.eof() {
		return lx.fail(p, verUnexpectedEnd)
	}

	start := lx.pos
	var n uint64
	for !lx.eof() && isDigit(lx.s[lx.pos]) {
		d := uint64(lx.s[lx.pos] - '0')
		if n > (math.MaxInt-d)/10 {
			lx.pos = start
			return lx.fail(p, verOverflow)
		}
		n = n*10 + d
		lx.pos++
	}

	switch {
	case lx.pos == start:
		return lx.fail(p, verUnexpectedChar)
	case lx.pos-start > 1 && lx.s[start] == '0':
		lx.pos = start
		return lx.fail(p, verLeadingZero)
	}

	return nil
}

// identifiers reads dot-separated [0-9A-Za-z-] identifiers. Numeric
// pre-release identifiers must not have leading zeros.
func (lx *versionLexer) identifiers(p versionPart) error {
	for {
		start := lx.pos
		numeric := true
		for !lx.eof() && isIdentChar(lx.s[lx.pos]) {
			numeric = numeric && isDigit(lx.s[lx.pos])
			lx.pos++
		}

		if lx.pos == start {
			if lx.eof() || lx.s[lx.pos] == '.' || lx.s[lx.pos] == '+' {
				return lx.fail(p, verEmptySegment)
			}
			return lx.fail(p, verUnexpectedChar)
		}

		if p == partPre && numeric && lx.pos-start > 1 && lx.s[start] == '0' {
			lx.pos = start
			return lx.fail(p, verLeadingZero)
		}

		if lx.eof() {
			return nil
		}

		switch c := lx.s[lx.pos]; {
		case c == '.':
			lx.pos++
		case c == '+' && p == partPre:
			return nil
		default:
			return lx.fail(p, verUnexpectedChar)
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentChar(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-'
}
