/*
Package resort sorts lines of text by a key located with a regular
expression.

The whole input is read before anything is written. Each line gets a key:
the whole line, or the part matched by an expression (capture group 1 when
present, otherwise the whole match; lines that do not match use the whole
line). Keys are compared according to a Mode:

  - ModeString: byte-wise, no locale collation.
  - ModeNumeric: signed 64-bit integers.
  - ModeVersion: SemVer precedence. Shorthand X and X.Y are read as X.0.0
    and X.Y.0; build metadata does not affect order.
  - ModeMonth: jan..dec, with full names and the "june", "july" and "sept"
    spellings, in calendar order.
  - ModeTime: [[H:]M:]S[.N] durations, where N counts milliseconds.

Sorting is stable: lines with equal keys keep their input order, also when
Reverse is set. A key that cannot be parsed in the selected mode aborts the
whole run with a *KeyParseError.

Head and Tail lines keep their position and are never parsed. Unique drops
lines equal to the line written just before them.

Usage example:

	re, _ := resort.CompileExpression(`[0-9]+`)

	err := resort.Run(os.Stdin, os.Stdout, resort.Options{
		Mode:       resort.ModeNumeric, // compare the first number of each line
		Expression: re,
		Head:       1,                  // keep the header line on top
	})
*/
package resort
