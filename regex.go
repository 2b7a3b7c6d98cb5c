package resort

import "regexp"

var (
	// Max buffer size: digits, optional binary unit, optional trailing b/B.
	maxBufferRe = regexp.MustCompile(`^([0-9]+)([KMGTPkmgtp])?[bB]?$`)

	// Version shorthand: exactly X or X.Y, completed to X.Y.Z before parsing.
	shortX  = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)
	shortXY = regexp.MustCompile(`^(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)$`)
)
