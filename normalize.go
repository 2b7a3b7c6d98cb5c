package resort

// completeVersion expands X / X.Y into X.0.0 / X.Y.0. Any other form is
// returned unchanged.
func completeVersion(s string) string {
	switch {
	case shortX.MatchString(s):
		return s + ".0.0"

	case shortXY.MatchString(s):
		return s + ".0"

	default:
		return s
	}
}
