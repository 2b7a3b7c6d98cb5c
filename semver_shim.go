package resort

import (
	"fmt"

	sv "github.com/woozymasta/semver"
)

// parseVersion validates a key, completes shorthand forms and returns a
// value that compares by precedence only (build metadata and the original
// spelling are dropped).
func parseVersion(s string) (sv.Semver, error) {
	if err := scanVersion(s); err != nil {
		return sv.Semver{}, err
	}

	full := completeVersion(s)
	v, ok := sv.Parse(full)
	if !ok || !v.IsValid() {
		return sv.Semver{}, fmt.Errorf("can not parse version '%s'", full)
	}

	return makeSemver(v.Major, v.Minor, v.Patch, v.Prerelease), nil
}

// makeSemver builds a Semver without parsing.
// prerelease has no leading '-' (e.g. "0" or "alpha.1").
func makeSemver(maj, min, pat int, prerelease string) sv.Semver {
	flags := sv.FlagHasMajor | sv.FlagHasMinor | sv.FlagHasPatch
	if prerelease != "" {
		flags |= sv.FlagHasPre
	}

	return sv.Semver{
		Major:      maj,
		Minor:      min,
		Patch:      pat,
		Prerelease: prerelease,
		Flags:      flags,
		Valid:      true,
	}
}
