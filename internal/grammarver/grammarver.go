// Package grammarver tracks the eJSON grammar version a fixture or CLI
// invocation was written against, so a fixture authored for a newer
// grammar than this parser implements can be detected instead of silently
// mis-parsed. It is a thin, semver.org-flavoured wrapper around
// golang.org/x/mod/semver, which requires (and produces) the "vX.Y.Z" form.
package grammarver

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Current is the grammar version this parser package implements, tracking
// spec.md's C1-C5 module set plus the JSONEE extensions.
const Current = "v1.0.0"

// normalize adds the "v" prefix x/mod/semver requires, accepting callers
// (CLI flags, fixture metadata) that omit it.
func normalize(v string) string {
	if v == "" {
		return ""
	}
	if v[0] != 'v' {
		return "v" + v
	}
	return v
}

// Valid reports whether v is a well-formed semantic version, with or
// without a leading "v".
func Valid(v string) bool {
	return semver.IsValid(normalize(v))
}

// Compare returns -1, 0, or +1 as v1 is less than, equal to, or greater
// than v2, per semver precedence (build metadata ignored).
func Compare(v1, v2 string) int {
	return semver.Compare(normalize(v1), normalize(v2))
}

// CheckSupported returns an error if v names a grammar version newer than
// Current. Neither the CLI (it has no --grammar flag) nor the fixture
// loader calls it.
func CheckSupported(v string) error {
	nv := normalize(v)
	if !semver.IsValid(nv) {
		return fmt.Errorf("grammarver: %q is not a valid semantic version", v)
	}
	if semver.Compare(nv, Current) > 0 {
		return fmt.Errorf("grammarver: fixture requires grammar %s, parser implements %s", v, Current)
	}
	return nil
}
