// Package version orders package versions for the diff engine.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Order is the outcome of comparing two versions.
type Order int

const (
	// Lower means the second version precedes the first.
	Lower Order = -1
	// Equal means both versions are identical.
	Equal Order = 0
	// Higher means the second version follows the first.
	Higher Order = 1
)

// Fallback is the order assumed when either side is not a semantic version.
// Non-semver schemes (dev branches, four-part versions, ranges) carry no reliable
// ordering, so any textual change is treated as an upgrade.
const Fallback = Higher

// operators are stripped before parsing, longest first.
var operators = []string{">=", "<=", "==", "^", "~", "=", ">", "<"}

// operator returns the leading constraint operator of raw, or "" for a bare version.
func operator(raw string) string {
	v := strings.TrimSpace(raw)
	for _, op := range operators {
		if strings.HasPrefix(v, op) {
			return op
		}
	}
	return ""
}

// Canonical returns the semver form of a version or single-bound constraint
// ("^2.0" -> "v2.0", "1.4.2" -> "v1.4.2") and whether it is valid.
func Canonical(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	for _, op := range operators {
		if strings.HasPrefix(v, op) {
			v = strings.TrimSpace(strings.TrimPrefix(v, op))
			break
		}
	}
	v = strings.TrimPrefix(strings.TrimPrefix(v, "v"), "V")
	if v == "" {
		return "", false
	}
	v = "v" + v
	if !semver.IsValid(v) {
		return "", false
	}
	return semver.Canonical(v), true
}

// Compare orders "to" relative to "from".
// Only identical strings are Equal. Semantic ordering applies when both sides parse
// and carry the same operator; otherwise, or when two differing strings have the same
// precedence ("1.0" and "1.0.0", "1.0.0+a" and "1.0.0+b"), the fallback policy applies.
// The second return value is false when the fallback policy was applied.
func Compare(from, to string) (Order, bool) {
	if from == to {
		return Equal, true
	}
	a, okFrom := Canonical(from)
	b, okTo := Canonical(to)
	if !okFrom || !okTo || operator(from) != operator(to) {
		return Fallback, false
	}
	order := Order(semver.Compare(b, a))
	if order == Equal {
		return Fallback, false
	}
	return order, true
}
