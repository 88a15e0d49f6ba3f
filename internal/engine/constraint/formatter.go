// Package constraint turns resolved versions into the constraints a require line requests.
package constraint

import (
	"regexp"
	"strings"

	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Formatter converts a resolved version into a constraint expression.
type Formatter interface {
	Format(version string) (string, error)
}

// numericVersion matches M, M.m, M.m.p and longer dotted numeric versions.
var numericVersion = regexp.MustCompile(`^[vV]?(\d+)(?:\.(\d+))?(?:\.\d+)*$`)

// New returns the formatter for the given policy. An empty policy selects caret.
func New(policy domain.Policy) (Formatter, error) {
	switch policy {
	case domain.PolicyCaret, "":
		return Caret{}, nil
	case domain.PolicyTilde:
		return Tilde{}, nil
	case domain.PolicyExact:
		return Exact{}, nil
	default:
		return nil, zerr.With(domain.ErrUnknownPolicy, "policy", string(policy))
	}
}

// Caret requests upward-compatible versions within the same major version.
//
//	2.3.1 -> ^2.3
//	2.0.5 -> ^2
//	0.3.1 -> ^0.3
//
// Anything that is not a plain numeric version is passed through with ^ prepended.
type Caret struct{}

// Format implements Formatter.
func (Caret) Format(version string) (string, error) {
	v, err := trimmed(version)
	if err != nil {
		return "", err
	}
	v = strings.TrimPrefix(v, "^")

	major, minor, ok := split(v)
	if !ok {
		return "^" + v, nil
	}
	if major != "0" && (minor == "" || isZero(minor)) {
		return "^" + major, nil
	}
	if minor == "" {
		minor = "0"
	}
	return "^" + major + "." + minor, nil
}

// Tilde requests versions within the same minor series: 2.3.1 -> ~2.3.
type Tilde struct{}

// Format implements Formatter.
func (Tilde) Format(version string) (string, error) {
	v, err := trimmed(version)
	if err != nil {
		return "", err
	}
	v = strings.TrimPrefix(v, "~")

	major, minor, ok := split(v)
	if !ok {
		return "~" + v, nil
	}
	if minor == "" {
		minor = "0"
	}
	return "~" + major + "." + minor, nil
}

// Exact requests the version as resolved.
type Exact struct{}

// Format implements Formatter.
func (Exact) Format(version string) (string, error) {
	return trimmed(version)
}

func trimmed(version string) (string, error) {
	v := strings.TrimSpace(version)
	if v == "" {
		return "", domain.ErrUnparsableVersion
	}
	return v, nil
}

// split returns the major and minor components of a numeric version.
func split(v string) (major, minor string, ok bool) {
	m := numericVersion.FindStringSubmatch(v)
	if m == nil {
		return "", "", false
	}
	return trimLeadingZeros(m[1]), trimLeadingZeros(m[2]), true
}

func isZero(s string) bool {
	return strings.Trim(s, "0") == ""
}

func trimLeadingZeros(s string) string {
	if s == "" {
		return ""
	}
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}
