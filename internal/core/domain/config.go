package domain

// Policy selects how a resolved version is turned into a constraint.
type Policy string

const (
	// PolicyCaret requests ^M.m (compatible within the same major version).
	PolicyCaret Policy = "caret"
	// PolicyTilde requests ~M.m (compatible within the same minor series).
	PolicyTilde Policy = "tilde"
	// PolicyExact requests the version exactly as resolved.
	PolicyExact Policy = "exact"
)

// Config holds the generator settings.
type Config struct {
	// Binary is the dependency manager executable invoked by the script.
	Binary string

	// Shell is the interpreter written to the shebang line.
	Shell string

	// Policy is the constraint formatting policy.
	Policy Policy

	// ExtraArgs are appended to every require / remove invocation.
	ExtraArgs []string

	// Output is the default script path.
	Output string
}

// DefaultConfig returns the settings used when no configuration file exists.
func DefaultConfig() Config {
	return Config{
		Binary: "composer",
		Shell:  "/bin/sh",
		Policy: PolicyCaret,
		Output: DefaultOutputName,
	}
}

// Valid reports whether p names a known policy. The empty policy is valid and means caret.
func (p Policy) Valid() bool {
	switch p {
	case "", PolicyCaret, PolicyTilde, PolicyExact:
		return true
	default:
		return false
	}
}
