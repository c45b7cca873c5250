package argv

import "strings"

// Marker is the leading character that identifies a flag token.
const Marker = "-"

// LeadingEntries is the number of entries at the start of a full argument
// vector that are never user arguments (program path and script path).
const LeadingEntries = 2

// Parsed holds the result of classifying an argument vector.
// Both lists keep the relative order of the input.
type Parsed struct {
	Flags []string `json:"flags" yaml:"flags"`
	Args  []string `json:"args" yaml:"args"`
}

// Parse classifies a full argument vector, skipping the LeadingEntries
// conventional entries. Vectors too short to hold any user argument yield
// empty lists.
func Parse(argv []string) Parsed {
	if len(argv) <= LeadingEntries {
		return Split(nil)
	}
	return Split(argv[LeadingEntries:])
}

// Split classifies every token: tokens starting with Marker become flags,
// everything else becomes a positional argument. The input is not modified.
func Split(tokens []string) Parsed {
	p := Parsed{
		Flags: []string{},
		Args:  []string{},
	}
	for _, token := range tokens {
		if IsFlag(token) {
			p.Flags = append(p.Flags, token)
		} else {
			p.Args = append(p.Args, token)
		}
	}
	return p
}

// IsFlag reports whether token starts with Marker. A bare "-" is a flag.
func IsFlag(token string) bool {
	return strings.HasPrefix(token, Marker)
}
