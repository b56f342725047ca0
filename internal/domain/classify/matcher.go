// Package classify maps free-text descriptors (interface aliases, billing
// record names, device locations) onto the fixed sets of carrier and plaza
// identities using ordered substring heuristics.
package classify

import "strings"

// Entry pairs an identity with the case-insensitive substring signatures
// that select it.
type Entry struct {
	Identity   string
	Signatures []string
}

// Matcher is an ordered signature registry. The first entry whose any
// signature substring-matches the input wins; order is the tie-break.
type Matcher struct {
	entries  []Entry
	fallback string
}

// NewMatcher builds a matcher over the given entries. Misses resolve to
// the fallback identity.
func NewMatcher(entries []Entry, fallback string) *Matcher {
	return &Matcher{entries: entries, fallback: fallback}
}

// Match resolves text to an identity. Pure and deterministic.
func (m *Matcher) Match(text string) string {
	lower := strings.ToLower(text)
	for _, e := range m.entries {
		for _, sig := range e.Signatures {
			if strings.Contains(lower, sig) {
				return e.Identity
			}
		}
	}
	return m.fallback
}

// Entries exposes the registry for inspection and tests.
func (m *Matcher) Entries() []Entry {
	return m.entries
}
