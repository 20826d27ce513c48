// Package match implements best-effort name matching for CLI input.
// Used for command selection, option discovery and literal-set values.
package match

import "strings"

// Group is one matchable entity: a canonical name plus any aliases.
// Groups are immutable once built and safe to share across matches.
type Group struct {
	Canonical string
	Aliases   []string
}

// NewGroup builds a group from its canonical name and optional aliases.
func NewGroup(canonical string, aliases ...string) Group {
	return Group{Canonical: canonical, Aliases: aliases}
}

// Names returns the canonical name followed by all aliases.
func (g Group) Names() []string {
	names := make([]string, 0, len(g.Aliases)+1)
	names = append(names, g.Canonical)
	names = append(names, g.Aliases...)
	return names
}

// Outcome classifies a match attempt.
type Outcome int

const (
	// Exact means one alias normalized to exactly the input.
	Exact Outcome = iota
	// Unique means the input was a substring of aliases in exactly one group.
	Unique
	// None means the input matched nothing.
	None
	// Ambiguous means the input was a substring of aliases in two or more groups.
	Ambiguous
)

// Result describes the outcome of a Choose call.
type Result struct {
	Outcome Outcome

	// Index of the matched group. Valid for Exact and Unique.
	Index int

	// Matched holds the normalized alias strings that partially matched.
	// Populated for Ambiguous, for error display.
	Matched []string

	// Candidates holds the canonical name of every group.
	// Populated for None, for error display.
	Candidates []string
}

// Normalize maps a name to its matching form: surrounding whitespace is
// trimmed, case is folded, and spaces and underscores become hyphens. Case
// and separator style are therefore never distinguishing.
func Normalize(value string) string {
	value = strings.TrimSpace(value)
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, " ", "-")
	value = strings.ReplaceAll(value, "_", "-")
	return value
}

// Choose finds the group the user meant by the given input. An exact
// normalized alias match wins immediately, even if the input is also a
// substring of other groups' aliases. Otherwise the input is matched as a
// substring against every alias; a single surviving group is accepted, more
// than one is ambiguous. Requiring a single group rather than a single alias
// avoids false ambiguity when several aliases of one group all contain the
// input.
//
// Match quality is deliberately not scored: a prefix match is not preferred
// over a mid-string one.
func Choose(groups []Group, input string) Result {
	input = Normalize(input)

	matchedIndices := make(map[int]struct{})
	var matchedValues []string

	for i, group := range groups {
		for _, alias := range group.Names() {
			alias = Normalize(alias)

			if alias == input {
				return Result{Outcome: Exact, Index: i}
			}

			if strings.Contains(alias, input) {
				if _, seen := matchedIndices[i]; !seen {
					matchedIndices[i] = struct{}{}
				}
				matchedValues = appendUnique(matchedValues, alias)
			}
		}
	}

	switch len(matchedIndices) {
	case 0:
		candidates := make([]string, len(groups))
		for i, group := range groups {
			candidates[i] = group.Canonical
		}
		return Result{Outcome: None, Candidates: candidates}

	case 1:
		for i := range matchedIndices {
			return Result{Outcome: Unique, Index: i}
		}
		panic("unreachable")

	default:
		return Result{Outcome: Ambiguous, Matched: matchedValues}
	}
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
