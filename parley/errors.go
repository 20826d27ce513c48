package parley

import "strings"

// ErrorKind categorizes resolution problems. Every kind carries a
// human-readable message; there are no structured codes beyond the kind.
type ErrorKind string

const (
	// ErrorKindNoMatch means input matched no candidate name.
	ErrorKindNoMatch ErrorKind = "no_match"
	// ErrorKindAmbiguous means input matched two or more candidate groups.
	ErrorKindAmbiguous ErrorKind = "ambiguous"
	// ErrorKindNoInput means no command name was given at all.
	ErrorKindNoInput ErrorKind = "no_input"
	// ErrorKindMissingValue means a flag awaited a value that never arrived,
	// or a required parameter received none.
	ErrorKindMissingValue ErrorKind = "missing_value"
	// ErrorKindTooManyValues means a non-variadic parameter received more
	// than one assignment.
	ErrorKindTooManyValues ErrorKind = "too_many_values"
	// ErrorKindUnexpectedValue means a token could not be attached to any
	// declared parameter.
	ErrorKindUnexpectedValue ErrorKind = "unexpected_value"
	// ErrorKindBadValue means a raw string could not be converted to the
	// parameter's declared type.
	ErrorKindBadValue ErrorKind = "bad_value"
)

// CoerceError reports that a raw string could not be converted to a declared
// type. It always carries the offending raw text.
type CoerceError struct {
	Raw     string
	Message string
}

func (e *CoerceError) Error() string { return e.Message }

// SelectionError reports a failed command selection: nothing entered, no
// match, or an ambiguous match. Selection failures are raised at the point of
// lookup rather than accumulated.
type SelectionError struct {
	Kind    ErrorKind
	Input   string
	Message string
}

func (e *SelectionError) Error() string { return e.Message }

// ResolutionError carries every problem found during one resolution pass,
// one human-readable string per problem. A single pass reports everything it
// found, not just the first failure.
type ResolutionError struct {
	Problems []string
}

func (e *ResolutionError) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0]
	}
	return "invalid arguments: " + strings.Join(e.Problems, "; ")
}

// commaList renders values as a human list: "a, b and c". A conjunction of
// "" joins everything with commas. Each value is wrapped in the quote string
// when one is given.
func commaList(values []string, conjunction, quote string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote + v + quote
	}

	if len(quoted) == 0 {
		return ""
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	if conjunction == "" {
		return strings.Join(quoted, ", ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " " + conjunction + " " + quoted[len(quoted)-1]
}
