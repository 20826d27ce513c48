package parley

import (
	"strconv"
	"strings"

	"github.com/mazzetti/go-parley/internal/match"
)

// Coerce converts a raw string into a typed value according to the declared
// type. The returned value is one of string, bool, int or float64; literal
// sets resolve to the exact declared literal.
func Coerce(raw string, t TypeSpec) (any, *CoerceError) {
	switch t.Kind {
	case KindString:
		return raw, nil

	case KindLiteral:
		return coerceLiteral(raw, t)

	case KindBool:
		return coerceBool(raw)

	case KindInt:
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &CoerceError{
				Raw:     raw,
				Message: "`" + raw + "` is not a valid integer number",
			}
		}
		return value, nil

	case KindFloat:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &CoerceError{
				Raw:     raw,
				Message: "`" + raw + "` is not a valid number",
			}
		}
		return value, nil

	case KindOptional, KindUnion:
		// Try each member in declared order and take the first success.
		// Member errors are discarded; only the aggregate failure is
		// surfaced, so union error messages are necessarily generic.
		for _, member := range t.Members {
			if value, err := Coerce(raw, member); err == nil {
				return value, nil
			}
		}
		return nil, &CoerceError{
			Raw:     raw,
			Message: "`" + raw + "` is not a valid value for " + t.String(),
		}

	default:
		return nil, &CoerceError{
			Raw:     raw,
			Message: "`" + raw + "` cannot be parsed as unsupported type " + string(t.Kind),
		}
	}
}

// coerceLiteral resolves raw against the literal set with the same matching
// leeway used for command and option names.
func coerceLiteral(raw string, t TypeSpec) (any, *CoerceError) {
	groups := make([]match.Group, len(t.Literals))
	for i, literal := range t.Literals {
		groups[i] = match.NewGroup(literal)
	}

	result := match.Choose(groups, raw)
	switch result.Outcome {
	case match.Exact, match.Unique:
		return t.Literals[result.Index], nil

	case match.Ambiguous:
		return nil, &CoerceError{
			Raw: raw,
			Message: "`" + raw + "` is ambiguous here. It could refer to either of " +
				commaList(result.Matched, "and", "`"),
		}

	default:
		return nil, &CoerceError{
			Raw: raw,
			Message: "`" + raw + "` is not valid here. Please provide one of " +
				commaList(t.Literals, "and", "`"),
		}
	}
}

var (
	trueWords  = []string{"true", "t", "yes", "y", "1"}
	falseWords = []string{"false", "f", "no", "n", "0"}
)

func coerceBool(raw string) (any, *CoerceError) {
	lowered := strings.ToLower(raw)

	for _, word := range trueWords {
		if lowered == word {
			return true, nil
		}
	}
	for _, word := range falseWords {
		if lowered == word {
			return false, nil
		}
	}

	return nil, &CoerceError{
		Raw:     raw,
		Message: "`" + raw + "` is not a valid boolean value. Use `true` or `false`",
	}
}
