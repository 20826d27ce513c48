package parley

import (
	"github.com/mazzetti/go-parley/internal/match"
	"github.com/mazzetti/go-parley/prompt"
)

// CatalogEntry describes one selectable command: its canonical name, any
// aliases, and an optional one-line summary for menus.
type CatalogEntry struct {
	Name    string
	Aliases []string
	Summary string
}

// ResolveCommand picks the command the user invoked from the first raw token
// and returns its canonical name together with the remaining tokens.
//
// A failed or ambiguous lookup raises a SelectionError when non-interactive.
// Interactively it is surfaced as a warning instead, and the prompter is
// asked to choose from the full catalog; the remaining raw tokens are
// dropped in that case, since they cannot be trusted once the command guess
// was wrong.
func ResolveCommand(catalog []CatalogEntry, argv []string, opts ResolveOptions) (string, []string, error) {
	groups := make([]match.Group, len(catalog))
	names := make([]string, len(catalog))
	for i, entry := range catalog {
		groups[i] = match.NewGroup(entry.Name, entry.Aliases...)
		names[i] = entry.Name
	}

	if len(argv) > 0 {
		entered := argv[0]
		result := match.Choose(groups, entered)

		switch result.Outcome {
		case match.Exact, match.Unique:
			canonical := catalog[result.Index].Name
			// Alias or fuzzy hit: point the user at the canonical name.
			if entered != canonical && opts.Prompter != nil {
				opts.Prompter.Warnf(
					"There is no command named `%s`. Assuming you meant to type `%s`.",
					entered, canonical)
			}
			return canonical, argv[1:], nil

		case match.Ambiguous:
			selErr := &SelectionError{
				Kind:  ErrorKindAmbiguous,
				Input: entered,
				Message: "`" + entered + "` is ambiguous. It could refer to " +
					commaList(result.Matched, "or", "`"),
			}
			if !opts.Interactive {
				return "", nil, selErr
			}
			opts.Prompter.Warnf("%s", selErr.Message)

		default:
			selErr := &SelectionError{
				Kind:  ErrorKindNoMatch,
				Input: entered,
				Message: "`" + entered + "` is not a valid command. Possible commands are " +
					commaList(names, "and", "`"),
			}
			if !opts.Interactive {
				return "", nil, selErr
			}
			opts.Prompter.Warnf("%s", selErr.Message)
		}
	} else if !opts.Interactive {
		return "", nil, &SelectionError{
			Kind: ErrorKindNoInput,
			Message: "Please specify a command. Possible commands are " +
				commaList(names, "and", "`"),
		}
	}

	// Nothing usable on the command line; ask instead.
	options := make([]prompt.Option, len(catalog))
	for i, entry := range catalog {
		display := prettyName(entry.Name)
		if entry.Summary != "" {
			display += " - " + entry.Summary
		}
		options[i] = prompt.Option{Display: display, Value: entry.Name}
	}

	chosen, err := opts.Prompter.AskChoice("What would you like to do?", options)
	if err != nil {
		return "", nil, err
	}
	return chosen, nil, nil
}
