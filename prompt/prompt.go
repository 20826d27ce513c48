// Package prompt defines the capability the resolver uses to ask the user
// for missing values, along with a terminal implementation.
package prompt

import "errors"

// ErrCancelled reports that the user cancelled an interactive prompt (for
// example with an interrupt). It must propagate out of the whole resolution
// pipeline uncaught, aborting the in-progress command.
var ErrCancelled = errors.New("cancelled by user")

// Option is one selectable entry of a choice prompt: the text shown to the
// user and the value returned when it is picked.
type Option struct {
	Display string
	Value   string
}

// Prompter is the interactive capability the resolver consumes. All Ask
// methods block on user input and may return ErrCancelled. Warnf and Errorf
// are the display channels used for advisory messages and retry loops.
type Prompter interface {
	// AskText asks for a free-form line of text.
	AskText(prompt string) (string, error)

	// AskYesNo asks a yes/no question.
	AskYesNo(prompt string) (bool, error)

	// AskChoice asks the user to pick one of the given options, in order.
	AskChoice(prompt string, options []Option) (string, error)

	// Warnf surfaces an advisory message.
	Warnf(format string, args ...any)

	// Errorf surfaces a problem, typically inside a retry loop.
	Errorf(format string, args ...any)
}
