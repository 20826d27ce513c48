package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/mazzetti/go-parley/internal/match"
	"github.com/mazzetti/go-parley/termio"
)

// Terminal is the Prompter used when a real user sits on the other end of
// stdin. Text entry goes through a line editor; Ctrl-C maps to ErrCancelled.
type Terminal struct {
	io *termio.Manager

	// readLine runs one line-editor prompt. Swappable so tests can feed
	// answers without a terminal.
	readLine func(prompt string) (string, error)

	warn    *color.Color
	problem *color.Color

	indexStyle  lipgloss.Style
	promptStyle lipgloss.Style
}

// NewTerminal builds a terminal prompter on the given IO manager.
func NewTerminal(m *termio.Manager) *Terminal {
	t := &Terminal{
		io:          m,
		warn:        color.New(color.FgYellow),
		problem:     color.New(color.FgRed),
		indexStyle:  lipgloss.NewStyle().Bold(true),
		promptStyle: lipgloss.NewStyle().Bold(true),
	}
	t.readLine = t.linerRead
	if !m.SupportsColor() {
		t.warn.DisableColor()
		t.problem.DisableColor()
		t.indexStyle = lipgloss.NewStyle()
		t.promptStyle = lipgloss.NewStyle()
	}
	return t
}

// linerRead runs one line-editor prompt. The state is opened and closed per
// call so the terminal is restored before any other output happens.
func (t *Terminal) linerRead(prompt string) (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	text, err := line.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}
	return text, nil
}

// AskText asks for a free-form line of text.
func (t *Terminal) AskText(prompt string) (string, error) {
	return t.readLine(t.promptStyle.Render(prompt) + ": ")
}

// AskYesNo asks until the answer parses as yes or no.
func (t *Terminal) AskYesNo(prompt string) (bool, error) {
	for {
		raw, err := t.readLine(t.promptStyle.Render(prompt) + " [y/n]: ")
		if err != nil {
			return false, err
		}

		switch match.Normalize(raw) {
		case "y", "yes", "t", "true", "1":
			return true, nil
		case "n", "no", "f", "false", "0":
			return false, nil
		}
		t.Errorf("Please answer with `yes` or `no`")
	}
}

// AskChoice renders a numbered menu and asks until the answer selects exactly
// one entry, either by number or by (partial) name.
func (t *Terminal) AskChoice(prompt string, options []Option) (string, error) {
	fmt.Fprintln(t.io.Out(), t.promptStyle.Render(prompt))
	for i, option := range options {
		index := t.indexStyle.Render(fmt.Sprintf("%2d)", i+1))
		fmt.Fprintf(t.io.Out(), " %s %s\n", index, option.Display)
	}

	groups := make([]match.Group, len(options))
	for i, option := range options {
		groups[i] = match.NewGroup(option.Display)
	}

	for {
		raw, err := t.readLine("> ")
		if err != nil {
			return "", err
		}

		if n, convErr := strconv.Atoi(raw); convErr == nil {
			if n >= 1 && n <= len(options) {
				return options[n-1].Value, nil
			}
			t.Errorf("Please pick a number between 1 and %d", len(options))
			continue
		}

		result := match.Choose(groups, raw)
		switch result.Outcome {
		case match.Exact, match.Unique:
			return options[result.Index].Value, nil
		case match.Ambiguous:
			t.Errorf("`%s` is ambiguous. It could refer to %s", raw, humanList(result.Matched))
		default:
			t.Errorf("`%s` is not one of the options", raw)
		}
	}
}

// Warnf prints an advisory message to the error stream.
func (t *Terminal) Warnf(format string, args ...any) {
	t.warn.Fprintf(t.io.Err(), format+"\n", args...)
}

// Errorf prints a problem to the error stream.
func (t *Terminal) Errorf(format string, args ...any) {
	t.problem.Fprintf(t.io.Err(), format+"\n", args...)
}

func humanList(values []string) string {
	out := ""
	for i, v := range values {
		switch {
		case i == 0:
		case i == len(values)-1:
			out += " or "
		default:
			out += ", "
		}
		out += "`" + v + "`"
	}
	return out
}
