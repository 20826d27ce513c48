// Package termio centralizes terminal capabilities for the prompting layer:
// where output goes, whether a user is actually present, and whether color
// output is appropriate.
package termio

import (
	stdio "io"
	"os"

	"github.com/mattn/go-isatty"
)

// Manager owns the streams and capability checks used by interactive
// prompting and help output.
type Manager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor       bool
	noColor          bool
	forceInteractive bool
	hasForce         bool
}

// New returns a manager bound to process stdio.
func New() *Manager {
	return &Manager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *Manager) WithIn(r stdio.Reader) *Manager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// ForceInteractive overrides interactivity detection. Useful in tests and
// when driving the resolver from something other than a terminal.
func (m *Manager) ForceInteractive(interactive bool) *Manager {
	m.forceInteractive = interactive
	m.hasForce = true
	return m
}

// ForceColor forces color output on, regardless of environment.
func (m *Manager) ForceColor() *Manager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *Manager) NoColor() *Manager { m.noColor = true; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *Manager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *Manager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *Manager) Err() stdio.Writer { return m.err }

// IsInteractive reports whether a user can answer prompts: input is a
// terminal and we are not running under CI.
func (m *Manager) IsInteractive() bool {
	if m.hasForce {
		return m.forceInteractive
	}
	f, ok := m.in.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SupportsColor reports whether ANSI color output is appropriate on stdout.
// NO_COLOR always wins over detection; explicit Force/NoColor win over both.
func (m *Manager) SupportsColor() bool {
	if m.noColor {
		return false
	}
	if m.forceColor {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := m.out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
