package termio

import (
	"bytes"
	"strings"
	"testing"
)

func TestManagerStreams(t *testing.T) {
	in := strings.NewReader("input")
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	m := New().WithIn(in).WithOut(out).WithErr(errOut)

	if m.In() != in {
		t.Error("In() did not return the configured reader")
	}
	if m.Out() != out {
		t.Error("Out() did not return the configured writer")
	}
	if m.Err() != errOut {
		t.Error("Err() did not return the configured writer")
	}
}

func TestIsInteractiveNonFileInput(t *testing.T) {
	m := New().WithIn(strings.NewReader(""))

	if m.IsInteractive() {
		t.Error("a plain reader must not count as interactive")
	}
}

func TestIsInteractiveForceOverride(t *testing.T) {
	m := New().WithIn(strings.NewReader("")).ForceInteractive(true)
	if !m.IsInteractive() {
		t.Error("ForceInteractive(true) must win over detection")
	}

	m = New().ForceInteractive(false)
	if m.IsInteractive() {
		t.Error("ForceInteractive(false) must win over detection")
	}
}

func TestSupportsColorNonFileOutput(t *testing.T) {
	m := New().WithOut(&bytes.Buffer{})

	if m.SupportsColor() {
		t.Error("a plain writer must not support color")
	}
}

func TestSupportsColorForced(t *testing.T) {
	m := New().WithOut(&bytes.Buffer{}).ForceColor()
	if !m.SupportsColor() {
		t.Error("ForceColor must win over detection")
	}

	m = New().WithOut(&bytes.Buffer{}).ForceColor().NoColor()
	if m.SupportsColor() {
		t.Error("NoColor must win when set last")
	}
}

func TestSupportsColorNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	m := New().WithOut(&bytes.Buffer{})
	if m.SupportsColor() {
		t.Error("NO_COLOR must disable color")
	}
}

func TestIsInteractiveCIEnv(t *testing.T) {
	t.Setenv("CI", "true")

	// Even with a file on stdin, CI means nobody is there to answer.
	m := New()
	if m.IsInteractive() {
		t.Error("CI environment must not count as interactive")
	}
}
