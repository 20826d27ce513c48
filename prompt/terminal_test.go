package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mazzetti/go-parley/termio"
)

// fakeTerminal builds a Terminal whose line reader replays canned answers.
func fakeTerminal(t *testing.T, answers ...string) (*Terminal, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	term := NewTerminal(termio.New().WithOut(out).WithErr(errOut).NoColor())
	term.readLine = func(string) (string, error) {
		if len(answers) == 0 {
			t.Fatal("line reader asked for more input than scripted")
		}
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
	return term, out, errOut
}

func cancellingTerminal(t *testing.T) *Terminal {
	t.Helper()
	term := NewTerminal(termio.New().WithOut(&bytes.Buffer{}).WithErr(&bytes.Buffer{}).NoColor())
	term.readLine = func(string) (string, error) {
		return "", ErrCancelled
	}
	return term
}

func TestAskText(t *testing.T) {
	term, _, _ := fakeTerminal(t, "hello world")

	text, err := term.AskText("Message")
	if err != nil {
		t.Fatalf("AskText: %v", err)
	}
	if text != "hello world" {
		t.Errorf("text = %q, want %q", text, "hello world")
	}
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		answer   string
		expected bool
	}{
		{"y", true},
		{"Yes", true},
		{"TRUE", true},
		{"1", true},
		{"n", false},
		{"No", false},
		{"false", false},
		{"0", false},
	}

	for _, tt := range tests {
		term, _, _ := fakeTerminal(t, tt.answer)
		got, err := term.AskYesNo("Continue")
		if err != nil {
			t.Fatalf("AskYesNo(%q): %v", tt.answer, err)
		}
		if got != tt.expected {
			t.Errorf("AskYesNo(%q) = %v, want %v", tt.answer, got, tt.expected)
		}
	}
}

func TestAskYesNoRetriesOnGarbage(t *testing.T) {
	term, _, errOut := fakeTerminal(t, "dunno", "yes")

	got, err := term.AskYesNo("Continue")
	if err != nil {
		t.Fatalf("AskYesNo: %v", err)
	}
	if !got {
		t.Error("expected true after retry")
	}
	if !strings.Contains(errOut.String(), "Please answer with `yes` or `no`") {
		t.Errorf("missing retry message, got %q", errOut.String())
	}
}

func TestAskChoiceByNumber(t *testing.T) {
	options := []Option{
		{Display: "Install", Value: "install"},
		{Display: "Remove", Value: "remove"},
	}

	term, out, _ := fakeTerminal(t, "2")
	chosen, err := term.AskChoice("Pick one", options)
	if err != nil {
		t.Fatalf("AskChoice: %v", err)
	}
	if chosen != "remove" {
		t.Errorf("chosen = %q, want %q", chosen, "remove")
	}

	menu := out.String()
	if !strings.Contains(menu, "Pick one") ||
		!strings.Contains(menu, "1) Install") ||
		!strings.Contains(menu, "2) Remove") {
		t.Errorf("menu not rendered as expected:\n%s", menu)
	}
}

func TestAskChoiceByName(t *testing.T) {
	options := []Option{
		{Display: "Install", Value: "install"},
		{Display: "Remove", Value: "remove"},
	}

	term, _, _ := fakeTerminal(t, "rem")
	chosen, err := term.AskChoice("Pick one", options)
	if err != nil {
		t.Fatalf("AskChoice: %v", err)
	}
	if chosen != "remove" {
		t.Errorf("chosen = %q, want %q", chosen, "remove")
	}
}

func TestAskChoiceRetries(t *testing.T) {
	options := []Option{
		{Display: "Install", Value: "install"},
		{Display: "Remove", Value: "remove"},
	}

	term, _, errOut := fakeTerminal(t, "9", "bogus", "1")
	chosen, err := term.AskChoice("Pick one", options)
	if err != nil {
		t.Fatalf("AskChoice: %v", err)
	}
	if chosen != "install" {
		t.Errorf("chosen = %q, want %q", chosen, "install")
	}

	complaints := errOut.String()
	if !strings.Contains(complaints, "Please pick a number between 1 and 2") {
		t.Errorf("missing out-of-range message, got %q", complaints)
	}
	if !strings.Contains(complaints, "`bogus` is not one of the options") {
		t.Errorf("missing no-match message, got %q", complaints)
	}
}

func TestAskChoiceCancelled(t *testing.T) {
	term := cancellingTerminal(t)

	_, err := term.AskChoice("Pick one", []Option{{Display: "A", Value: "a"}})
	if err != ErrCancelled {
		t.Errorf("err = %v, want ErrCancelled", err)
	}
}

func TestWarnfAndErrorf(t *testing.T) {
	term, _, errOut := fakeTerminal(t)

	term.Warnf("heads up %d", 1)
	term.Errorf("broken %s", "thing")

	got := errOut.String()
	if got != "heads up 1\nbroken thing\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestHumanList(t *testing.T) {
	tests := []struct {
		values   []string
		expected string
	}{
		{[]string{"a"}, "`a`"},
		{[]string{"a", "b"}, "`a` or `b`"},
		{[]string{"a", "b", "c"}, "`a`, `b` or `c`"},
	}

	for _, tt := range tests {
		if got := humanList(tt.values); got != tt.expected {
			t.Errorf("humanList(%v) = %q, want %q", tt.values, got, tt.expected)
		}
	}
}
