package parley

import (
	"fmt"

	"github.com/mazzetti/go-parley/prompt"
)

// scriptedPrompter replays canned answers in order and records everything it
// was asked, so tests can assert on both the questions and the consumption.
type scriptedPrompter struct {
	texts   []string
	yesNos  []bool
	choices []string

	cancelNext bool

	askedTexts   []string
	askedYesNos  []string
	askedChoices []string
	warnings     []string
	problems     []string
}

func (p *scriptedPrompter) AskText(label string) (string, error) {
	p.askedTexts = append(p.askedTexts, label)
	if p.cancelNext {
		return "", prompt.ErrCancelled
	}
	if len(p.texts) == 0 {
		return "", fmt.Errorf("unexpected text prompt %q", label)
	}
	answer := p.texts[0]
	p.texts = p.texts[1:]
	return answer, nil
}

func (p *scriptedPrompter) AskYesNo(label string) (bool, error) {
	p.askedYesNos = append(p.askedYesNos, label)
	if p.cancelNext {
		return false, prompt.ErrCancelled
	}
	if len(p.yesNos) == 0 {
		return false, fmt.Errorf("unexpected yes/no prompt %q", label)
	}
	answer := p.yesNos[0]
	p.yesNos = p.yesNos[1:]
	return answer, nil
}

func (p *scriptedPrompter) AskChoice(label string, options []prompt.Option) (string, error) {
	p.askedChoices = append(p.askedChoices, label)
	if p.cancelNext {
		return "", prompt.ErrCancelled
	}
	if len(p.choices) == 0 {
		return "", fmt.Errorf("unexpected choice prompt %q", label)
	}
	answer := p.choices[0]
	p.choices = p.choices[1:]
	for _, opt := range options {
		if opt.Value == answer {
			return answer, nil
		}
	}
	return "", fmt.Errorf("scripted answer %q is not among the options", answer)
}

func (p *scriptedPrompter) Warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *scriptedPrompter) Errorf(format string, args ...any) {
	p.problems = append(p.problems, fmt.Sprintf(format, args...))
}
