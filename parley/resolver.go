package parley

import (
	"github.com/mazzetti/go-parley/prompt"
)

// ResolveOptions carries the per-call knobs of a resolution pass.
type ResolveOptions struct {
	// Interactive enables prompting for missing values and for failed
	// command selection. Requires a Prompter.
	Interactive bool

	// Prompter supplies the interactive capability. Ignored when
	// Interactive is false, except for advisory warnings.
	Prompter prompt.Prompter
}

// ResolveParameters turns a parameter list and raw tokens into a fully typed
// binding. Tokens are bucketed by the parser, raw values are coerced, and
// defaults are imputed. In interactive mode any parameter still missing after
// the parse is asked for through the prompter, one prompt per parameter.
//
// All problems of one pass are reported together in a single
// ResolutionError. Cancellation during prompting propagates unwrapped.
func ResolveParameters(params *ParamSet, tokens []string, opts ResolveOptions) (*Binding, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	parser := NewParser(params)
	parser.Feed(tokens...)
	binding, problems := parser.Finish(opts.Interactive)

	// Any problem other than a missing value stays fatal even
	// interactively; missing values were already converted into absences
	// above when interactive.
	if len(problems) > 0 {
		return nil, &ResolutionError{Problems: problems}
	}

	if !opts.Interactive {
		return binding, nil
	}

	for _, param := range params.params {
		if binding.Has(param.BindingKey) {
			continue
		}
		value, err := askValue(param, opts.Prompter)
		if err != nil {
			return nil, err
		}
		if param.Variadic {
			value = []any{value}
		}
		binding.set(param.BindingKey, value)
	}

	return binding, nil
}

// askValue prompts for a single parameter. Booleans get a yes/no question,
// literal sets a choice menu, and everything else a free-text loop that
// keeps asking until the input coerces, reporting failures through the
// prompter's error channel.
func askValue(param *ParameterSpec, pr prompt.Prompter) (any, error) {
	label := param.promptLabel()

	// An optional type is asked for as its wrapped type. Unions get no
	// special treatment: there is no obvious way to ask for a union value,
	// so the free-text loop parses against the whole union.
	asked := param.Type.concrete()

	switch asked.Kind {
	case KindBool:
		return pr.AskYesNo(label)

	case KindLiteral:
		options := make([]prompt.Option, len(asked.Literals))
		for i, literal := range asked.Literals {
			options[i] = prompt.Option{Display: prettyName(literal), Value: literal}
		}
		return pr.AskChoice(label, options)

	default:
		for {
			raw, err := pr.AskText(label)
			if err != nil {
				return nil, err
			}
			value, cerr := Coerce(raw, param.Type)
			if cerr != nil {
				pr.Errorf("%s", cerr.Message)
				continue
			}
			return value, nil
		}
	}
}
