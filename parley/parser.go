package parley

// Parser is the token-classification state machine: it consumes raw tokens
// one at a time, bucketing each as a long flag, clustered short flags, a
// positional value or the end-of-flags marker, and accumulates raw string
// assignments per parameter. One Parser serves exactly one resolution pass
// and is not reused.
//
// Parsing never aborts early: problems are collected so a single pass can
// report everything it found.
type Parser struct {
	params *ParamSet

	// pending accumulates raw assignments keyed by canonical parameter name
	// when the flag resolved, or by the name as typed when it did not.
	// Insertion order within one parameter's list matters for variadic
	// parameters; pendingOrder keeps cross-parameter order deterministic
	// for the leftover check.
	pending      map[string][]string
	pendingOrder []string

	// awaiting names the flag whose value comes from the next token.
	// Empty means no flag is waiting.
	awaiting string

	// flagsAllowed turns false once a bare "--" is seen; after that every
	// token is positional, even ones shaped like flags.
	flagsAllowed bool

	// nextPositional is the cursor into the declared positional list.
	nextPositional int

	// overflow holds tokens that fit no declared parameter.
	overflow []string

	errors []string
}

// NewParser creates a parser over the given declared parameters.
func NewParser(params *ParamSet) *Parser {
	return &Parser{
		params:       params,
		pending:      make(map[string][]string),
		flagsAllowed: true,
	}
}

// Feed processes tokens in order.
func (p *Parser) Feed(tokens ...string) {
	for _, token := range tokens {
		p.FeedOne(token)
	}
}

// FeedOne advances the state machine by a single token.
func (p *Parser) FeedOne(token string) {
	// A flag is still looking for its value; this token is it.
	if p.awaiting != "" {
		p.assign(p.awaiting, token)
		p.awaiting = ""
		return
	}

	if p.flagsAllowed {
		// "--" freezes flag interpretation for the rest of the stream.
		if token == "--" {
			p.flagsAllowed = false
			return
		}

		if name, value, hasValue, ok := splitLongFlag(token); ok {
			p.feedFlags([]string{name}, value, hasValue, false)
			return
		}

		if letters, value, hasValue, ok := splitShortFlags(token); ok {
			p.feedFlags(letters, value, hasValue, true)
			return
		}
	}

	// Positional: fill declared positionals in declaration order. A
	// variadic positional keeps accumulating; everything past the declared
	// list is overflow.
	if p.nextPositional < len(p.params.positional) {
		param := p.params.positional[p.nextPositional]
		p.assign(param.Name, token)
		if !param.Variadic {
			p.nextPositional++
		}
		return
	}
	p.overflow = append(p.overflow, token)
}

// feedFlags handles one flag token's worth of names. For clustered short
// flags every letter but the last must be a declared boolean shorthand; the
// last name takes the inline value, implies true for booleans, or waits for
// the next token.
//
// Long flags are looked up by their literal declared name. Fuzzy matching is
// a discovery concern for commands and options, not token classification.
func (p *Parser) feedFlags(names []string, value string, hasValue bool, shorthand bool) {
	lookup := func(name string) (*ParameterSpec, bool) {
		if shorthand {
			if len(name) != 1 {
				return nil, false
			}
			spec, ok := p.params.byShorthand[rune(name[0])]
			return spec, ok
		}
		spec, ok := p.params.byName[name]
		return spec, ok
	}

	for _, boolName := range names[:len(names)-1] {
		spec, ok := lookup(boolName)
		if !ok || !spec.Type.isBool() {
			p.errors = append(p.errors, "Missing value for `-"+boolName+"`")
			continue
		}
		p.assign(spec.Name, "true")
	}

	last := names[len(names)-1]
	key := last
	spec, known := lookup(last)
	if known {
		key = spec.Name
	}

	if hasValue {
		p.assign(key, value)
		return
	}

	// A bare boolean flag means true by its mere presence.
	if known && spec.Type.isBool() {
		p.assign(key, "true")
		return
	}

	// Unresolved or non-boolean: the next token is the value.
	p.awaiting = key
}

func (p *Parser) assign(key, raw string) {
	if _, seen := p.pending[key]; !seen {
		p.pendingOrder = append(p.pendingOrder, key)
	}
	p.pending[key] = append(p.pending[key], raw)
}

// Finish completes the pass: imputes defaults, coerces every accumulated raw
// value, and returns the binding alongside the full list of problems. When
// allowMissing is set (interactive resolution), parameters without a value or
// default are left absent instead of being reported.
func (p *Parser) Finish(allowMissing bool) (*Binding, []string) {
	if p.awaiting != "" {
		p.errors = append(p.errors, "Missing value for `"+p.awaiting+"`")
		p.awaiting = ""
	}

	binding := newBinding()

	for _, param := range p.params.params {
		raws, assigned := p.pending[param.Name]
		delete(p.pending, param.Name)

		if !assigned {
			if param.HasDefault {
				binding.set(param.BindingKey, param.Default)
				continue
			}
			if allowMissing {
				continue
			}
			p.errors = append(p.errors, "Missing value for `"+param.Name+"`")
			continue
		}

		if !param.Variadic && len(raws) > 1 {
			p.errors = append(p.errors, "Too many values for `"+param.Name+"`")
			continue
		}

		// Coercion failures accumulate; the remaining values are still
		// processed.
		values := make([]any, 0, len(raws))
		for _, raw := range raws {
			value, cerr := Coerce(raw, param.Type)
			if cerr != nil {
				p.errors = append(p.errors, "Invalid value for `"+param.Name+"`: "+cerr.Message)
				continue
			}
			values = append(values, value)
		}

		if param.Variadic {
			binding.set(param.BindingKey, values)
		} else if len(values) > 0 {
			binding.set(param.BindingKey, values[0])
		}
	}

	// Whatever is still pending was typed as a flag that matches no
	// declared parameter.
	for _, key := range p.pendingOrder {
		raws, left := p.pending[key]
		if !left || len(raws) == 0 {
			continue
		}
		p.errors = append(p.errors, "Unexpected value `"+raws[0]+"`")
	}

	for _, token := range p.overflow {
		p.errors = append(p.errors, "Unexpected value `"+token+"`")
	}

	return binding, p.errors
}

// splitLongFlag recognizes --name and --name=value. The name may contain
// letters, digits and hyphens.
func splitLongFlag(token string) (name, value string, hasValue, ok bool) {
	if len(token) < 3 || token[0] != '-' || token[1] != '-' {
		return "", "", false, false
	}
	rest := token[2:]

	if eq := indexByte(rest, '='); eq != -1 {
		name, value, hasValue = rest[:eq], rest[eq+1:], true
	} else {
		name = rest
	}

	if name == "" || !validFlagName(name, true) {
		return "", "", false, false
	}
	return name, value, hasValue, true
}

// splitShortFlags recognizes -x, -xyz and -xyz=value, returning the clustered
// letters individually. Letters and hyphens only.
func splitShortFlags(token string) (letters []string, value string, hasValue, ok bool) {
	if len(token) < 2 || token[0] != '-' || token[1] == '-' {
		return nil, "", false, false
	}
	rest := token[1:]

	if eq := indexByte(rest, '='); eq != -1 {
		rest, value, hasValue = rest[:eq], rest[eq+1:], true
	}

	if rest == "" || !validFlagName(rest, false) {
		return nil, "", false, false
	}

	letters = make([]string, len(rest))
	for i := 0; i < len(rest); i++ {
		letters[i] = string(rest[i])
	}
	return letters, value, hasValue, true
}

func validFlagName(name string, allowDigits bool) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '-':
		case c >= '0' && c <= '9':
			if !allowDigits {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func indexByte(s string, target byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == target {
			return i
		}
	}
	return -1
}
