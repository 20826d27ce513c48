package parley

import (
	"fmt"
	"strings"
)

// TypeKind identifies the shape of a parameter's declared type.
type TypeKind string

const (
	KindString   TypeKind = "string"
	KindBool     TypeKind = "bool"
	KindInt      TypeKind = "int"
	KindFloat    TypeKind = "float"
	KindLiteral  TypeKind = "literal"
	KindOptional TypeKind = "optional"
	KindUnion    TypeKind = "union"
)

// TypeSpec is a declared parameter type: a primitive, a literal set, or a
// composite built from other TypeSpecs. TypeSpecs are immutable once built
// and safe to share across parameter lists.
type TypeSpec struct {
	Kind TypeKind

	// Literals holds the valid values for KindLiteral.
	Literals []string

	// Members holds the member types for KindUnion, in declared order,
	// or the single wrapped type for KindOptional.
	Members []TypeSpec
}

// Primitive type constructors.

func String() TypeSpec { return TypeSpec{Kind: KindString} }
func Bool() TypeSpec   { return TypeSpec{Kind: KindBool} }
func Int() TypeSpec    { return TypeSpec{Kind: KindInt} }
func Float() TypeSpec  { return TypeSpec{Kind: KindFloat} }

// Literal builds a literal-set type: the value must be one of the given
// strings, selected with the usual name-matching leeway.
func Literal(values ...string) TypeSpec {
	return TypeSpec{Kind: KindLiteral, Literals: values}
}

// Optional wraps a type so that missing is an acceptable resolved state.
func Optional(member TypeSpec) TypeSpec {
	return TypeSpec{Kind: KindOptional, Members: []TypeSpec{member}}
}

// Union builds a union type. Coercion tries each member in declared order.
func Union(members ...TypeSpec) TypeSpec {
	return TypeSpec{Kind: KindUnion, Members: members}
}

// String renders the type for error messages.
func (t TypeSpec) String() string {
	switch t.Kind {
	case KindString, KindBool, KindInt, KindFloat:
		return string(t.Kind)
	case KindLiteral:
		return "one of " + strings.Join(t.Literals, ", ")
	case KindOptional:
		return "optional " + t.Members[0].String()
	case KindUnion:
		names := make([]string, len(t.Members))
		for i, m := range t.Members {
			names[i] = m.String()
		}
		return strings.Join(names, " or ")
	default:
		return string(t.Kind)
	}
}

// concrete unwraps optional wrappers, returning the underlying type the user
// is actually asked for. Unions are returned as-is: there is no obvious way
// to ask for a union value, so callers fall back to free-text entry.
func (t TypeSpec) concrete() TypeSpec {
	for t.Kind == KindOptional {
		t = t.Members[0]
	}
	return t
}

// isBool reports whether a bare flag of this type implies the value "true".
// Only a plain bool qualifies; optional(bool) still wants an explicit value.
func (t TypeSpec) isBool() bool {
	return t.Kind == KindBool
}

// ParameterSpec declares one formal parameter of a command. Constructed once
// when the command is registered, immutable afterwards, and shared read-only
// across invocations.
type ParameterSpec struct {
	// Name is the console-facing name, kebab-case, unique in its list.
	Name string

	// Shorthand is an optional single-character flag alias. Zero means none.
	Shorthand rune

	// BindingKey identifies the parameter in the resolved Binding. Defaults
	// to Name.
	BindingKey string

	// Prompt overrides the text used when asking for this value
	// interactively. Empty means derive from Name.
	Prompt string

	Type TypeSpec

	// Flag parameters are named and order-independent; the rest are
	// positional and filled in declaration order.
	Flag bool

	// Variadic parameters collect one or more values. At most one variadic
	// positional per list, and it must be the last positional.
	Variadic bool

	// Default is the value used when no raw value arrives. HasDefault
	// distinguishes "no default" from "default is nil".
	Default    any
	HasDefault bool
}

// promptLabel returns the text used when asking for this parameter: the
// explicit prompt, or the name with hyphens as spaces, title-cased.
func (p *ParameterSpec) promptLabel() string {
	if p.Prompt != "" {
		return p.Prompt
	}
	return prettyName(p.Name)
}

// prettyName converts a console name to a human-readable one:
// "dry-run" becomes "Dry Run".
func prettyName(name string) string {
	words := strings.Split(name, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// ParamSet is an ordered parameter list plus the lookup indexes the parser
// needs. Built once per command and reused read-only across resolutions.
type ParamSet struct {
	params []*ParameterSpec

	byName      map[string]*ParameterSpec
	byShorthand map[rune]*ParameterSpec
	positional  []*ParameterSpec
}

// NewParams creates an empty parameter list.
func NewParams() *ParamSet {
	return &ParamSet{
		byName:      make(map[string]*ParameterSpec),
		byShorthand: make(map[rune]*ParameterSpec),
	}
}

// All returns the declared parameters in declaration order.
func (s *ParamSet) All() []*ParameterSpec { return s.params }

// Len returns the number of declared parameters.
func (s *ParamSet) Len() int { return len(s.params) }

// add registers a spec and indexes it. Flags are looked up by their literal
// declared name; fuzziness is a discovery concern, not a token-classification
// one.
func (s *ParamSet) add(spec *ParameterSpec) *ParamBuilder {
	if spec.BindingKey == "" {
		spec.BindingKey = spec.Name
	}
	s.params = append(s.params, spec)
	if spec.Flag {
		s.byName[spec.Name] = spec
	} else {
		s.positional = append(s.positional, spec)
	}
	return &ParamBuilder{set: s, spec: spec}
}

// Positional declares a positional parameter of the given type.
func (s *ParamSet) Positional(name string, t TypeSpec) *ParamBuilder {
	return s.add(&ParameterSpec{Name: name, Type: t})
}

// Flag declares a named flag parameter of the given type.
func (s *ParamSet) Flag(name string, t TypeSpec) *ParamBuilder {
	return s.add(&ParameterSpec{Name: name, Type: t, Flag: true})
}

// validate checks the invariants that are assumed, not rechecked, at parse
// time: name uniqueness and variadic placement.
func (s *ParamSet) validate() error {
	seen := make(map[string]struct{}, len(s.params))
	for _, p := range s.params {
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("duplicate parameter name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	for i, p := range s.positional {
		if p.Variadic && i != len(s.positional)-1 {
			return fmt.Errorf("variadic parameter %q must be the last positional parameter", p.Name)
		}
	}
	return nil
}

// ParamBuilder configures the most recently declared parameter. All methods
// return the builder for chaining; Done returns to the owning set.
type ParamBuilder struct {
	set  *ParamSet
	spec *ParameterSpec
}

// Short sets a single-character shorthand usable as -x.
func (b *ParamBuilder) Short(short rune) *ParamBuilder {
	b.spec.Shorthand = short
	if b.spec.Flag {
		b.set.byShorthand[short] = b.spec
	}
	return b
}

// BindAs overrides the key under which the resolved value is stored.
func (b *ParamBuilder) BindAs(key string) *ParamBuilder {
	b.spec.BindingKey = key
	return b
}

// Default sets the value used when the parameter receives no raw value.
// A nil default is distinct from no default.
func (b *ParamBuilder) Default(value any) *ParamBuilder {
	b.spec.Default = value
	b.spec.HasDefault = true
	return b
}

// Variadic makes the parameter collect one or more values.
func (b *ParamBuilder) Variadic() *ParamBuilder {
	b.spec.Variadic = true
	return b
}

// Prompt sets the text shown when asking for this value interactively.
func (b *ParamBuilder) Prompt(prompt string) *ParamBuilder {
	b.spec.Prompt = prompt
	return b
}

// Done returns the owning parameter set for continued declaration.
func (b *ParamBuilder) Done() *ParamSet { return b.set }
