package parley

// Binding is the final output of parameter resolution: a mapping from each
// parameter's binding key to its typed value. Variadic parameters bind a
// []any holding every collected value in input order. A parameter that was
// explicitly allowed to stay absent (interactive resolution, before
// prompting) simply has no entry.
type Binding struct {
	values map[string]any
}

func newBinding() *Binding {
	return &Binding{values: make(map[string]any)}
}

func (b *Binding) set(key string, value any) {
	b.values[key] = value
}

// Len returns the number of bound parameters.
func (b *Binding) Len() int { return len(b.values) }

// Has reports whether the parameter with the given binding key was bound.
func (b *Binding) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

// Get returns the raw bound value for the given key.
func (b *Binding) Get(key string) (any, bool) {
	v, ok := b.values[key]
	return v, ok
}

// String returns the bound string value, or fallback when the parameter is
// unbound or holds a different type.
func (b *Binding) String(key, fallback string) string {
	if v, ok := b.values[key].(string); ok {
		return v
	}
	return fallback
}

// Bool returns the bound boolean value, or fallback.
func (b *Binding) Bool(key string, fallback bool) bool {
	if v, ok := b.values[key].(bool); ok {
		return v
	}
	return fallback
}

// Int returns the bound integer value, or fallback.
func (b *Binding) Int(key string, fallback int) int {
	if v, ok := b.values[key].(int); ok {
		return v
	}
	return fallback
}

// Float returns the bound float value, or fallback.
func (b *Binding) Float(key string, fallback float64) float64 {
	if v, ok := b.values[key].(float64); ok {
		return v
	}
	return fallback
}

// Values returns the collected values of a variadic parameter. The second
// return is false when the parameter is unbound or not variadic.
func (b *Binding) Values(key string) ([]any, bool) {
	v, ok := b.values[key].([]any)
	return v, ok
}

// Strings returns the collected values of a variadic string parameter.
func (b *Binding) Strings(key string) ([]string, bool) {
	values, ok := b.Values(key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, isString := v.(string)
		if !isString {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// Map returns a copy of the underlying key to value mapping.
func (b *Binding) Map() map[string]any {
	out := make(map[string]any, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}
