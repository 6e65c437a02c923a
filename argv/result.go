package argv

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Result is the outcome of parsing an argument vector.
type Result struct {
	// Positionals are non-flag arguments in the order they were given.
	Positionals []string
	// Options maps option names to their values in the order they were recognized.
	// Values are bool, int, or string, depending on the option's kind.
	Options *orderedmap.OrderedMap[string, any]
	// Unknown holds flags that didn't match any option, verbatim and in order.
	Unknown []string
}

func newResult() *Result {
	return &Result{
		Positionals: []string{},
		Options:     orderedmap.New[string, any](),
		Unknown:     []string{},
	}
}

// Has reports whether the named option has a value.
func (r *Result) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Get returns the raw value of the named option.
func (r *Result) Get(name string) (any, bool) {
	if r == nil || r.Options == nil {
		return nil, false
	}
	return r.Options.Get(name)
}

// Bool returns true if the named boolean option was given.
func (r *Result) Bool(name string) bool {
	val, _ := r.Get(name)
	b, _ := val.(bool)
	return b
}

// Str returns the value of the named string option.
func (r *Result) Str(name string) (string, bool) {
	val, _ := r.Get(name)
	s, ok := val.(string)
	return s, ok
}

// Int returns the value of the named number option.
func (r *Result) Int(name string) (int, bool) {
	val, _ := r.Get(name)
	n, ok := val.(int)
	return n, ok
}

// Keys returns option names in recognition order.
func (r *Result) Keys() []string {
	if r == nil || r.Options == nil {
		return nil
	}
	keys := make([]string, 0, r.Options.Len())
	for pair := r.Options.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
