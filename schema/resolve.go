package schema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	HelpOption    = "help"    // HelpOption is the name of the injected help flag.
	VersionOption = "version" // VersionOption is the name of the injected version flag.
)

// Map is a declaration ordered mapping of option name to [Option].
// The zero value is not usable, use [NewMap].
type Map struct {
	entries *orderedmap.OrderedMap[string, Option]
}

// NewMap creates an empty [Map].
func NewMap() *Map {
	return &Map{entries: orderedmap.New[string, Option]()}
}

// Set declares an option.
// Setting a name that already exists replaces its [Option] but keeps its original position.
// A nil [Option] is ignored.
func (m *Map) Set(name string, opt Option) *Map {
	if opt == nil {
		return m
	}
	m.entries.Set(name, opt)
	return m
}

// Get returns the [Option] declared with name, if any.
func (m *Map) Get(name string) (Option, bool) {
	if m == nil {
		return nil, false
	}
	return m.entries.Get(name)
}

// Len returns the number of declared options.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.entries.Len()
}

func (m *Map) merge(other *Map) *Map {
	if other == nil {
		return m
	}
	for pair := other.entries.Oldest(); pair != nil; pair = pair.Next() {
		m.Set(pair.Key, pair.Value)
	}
	return m
}

// Resolve produces the ordered [Descriptor] list for a [Map].
// A nil [Map] resolves to an empty list.
func Resolve(m *Map) []Descriptor {
	if m == nil {
		return []Descriptor{}
	}
	descriptors := make([]Descriptor, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		descriptors = append(descriptors, Descriptor{Name: pair.Key, Option: pair.Value})
	}
	return descriptors
}

func helpOption() Option {
	return Bool{Meta: Meta{Alias: "h", Description: "Prints this usage information"}}
}

func versionOption() Option {
	return Bool{Meta: Meta{Alias: "v", Description: "Prints the version"}}
}

// ResolveBase resolves m after injecting the [HelpOption] (-h) and [VersionOption] (-v) booleans.
// The built-ins come first, and options in m are merged after them, so m may override either one.
func ResolveBase(m *Map) []Descriptor {
	base := NewMap().
		Set(HelpOption, helpOption()).
		Set(VersionOption, versionOption())
	return Resolve(base.merge(m))
}

// ResolveHelp is like [ResolveBase], but only injects the [HelpOption].
func ResolveHelp(m *Map) []Descriptor {
	base := NewMap().Set(HelpOption, helpOption())
	return Resolve(base.merge(m))
}

// Find returns the first [Descriptor] with the given name.
func Find(descriptors []Descriptor, name string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}
