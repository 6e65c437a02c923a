package schema

import "fmt"

// Kind identifies the type of value an [Option] accepts.
type Kind int

const (
	Boolean Kind = iota // Boolean options are switches that never take a parameter.
	String              // String options take a parameter as-is.
	Number              // Number options take a parameter that must be an integer.
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Number:
		return "number"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Meta holds the details shared by every kind of [Option].
type Meta struct {
	Alias       string // Alias is an optional, single character short name used as "-a".
	Required    bool   // Required options must be present after parsing, or parsing fails.
	Description string // Description is shown in help output.
	Usage       string // Usage names the parameter in help output, like "PATH".
	Env         string // Env names an environment variable consulted when the option is absent from arguments.
}

// Option is a declared command line option.
// The set of implementations is closed: [Bool], [Str], and [Num].
type Option interface {
	Kind() Kind
	info() Meta
}

// Bool is an [Option] that is either present (true) or absent.
type Bool struct {
	Meta
}

func (Bool) Kind() Kind {
	return Boolean
}

func (o Bool) info() Meta {
	return o.Meta
}

// Str is an [Option] that takes a string parameter.
type Str struct {
	Meta
}

func (Str) Kind() Kind {
	return String
}

func (o Str) info() Meta {
	return o.Meta
}

// Num is an [Option] that takes an integer parameter.
type Num struct {
	Meta
}

func (Num) Kind() Kind {
	return Number
}

func (o Num) info() Meta {
	return o.Meta
}

// Descriptor is a resolved [Option] annotated with its name.
type Descriptor struct {
	Name   string
	Option Option
}

// Kind returns the [Kind] of the underlying [Option].
func (d Descriptor) Kind() Kind {
	return d.Option.Kind()
}

func (d Descriptor) Alias() string {
	return d.Option.info().Alias
}

func (d Descriptor) Required() bool {
	return d.Option.info().Required
}

func (d Descriptor) Description() string {
	return d.Option.info().Description
}

func (d Descriptor) Usage() string {
	return d.Option.info().Usage
}

func (d Descriptor) Env() string {
	return d.Option.info().Env
}

// Flag returns the long form of this option, like "--name".
func (d Descriptor) Flag() string {
	return "--" + d.Name
}

// Short returns the alias form of this option, like "-n", or an empty string if there is no alias.
func (d Descriptor) Short() string {
	alias := d.Alias()
	if len(alias) == 0 {
		return ""
	}
	return "-" + alias
}
