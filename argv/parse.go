package argv

import (
	"github.com/saylorsolutions/clif/env"
	"github.com/saylorsolutions/clif/schema"
	"strconv"
	"strings"
)

// Separator ends flag recognition.
const Separator = "--"

// Config controls how arguments are interpreted.
// The zero value is non-strict and never consults the environment.
type Config struct {
	// Strict causes any unknown flag to fail parsing with an [UnknownOptionError].
	Strict bool
	// Env is used to fill in absent options that declare an environment variable.
	Env env.Lookup
}

// IsFlag reports whether arg looks like a flag.
func IsFlag(arg string) bool {
	return strings.HasPrefix(arg, "-")
}

// match finds the first descriptor for arg, splitting an inline value at the first '='.
func match(arg string, descriptors []schema.Descriptor) (d schema.Descriptor, flag, value string, inline, ok bool) {
	flag, value, inline = strings.Cut(arg, "=")
	for _, d := range descriptors {
		if flag == d.Flag() {
			return d, flag, value, inline, true
		}
		if short := d.Short(); len(short) > 0 && flag == short {
			return d, flag, value, inline, true
		}
	}
	return schema.Descriptor{}, flag, "", false, false
}

func coerce(d schema.Descriptor, flag, raw string) (any, error) {
	switch d.Kind() {
	case schema.Number:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &InvalidNumberError{Flag: flag, Value: raw, Err: err}
		}
		return n, nil
	case schema.Boolean:
		b, ok := env.ParseBool(raw)
		if !ok {
			return nil, &InvalidBooleanError{Flag: flag, Value: raw}
		}
		return b, nil
	default:
		return raw, nil
	}
}

// Scan tokenizes args without applying environment fallbacks, strict mode, or required checks.
// See [Validate] for those, or use [Parse] to do both.
func Scan(args []string, descriptors []schema.Descriptor) (*Result, error) {
	res := newResult()
	for i := 0; i < len(args); {
		arg := args[i]
		if arg == Separator {
			res.Positionals = append(res.Positionals, args[i+1:]...)
			break
		}
		if !IsFlag(arg) {
			res.Positionals = append(res.Positionals, arg)
			i++
			continue
		}
		d, flag, value, inline, ok := match(arg, descriptors)
		if !ok {
			res.Unknown = append(res.Unknown, arg)
			i++
			continue
		}
		if d.Kind() == schema.Boolean {
			if inline {
				return nil, &BooleanOptionValueError{Flag: flag}
			}
			res.Options.Set(d.Name, true)
			i++
			continue
		}

		step := 1
		if !inline {
			if i+1 >= len(args) || IsFlag(args[i+1]) {
				return nil, &MissingParameterError{Flag: flag}
			}
			value = args[i+1]
			step = 2
		}
		if len(value) == 0 {
			return nil, &MissingParameterError{Flag: flag}
		}
		coerced, err := coerce(d, flag, value)
		if err != nil {
			return nil, err
		}
		res.Options.Set(d.Name, coerced)
		i += step
	}
	return res, nil
}

// Validate completes a [Result] from [Scan].
// Absent options with an environment variable are filled in from [Config.Env] first.
// Then strict mode is enforced, and finally every required option must have a value.
//
// The [Result] may have been partially filled in from the environment when an error is returned, so it should be discarded.
func Validate(res *Result, descriptors []schema.Descriptor, cfg Config) error {
	for _, d := range descriptors {
		key := d.Env()
		if len(key) == 0 || res.Has(d.Name) {
			continue
		}
		raw := cfg.Env.Val(key, "")
		if len(raw) == 0 {
			continue
		}
		coerced, err := coerce(d, "$"+key, raw)
		if err != nil {
			return err
		}
		res.Options.Set(d.Name, coerced)
	}
	if cfg.Strict && len(res.Unknown) > 0 {
		return &UnknownOptionError{Flag: res.Unknown[0]}
	}
	for _, d := range descriptors {
		if d.Required() && !res.Has(d.Name) {
			return &RequiredOptionMissingError{Name: d.Name}
		}
	}
	return nil
}

// Parse tokenizes args against descriptors and validates the outcome.
// No [Result] is returned if there is an error.
func Parse(args []string, descriptors []schema.Descriptor, cfg Config) (*Result, error) {
	res, err := Scan(args, descriptors)
	if err != nil {
		return nil, err
	}
	if err := Validate(res, descriptors, cfg); err != nil {
		return nil, err
	}
	return res, nil
}

// Requests reports whether args contain the bare flag form of d before any [Separator].
// This doesn't need args to be otherwise valid, so it can be used to honor a help flag when parsing fails.
func Requests(args []string, d schema.Descriptor) bool {
	short := d.Short()
	for _, arg := range args {
		if arg == Separator {
			return false
		}
		if arg == d.Flag() || (len(short) > 0 && arg == short) {
			return true
		}
	}
	return false
}
