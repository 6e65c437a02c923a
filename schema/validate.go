package schema

import (
	"errors"
	"github.com/saylorsolutions/clif/assert"
	"github.com/saylorsolutions/clif/structures/set"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrInvalidSchema = errors.New("invalid option schema")
)

// Validate checks that descriptors can be matched unambiguously.
// Every problem is reported in the returned error, and each one satisfies errors.Is with [ErrInvalidSchema].
//
// Parsing never calls this, it's meant for registration time.
// The parser tolerates collisions by matching the first descriptor in order.
func Validate(descriptors []Descriptor) error {
	var (
		errs    = assert.CollectErrors("; ")
		names   = set.New[string]()
		aliases = set.New[string]()
	)
	for _, d := range descriptors {
		if d.Option == nil {
			errs.Addf("%w: option '%s' has no type", ErrInvalidSchema, d.Name)
			continue
		}
		switch {
		case len(d.Name) == 0:
			errs.Addf("%w: empty option name", ErrInvalidSchema)
		case strings.HasPrefix(d.Name, "-"):
			errs.Addf("%w: option name '%s' must not start with '-'", ErrInvalidSchema, d.Name)
		case strings.ContainsFunc(d.Name, func(r rune) bool { return r == '=' || unicode.IsSpace(r) }):
			errs.Addf("%w: option name '%s' must not contain '=' or whitespace", ErrInvalidSchema, d.Name)
		case !names.Claim(d.Name):
			errs.Addf("%w: duplicate option name '%s'", ErrInvalidSchema, d.Name)
		}

		alias := d.Alias()
		if len(alias) == 0 {
			continue
		}
		switch {
		case utf8.RuneCountInString(alias) != 1:
			errs.Addf("%w: alias '%s' of option '%s' must be a single character", ErrInvalidSchema, alias, d.Name)
		case alias == "-" || alias == "=" || unicode.IsSpace([]rune(alias)[0]):
			errs.Addf("%w: option '%s' has an invalid alias '%s'", ErrInvalidSchema, d.Name, alias)
		case !aliases.Claim(alias):
			errs.Addf("%w: duplicate alias '%s' on option '%s'", ErrInvalidSchema, alias, d.Name)
		}
	}
	return errs.Result()
}
