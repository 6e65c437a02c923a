package env

import (
	"os"
	"strconv"
	"strings"
)

// Lookup resolves an environment variable by key, reporting whether it was set.
// Implementations are expected to compare keys case-insensitive.
//
// A nil Lookup behaves as an empty environment.
type Lookup func(key string) (string, bool)

func getEnv() map[string]string {
	envMap := map[string]string{}
	environ := os.Environ()
	for i := 0; i < len(environ); i++ {
		key, val, found := strings.Cut(environ[i], "=")
		if !found {
			continue
		}
		envMap[strings.ToLower(key)] = val
	}
	return envMap
}

// OS returns a [Lookup] backed by the process environment.
// The environment is read on each call, so changes made with [os.Setenv] are visible.
func OS() Lookup {
	return func(key string) (string, bool) {
		val, ok := getEnv()[strings.ToLower(key)]
		return val, ok
	}
}

// Map returns a [Lookup] backed by a fixed set of values, which is mostly useful for tests.
func Map(vals map[string]string) Lookup {
	envMap := make(map[string]string, len(vals))
	for k, v := range vals {
		envMap[strings.ToLower(k)] = v
	}
	return func(key string) (string, bool) {
		val, ok := envMap[strings.ToLower(key)]
		return val, ok
	}
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty after trimming, then the defaultVal will be returned.
func (l Lookup) Val(key string, defaultVal string) string {
	if l == nil {
		return defaultVal
	}
	val, ok := l(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [ParseBool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [ParseBool], and can be changed.
)

// ParseBool translates a string to a boolean using [DefaultTrue] and [DefaultFalse], compared case-insensitive.
// The second return value is false if the string matches neither.
func ParseBool(sval string) (bool, bool) {
	sval = strings.ToLower(strings.TrimSpace(sval))
	if len(sval) == 0 {
		return false, false
	}
	for i := 0; i < len(DefaultTrue); i++ {
		if sval == strings.ToLower(DefaultTrue[i]) {
			return true, true
		}
	}
	for i := 0; i < len(DefaultFalse); i++ {
		if sval == strings.ToLower(DefaultFalse[i]) {
			return false, true
		}
	}
	return false, false
}

// Bool interprets an environment variable as a boolean with [ParseBool].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func (l Lookup) Bool(key string, defaultVal bool) bool {
	bval, ok := ParseBool(l.Val(key, ""))
	if !ok {
		return defaultVal
	}
	return bval
}

// Int will attempt to interpret an environment variable as an integer, returning the defaultVal if the environment variable isn't found or can't be a valid integer.
func (l Lookup) Int(key string, defaultVal int64) int64 {
	sval := l.Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	ival, err := strconv.ParseInt(sval, 10, 64)
	if err != nil {
		return defaultVal
	}
	return ival
}
