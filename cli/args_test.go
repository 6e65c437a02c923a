package cli

import (
	"github.com/saylorsolutions/clif/argv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMapArgs(t *testing.T) {
	tests := map[string]struct {
		positionals []string
		targets     int
		nilTarget   bool
		expected    []string
		usageError  bool
		mappingErr  bool
	}{
		"Exact": {
			positionals: []string{"a", "b"},
			targets:     2,
			expected:    []string{"a", "b"},
		},
		"Extra positionals": {
			positionals: []string{"a", "b", "c"},
			targets:     2,
			expected:    []string{"a", "b"},
		},
		"Optional target": {
			positionals: []string{"a", "b"},
			targets:     3,
			expected:    []string{"a", "b", "unset"},
		},
		"Not enough positionals": {
			positionals: []string{"a"},
			targets:     2,
			usageError:  true,
		},
		"No positionals": {
			targets:    2,
			usageError: true,
		},
		"Not enough targets": {
			positionals: []string{"a", "b"},
			targets:     1,
			mappingErr:  true,
		},
		"Nil target": {
			positionals: []string{"a", "b"},
			targets:     2,
			nilTarget:   true,
			mappingErr:  true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			vals := make([]string, tc.targets)
			targets := make([]*string, tc.targets)
			for i := range vals {
				vals[i] = "unset"
				targets[i] = &vals[i]
			}
			if tc.nilTarget {
				targets[len(targets)-1] = nil
			}

			err := MapArgs(&argv.Result{Positionals: tc.positionals}, 2, targets...)
			switch {
			case tc.usageError:
				assert.ErrorIs(t, err, ErrArgMap)
				assert.ErrorIs(t, err, &UsageError{}, "Missing user input should be a usage error")
			case tc.mappingErr:
				assert.ErrorIs(t, err, ErrArgMap)
				assert.NotErrorIs(t, err, &UsageError{}, "Bad targets are not the user's fault")
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expected, vals)
			}
		})
	}
}

func TestMapArgs_NilResult(t *testing.T) {
	var a string
	assert.ErrorIs(t, MapArgs(nil, 1, &a), &UsageError{})
	assert.NoError(t, MapArgs(nil, 0, &a))
	assert.Empty(t, a)
}
