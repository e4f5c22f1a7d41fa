package source_test

import (
	"testing"

	"github.com/UnknownOlympus/meridian/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	t.Run("valid counts", func(t *testing.T) {
		for arg, want := range map[string]int{"2": 2, "5": 5, "12": 12, "1000": 1000} {
			got, err := source.ParseCount(arg)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("invalid counts", func(t *testing.T) {
		for _, arg := range []string{"0", "1", "-5", "abc", "", "2.5", "1e3", " 3"} {
			got, err := source.ParseCount(arg)
			require.ErrorIs(t, err, source.ErrInvalidArgument, "argument %q", arg)
			assert.Zero(t, got)
		}
	})

	t.Run("error message is descriptive", func(t *testing.T) {
		_, err := source.ParseCount("abc")
		require.ErrorContains(t, err, `"abc" is not an integer`)

		_, err = source.ParseCount("1")
		require.ErrorContains(t, err, "has to be at least 2")
	})
}
