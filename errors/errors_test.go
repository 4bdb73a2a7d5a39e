package errors_test

import (
	"errors"
	"fmt"
	"testing"

	uerrors "github.com/pixelacme/uniparse/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "lex error",
			err:      &uerrors.LexError{Line: 3, Message: "unterminated string"},
			expected: "uniparse: lexical error at line 3: unterminated string",
		},
		{
			name:     "parse error",
			err:      &uerrors.ParseError{Line: 7, Expected: "'='", Found: "'}'"},
			expected: "uniparse: parse error at line 7: expected '=', found '}'",
		},
		{
			name:     "missing field",
			err:      uerrors.MissingField("module"),
			expected: `uniparse: missing required field "module"`,
		},
		{
			name:     "unsupported while parsing",
			err:      &uerrors.UnsupportedConstructError{Grammar: "gomod", Construct: "replace directive", Line: 4},
			expected: "uniparse: gomod: unsupported construct at line 4: replace directive",
		},
		{
			name:     "unsupported while printing",
			err:      &uerrors.UnsupportedConstructError{Grammar: "zon", Construct: "call value"},
			expected: "uniparse: zon: unsupported construct: call value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("reading build.gradle: %w", &uerrors.LexError{Line: 1, Message: "x"})

	var lexErr *uerrors.LexError
	require.True(t, errors.As(wrapped, &lexErr))
	require.Equal(t, 1, lexErr.Line)

	var parseErr *uerrors.ParseError
	require.False(t, errors.As(wrapped, &parseErr))
}
