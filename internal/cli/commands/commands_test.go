package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/pixelacme/uniparse/internal/cli/config"
	"github.com/pixelacme/uniparse/tree"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.Execute())
	require.Equal(t, "uniparse v1.2.3\ngrammars: gradle, zon, gomod\n", buf.String())
	require.Equal(t, "version", cmd.Use)
	require.NotEmpty(t, cmd.Short)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		typ   string
		value string
		want  tree.Node
	}{
		{"string", "hello", tree.String("hello")},
		{"string", "", tree.String("")},
		{"bool", "true", tree.Bool(true)},
		{"bool", "0", tree.Bool(false)},
		{"assignment", "JavaVersion.VERSION_17", tree.Assignment("JavaVersion.VERSION_17")},
		{"array", "a, b,c", tree.Array{"a", "b", "c"}},
		{"array", "", tree.Array{}},
		{"block", "ignored", tree.NewBlock("")},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.value, func(t *testing.T) {
			got, err := parseValue(tt.typ, tt.value)
			require.NoError(t, err)
			require.True(t, tree.Equal(tt.want, got), "got %#v", got)
		})
	}

	errTests := []struct {
		typ, value, errSub string
	}{
		{"bool", "maybe", `invalid bool value "maybe"`},
		{"assignment", "  ", "assignment value must not be empty"},
		{"number", "1", `unknown value type "number"`},
	}
	for _, tt := range errTests {
		t.Run("error/"+tt.typ, func(t *testing.T) {
			_, err := parseValue(tt.typ, tt.value)
			require.ErrorContains(t, err, tt.errSub)
		})
	}
}

func TestPrintNode(t *testing.T) {
	b := tree.NewBlock("deps")
	b.Set("z", tree.String("1"))
	b.Set("a", tree.Bool(true))

	tests := []struct {
		name string
		node tree.Node
		want string
	}{
		{"string", tree.String("x"), "x\n"},
		{"bool", tree.Bool(false), "false\n"},
		{"assignment", tree.Assignment("'1.0'"), "'1.0'\n"},
		{"array", tree.Array{"a", "b"}, "[\n  \"a\",\n  \"b\"\n]\n"},
		{"call", tree.Call{tree.String("a"), tree.Bool(true)}, "[\n  \"a\",\n  true\n]\n"},
		{"block keeps order", b, "{\n  \"z\": \"1\",\n  \"a\": true\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printNode(&buf, tt.node))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteDiff(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDiff(&buf, "f", "a\n", "a\n", false))
	require.Empty(t, buf.String())

	before := "a   'x'\nb true\n"
	after := "a 'x'\nb true\n"
	require.NoError(t, writeDiff(&buf, "build.gradle", before, after, false))
	require.Equal(t, "--- build.gradle\n+++ build.gradle (formatted)\n-a   'x'\n+a 'x'\n b true\n", buf.String())

	buf.Reset()
	require.NoError(t, writeDiff(&buf, "build.gradle", before, after, true))
	require.Contains(t, buf.String(), "\x1b[31m-a   'x'")
	require.Contains(t, buf.String(), "\x1b[32m+a 'x'")
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	require.True(t, useColor(config.ColorAlways, &buf))
	require.False(t, useColor(config.ColorNever, os.Stdout))
	require.False(t, useColor(config.ColorAuto, &buf))

	t.Setenv("NO_COLOR", "1")
	require.False(t, useColor(config.ColorAuto, os.Stdout))
}

func TestJoinPath(t *testing.T) {
	require.Equal(t, "(root)", joinPath(nil))
	require.Equal(t, "a.b", joinPath([]string{"a", "b"}))
}
