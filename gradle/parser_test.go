package gradle_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	uerrors "github.com/pixelacme/uniparse/errors"
	"github.com/pixelacme/uniparse/gradle"
	"github.com/pixelacme/uniparse/internal/testutil"
	"github.com/pixelacme/uniparse/tree"
	"github.com/stretchr/testify/require"
)

const buildScript = `// Top-level build script
plugins {
    id 'java'
    id 'org.example.tool' version '1.2' apply false
}

group = 'com.example'
sourceCompatibility = JavaVersion.VERSION_17

repositories {
    mavenCentral() /* the default */
}

dependencies {
    implementation 'org.example:lib:1.2.3'
    testImplementation "junit:junit:4.13"
}

application {
    mainClassName = "com.example.Main" // entry point
    debug true
}

tags ['a', "b's"]
buildDir = "build/output"
clean()
`

func buildScriptTree() *tree.Block {
	return testutil.Block("",
		"plugins", testutil.Block("plugins",
			"id", testutil.MultiArgs(
				"value", tree.String("org.example.tool"),
				"version", tree.String("1.2"),
				"apply", tree.Bool(false),
			),
		),
		"group", tree.Assignment("'com.example'"),
		"sourceCompatibility", tree.Assignment("JavaVersion.VERSION_17"),
		"repositories", testutil.Block("repositories", "mavenCentral", tree.Call{}),
		"dependencies", testutil.Block("dependencies",
			"implementation", tree.String("org.example:lib:1.2.3"),
			"testImplementation", tree.String("junit:junit:4.13"),
		),
		"application", testutil.Block("application",
			"mainClassName", tree.Assignment(`"com.example.Main"`),
			"debug", tree.Bool(true),
		),
		"tags", tree.Array{"a", "b's"},
		"buildDir", tree.Assignment(`"build/output"`),
		"clean", tree.Call{},
	)
}

func TestParseBuildScript(t *testing.T) {
	tr, err := gradle.Parse([]byte(buildScript))
	require.NoError(t, err)
	if diff := cmp.Diff(buildScriptTree(), tr.Root, testutil.TreeOpts); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEntries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   string
		want  tree.Node
	}{
		{"single-quoted string", `id 'groovy'`, "id", tree.String("groovy")},
		{"double-quoted string", `id "groovy"`, "id", tree.String("groovy")},
		{"verbatim string", `pattern '\d+'`, "pattern", tree.String(`\d+`)},
		{"bool", `enabled false`, "enabled", tree.Bool(false)},
		{"empty block", `android {}`, "android", tree.NewBlock("android")},
		{"empty call", `google()`, "google", tree.Call{}},
		{"call with args", `exclude('a', true,)`, "exclude", tree.Call{tree.String("a"), tree.Bool(true)}},
		{"empty array", `tags []`, "tags", tree.Array{}},
		{"array with trailing comma", `tags ['a', 'b',]`, "tags", tree.Array{"a", "b"}},
		{"number assignment", `minSdk = 21`, "minSdk", tree.Assignment("21")},
		{"expression assignment", `version = base + '-SNAPSHOT'`, "version", tree.Assignment("base + '-SNAPSHOT'")},
		{
			"multi-line assignment",
			"files = listOf(\n    'a',\n    'b'\n)\nnext true",
			"files",
			tree.Assignment("listOf(\n    'a',\n    'b'\n)"),
		},
		{
			"named arguments",
			`options "opt1" level "debug"`,
			"options",
			testutil.MultiArgs("value", tree.String("opt1"), "level", tree.String("debug")),
		},
		{
			"string then entry on next line",
			"id 'a'\nversion '1'",
			"id",
			tree.String("a"),
		},
		{
			"last write wins",
			"id 'a'\nid 'b'",
			"id",
			tree.String("b"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := gradle.Parse([]byte(tt.input))
			require.NoError(t, err)
			got, ok := tr.Get([]string{tt.key})
			require.True(t, ok)
			if diff := cmp.Diff(tt.want, got, testutil.TreeOpts); diff != "" {
				t.Errorf("entry %q mismatch (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}

func TestParseTrailingCommaTolerance(t *testing.T) {
	with, err := gradle.Parse([]byte(`b { a = "x", }`))
	require.NoError(t, err)
	without, err := gradle.Parse([]byte(`b { a = "x" }`))
	require.NoError(t, err)
	require.True(t, with.Equal(without))
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "// only a comment\n", "/* block */"} {
		tr, err := gradle.Parse([]byte(input))
		require.NoError(t, err)
		require.Equal(t, 0, tr.Root.Len())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		line     int
		expected string
		found    string
	}{
		{"unclosed block", "plugins {\n  id 'java'\n", 3, "an identifier or '}'", "end of input"},
		{"stray brace", "}", 1, "an identifier", "'}'"},
		{"missing assignment value", "x = ", 1, "an expression", "end of input"},
		{"unbalanced expression", "x = foo(\n", 2, "a closing bracket", "end of input"},
		{"bad call argument", "deps(1)", 1, "a string, a boolean or ')'", `IDENT "1"`},
		{"unseparated call arguments", "deps('a' 'b')", 1, "',' or ')'", `string "b"`},
		{"bad array element", "tags [true]", 1, "a string or ']'", `BOOL "true"`},
		{"bare identifier", "clean\nbuild()", 1, "a value after 'clean'", "end of line"},
		{"dangling named argument", "id 'x' version {", 1, "a string or a boolean after 'version'", "'{'"},
		{"closure after call", "tasks.register('x') {\n}", 1, "an identifier", "'{'"},
		{"value as argument name", "id 'x' value 'y'", 1, "an argument name other than 'value'", `IDENT "value"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := gradle.Parse([]byte(tt.input))
			require.Nil(t, tr)

			var parseErr *uerrors.ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			require.Equal(t, tt.line, parseErr.Line)
			require.Equal(t, tt.expected, parseErr.Expected)
			require.Equal(t, tt.found, parseErr.Found)
		})
	}
}

func TestParseLexErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		message string
	}{
		{"unterminated string", "a {\n  id 'java\n}", 2, "unterminated string"},
		{"unexpected character", "a $b", 1, `unexpected character '$'`},
		{"unterminated comment", "a true\n/* open", 2, "unterminated block comment"},
		{"inside assignment", "x = a\ny = b # c", 2, `unexpected character '#'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gradle.Parse([]byte(tt.input))
			var lexErr *uerrors.LexError
			require.True(t, errors.As(err, &lexErr), "got %v", err)
			require.Equal(t, tt.line, lexErr.Line)
			require.Equal(t, tt.message, lexErr.Message)
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	input := []byte("a { b { c { } } }")

	_, err := gradle.Parser{MaxDepth: 2}.Parse(input)
	var parseErr *uerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.Equal(t, "deeper nesting", parseErr.Found)

	_, err = gradle.Parser{MaxDepth: 3}.Parse(input)
	require.NoError(t, err)
}

func TestExampleScenario(t *testing.T) {
	tr, err := gradle.Parse([]byte(`plugins { id 'groovy' }`))
	require.NoError(t, err)

	require.NoError(t, tr.Set([]string{"plugins", "extra"}, tree.Bool(true)))
	got, ok := tr.Get([]string{"plugins", "extra"})
	require.True(t, ok)
	require.Equal(t, tree.Bool(true), got)

	_, err = tr.Remove([]string{"plugins", "id"})
	require.NoError(t, err)
	_, ok = tr.Get([]string{"plugins", "id"})
	require.False(t, ok)
}

func TestParseSample(t *testing.T) {
	src, err := testutil.ReadTestData("build.gradle")
	require.NoError(t, err)

	tr, err := gradle.Parse(src)
	require.NoError(t, err)
	require.Equal(t, []string{
		"plugins", "group", "version", "sourceCompatibility", "repositories",
		"dependencies", "application", "jar", "tasks", "clean",
	}, tr.Root.Keys())

	got, ok := tr.Get([]string{"application", "applicationDefaultJvmArgs"})
	require.True(t, ok)
	require.Equal(t, tree.Assignment("['-Xmx512m']"), got)

	got, ok = tr.Get([]string{"tasks"})
	require.True(t, ok)
	require.Equal(t, tree.Array{"build", "test"}, got)
}
