package convert_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/pixelacme/uniparse/convert"
	"github.com/pixelacme/uniparse/gradle"
	"github.com/pixelacme/uniparse/tree"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const script = `
plugins {
    id 'java'
    id 'org.example.tool' version '1.2' apply false
}
group = 'com.example'
tasks ['build', 'test']
clean('all', true)
`

func parse(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := gradle.Parse([]byte(script))
	require.NoError(t, err)
	return tr
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want convert.Format
	}{
		{"json", convert.JSON},
		{"YAML", convert.YAML},
		{"yml", convert.YAML},
		{"toml", convert.TOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convert.ParseFormat(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := convert.ParseFormat("xml")
	require.EqualError(t, err, `convert: unknown format "xml"`)
	require.Len(t, convert.Formats(), 3)
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, convert.Write(&buf, convert.JSON, parse(t)))

	want := `{
  "plugins": {
    "id": {
      "value": "org.example.tool",
      "version": "1.2",
      "apply": false
    }
  },
  "group": "com.example",
  "tasks": [
    "build",
    "test"
  ],
  "clean": [
    "all",
    true
  ]
}
`
	require.Equal(t, want, buf.String())
	require.True(t, json.Valid(buf.Bytes()))
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, convert.Write(&buf, convert.YAML, parse(t)))

	want := `plugins:
  id:
    value: org.example.tool
    version: "1.2"
    apply: false
group: com.example
tasks:
  - build
  - test
clean:
  - all
  - true
`
	require.Equal(t, want, buf.String())

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, "com.example", back["group"])
}

func TestYAMLKeepsStringsQuoted(t *testing.T) {
	n := convert.Node(tree.String("true"))
	out, err := yaml.Marshal(n)
	require.NoError(t, err)
	require.Equal(t, "\"true\"\n", string(out))

	require.Equal(t, yaml.ScalarNode, convert.Node(nil).Kind)
	require.Equal(t, "!!null", convert.Node(nil).Tag)
}

func TestTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, convert.Write(&buf, convert.TOML, parse(t)))

	var back map[string]any
	_, err := toml.Decode(buf.String(), &back)
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"plugins": map[string]any{
			"id": map[string]any{
				"value":   "org.example.tool",
				"version": "1.2",
				"apply":   false,
			},
		},
		"group": "com.example",
		"tasks": []any{"build", "test"},
		"clean": []any{"all", true},
	}, back)
}

func TestEmptyTree(t *testing.T) {
	tests := []struct {
		format convert.Format
		want   string
	}{
		{convert.JSON, "{}\n"},
		{convert.YAML, "{}\n"},
		{convert.TOML, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, convert.Write(&buf, tt.format, tree.New()))
			require.Equal(t, tt.want, buf.String())
		})
	}

	var buf bytes.Buffer
	require.NoError(t, convert.Write(&buf, convert.JSON, nil))
	require.Equal(t, "{}\n", buf.String())
	require.Error(t, convert.Write(&buf, convert.Format("ini"), tree.New()))
}
