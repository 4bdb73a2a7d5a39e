package uniparse_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pixelacme/uniparse"
	"github.com/pixelacme/uniparse/tree"
	"github.com/stretchr/testify/require"
)

type zigManifest struct {
	Name         string                `uniparse:"name"`
	Version      string                `uniparse:"version"`
	Dependencies map[string]dependency `uniparse:"dependencies"`
	Paths        []string              `uniparse:"paths"`
}

type dependency struct {
	URL  string `uniparse:"url"`
	Path string `uniparse:"path"`
	Lazy bool   `uniparse:"lazy"`
}

const zigSource = `.{
    .name = .sample,
    .version = "0.0.1",
    .dependencies = .{
        .clap = .{ .url = "https://example.com/clap.tar.gz" },
        .args = .{ .path = "deps/args", .lazy = true },
    },
    .paths = .{ "build.zig", "src" },
}`

func TestUnmarshal(t *testing.T) {
	var m zigManifest
	err := uniparse.Unmarshal([]byte(zigSource), &m, uniparse.WithGrammar(uniparse.Zon))
	require.NoError(t, err)

	require.Equal(t, zigManifest{
		Name:    ".sample",
		Version: "0.0.1",
		Dependencies: map[string]dependency{
			"clap": {URL: "https://example.com/clap.tar.gz"},
			"args": {Path: "deps/args", Lazy: true},
		},
		Paths: []string{"build.zig", "src"},
	}, m)
}

func TestUnmarshalWithoutGrammar(t *testing.T) {
	var m zigManifest
	err := uniparse.Unmarshal([]byte(zigSource), &m)
	require.ErrorIs(t, err, uniparse.ErrNoGrammar)
}

func TestDecodeNodeWeakTyping(t *testing.T) {
	tr, err := uniparse.Parse(uniparse.Gradle, []byte(`
android {
    minSdk = 21
    debuggable = 'true'
    name "app"
    flavors ['free', 'paid']
}
`))
	require.NoError(t, err)

	var android struct {
		MinSdk     int      `uniparse:"minSdk"`
		Debuggable bool     `uniparse:"debuggable"`
		Name       string   `uniparse:"name"`
		Flavors    []string `uniparse:"flavors"`
	}
	n, ok := tr.Get([]string{"android"})
	require.True(t, ok)
	require.NoError(t, uniparse.DecodeNode(n, &android))
	require.Equal(t, 21, android.MinSdk)
	require.True(t, android.Debuggable)
	require.Equal(t, "app", android.Name)
	require.Equal(t, []string{"free", "paid"}, android.Flavors)
}

func TestDecodeNodeGoMod(t *testing.T) {
	tr, err := uniparse.Parse(uniparse.GoMod, []byte("module m\ngo 1.22\nrequire (\n\ta v1.0.0\n\tb v2.0.0 // indirect\n)\n"))
	require.NoError(t, err)

	var m struct {
		Module  string         `uniparse:"module"`
		Go      string         `uniparse:"go"`
		Require map[string]any `uniparse:"require"`
	}
	require.NoError(t, uniparse.DecodeNode(tr.Root, &m))
	require.Equal(t, "m", m.Module)
	require.Equal(t, "1.22", m.Go)
	require.Equal(t, map[string]any{
		"a": "v1.0.0",
		"b": map[string]any{"version": "v2.0.0", "indirect": true},
	}, m.Require)
}

func TestDecodeNodeErrors(t *testing.T) {
	var notPointer struct{}
	err := uniparse.DecodeNode(tree.NewBlock(""), notPointer)
	var decodeErr *uniparse.DecodeError
	require.True(t, errors.As(err, &decodeErr))

	var n int
	err = uniparse.DecodeNode(tree.String("not a number"), &n)
	require.True(t, errors.As(err, &decodeErr))
	require.Equal(t, "*int", decodeErr.Type.String())
}

func TestDecoder(t *testing.T) {
	var m zigManifest
	dec := uniparse.NewDecoder(strings.NewReader(zigSource), uniparse.WithGrammar(uniparse.Zon))
	require.NoError(t, dec.Decode(&m))
	require.Equal(t, "0.0.1", m.Version)

	_, err := uniparse.NewDecoder(strings.NewReader(zigSource)).Tree()
	require.ErrorIs(t, err, uniparse.ErrNoGrammar)

	_, err = uniparse.NewDecoder(nil, uniparse.WithGrammar(uniparse.Zon)).Tree()
	require.Error(t, err)
}

func TestEncoder(t *testing.T) {
	tr, err := uniparse.NewDecoder(strings.NewReader("module m\ngo 1.22"), uniparse.WithGrammar(uniparse.GoMod)).Tree()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, uniparse.NewEncoder(&buf, uniparse.WithGrammar(uniparse.GoMod)).Encode(tr))
	require.Equal(t, "module m\n\ngo 1.22\n", buf.String())

	err = uniparse.NewEncoder(&buf).Encode(tr)
	require.ErrorIs(t, err, uniparse.ErrNoGrammar)
}
