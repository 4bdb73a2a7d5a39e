package uniparse_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixelacme/uniparse"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func sourceFiles(t testing.TB) []string {
	t.Helper()
	files, err := filepath.Glob("testdata/*")
	require.NoError(t, err)
	var out []string
	for _, file := range files {
		if !strings.HasSuffix(file, ".golden") {
			out = append(out, file)
		}
	}
	return out
}

func TestGolden(t *testing.T) {
	for _, file := range sourceFiles(t) {
		t.Run(filepath.Base(file), func(t *testing.T) {
			g, err := uniparse.DetectGrammar(file)
			require.NoError(t, err)

			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			tr, err := uniparse.Parse(g, src)
			if err != nil {
				// Sources that are expected to fail keep the error message as
				// their golden output.
				actual = []byte(err.Error())
			} else {
				out, err := uniparse.Render(g, tr)
				require.NoError(t, err)
				actual = []byte(out)
			}

			goldenFile := file + ".golden"
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), string(actual), "Output does not match golden file.")
		})
	}
}

// Rendered output is a fixed point: printing it again after a parse yields
// the same text.
func TestGoldenIsStable(t *testing.T) {
	for _, file := range sourceFiles(t) {
		g, err := uniparse.DetectGrammar(file)
		require.NoError(t, err)
		src, err := os.ReadFile(file)
		require.NoError(t, err)

		tr, err := uniparse.Parse(g, src)
		if err != nil {
			continue
		}
		once, err := uniparse.Render(g, tr)
		require.NoError(t, err)

		again, err := uniparse.Parse(g, []byte(once))
		require.NoError(t, err, file)
		twice, err := uniparse.Render(g, again)
		require.NoError(t, err)
		require.Equal(t, once, twice, file)
	}
}
