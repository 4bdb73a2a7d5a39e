package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pixelacme/uniparse/internal/cli/config"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

// NewDiffCommand creates the diff command.
func NewDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff FILE",
		Short: "Show what fmt would change",
		Long: `Compare a file with its normalized form and print the changed lines.
Nothing is printed when the file is already normalized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := openDocument(cmd, args[0])
			if err != nil {
				return err
			}
			formatted, err := doc.render()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cfg := config.FromContext(cmd.Context())
			return writeDiff(out, doc.path, string(src), formatted, useColor(cfg.Color, out))
		},
	}
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// lineDiff diffs a and b line by line.
func lineDiff(a, b string) []diffpatch.Diff {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func writeDiff(w io.Writer, path, before, after string, colored bool) error {
	if before == after {
		return nil
	}

	header := color.New(color.Bold)
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	for _, c := range []*color.Color{header, del, ins} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var b strings.Builder
	b.WriteString(header.Sprint("--- "+path) + "\n")
	b.WriteString(header.Sprint("+++ "+path+" (formatted)") + "\n")
	for _, d := range lineDiff(before, after) {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffpatch.DiffDelete:
				b.WriteString(del.Sprint("-"+line) + "\n")
			case diffpatch.DiffInsert:
				b.WriteString(ins.Sprint("+"+line) + "\n")
			default:
				b.WriteString(" " + line + "\n")
			}
		}
	}
	_, err := fmt.Fprint(w, b.String())
	return err
}
