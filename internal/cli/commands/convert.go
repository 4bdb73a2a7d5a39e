package commands

import (
	"strings"

	"github.com/pixelacme/uniparse/convert"
	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Export a file as JSON, YAML or TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := convert.ParseFormat(to)
			if err != nil {
				return err
			}
			doc, err := openDocument(cmd, args[0])
			if err != nil {
				return err
			}
			return convert.Write(cmd.OutOrStdout(), f, doc.tree)
		},
	}

	var names []string
	for _, f := range convert.Formats() {
		names = append(names, string(f))
	}
	cmd.Flags().StringVar(&to, "to", string(convert.JSON), "output format ("+strings.Join(names, "|")+")")
	_ = cmd.RegisterFlagCompletionFunc("to", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
