package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE [SEGMENT...]",
		Short: "Print the value at a path",
		Long: `Print the value found by following the path segments from the root.

Strings, booleans and assignments print as plain text. Blocks, named
arguments, calls and arrays print as JSON. Without segments the whole
file is printed as JSON.`,
		Example: `  uniparse get build.gradle plugins id
  uniparse get go.mod require github.com/spf13/cobra`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(cmd, args[0])
			if err != nil {
				return err
			}
			path := args[1:]
			n, ok := doc.tree.Get(path)
			if !ok {
				return fmt.Errorf("%s: no value at %s", doc.path, joinPath(path))
			}
			return printNode(cmd.OutOrStdout(), n)
		},
	}
}
