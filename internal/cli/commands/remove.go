package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand() *cobra.Command {
	var inPlace bool

	cmd := &cobra.Command{
		Use:     "remove FILE SEGMENT...",
		Aliases: []string{"rm"},
		Short:   "Remove the value at a path",
		Example: `  uniparse remove go.mod require github.com/pkg/errors -w`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(cmd, args[0])
			if err != nil {
				return err
			}
			if _, err := doc.tree.Remove(args[1:]); err != nil {
				return fmt.Errorf("%s: %w", doc.path, err)
			}
			return doc.save(cmd, inPlace)
		},
	}

	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "write the result to the file instead of stdout")
	return cmd
}
