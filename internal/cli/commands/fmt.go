package commands

import (
	"github.com/spf13/cobra"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	var inPlace bool

	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Print files in normalized form",
		Long: `Parse each file and print it back in the normalized layout of its grammar.
Comments are dropped. With -w the files are rewritten in place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				doc, err := openDocument(cmd, path)
				if err != nil {
					return err
				}
				if err := doc.save(cmd, inPlace); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "rewrite files in place instead of printing them")
	return cmd
}
