package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pixelacme/uniparse/tree"
	"github.com/spf13/cobra"
)

// Value types accepted by set --type.
var valueTypes = []string{"string", "bool", "assignment", "array", "block"}

// NewSetCommand creates the set command.
func NewSetCommand() *cobra.Command {
	var (
		value   string
		typ     string
		inPlace bool
	)

	cmd := &cobra.Command{
		Use:   "set FILE SEGMENT... --value VALUE",
		Short: "Set the value at a path",
		Long: `Insert or overwrite the value at a path. Every segment before the last
must name an existing block; missing blocks are not created, so add them
first with --type block.

Value types:
  string      quoted text (default)
  bool        true or false
  assignment  a raw expression, written after '=' as given
  array       comma-separated list of strings
  block       an empty block; --value is ignored`,
		Example: `  uniparse set build.gradle version --type assignment --value "'1.1.0'" -w
  uniparse set build.zig.zon paths --type array --value build.zig,src`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseValue(typ, value)
			if err != nil {
				return err
			}
			doc, err := openDocument(cmd, args[0])
			if err != nil {
				return err
			}
			if err := doc.tree.Set(args[1:], n); err != nil {
				return fmt.Errorf("%s: %w", doc.path, err)
			}
			return doc.save(cmd, inPlace)
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "value to store")
	cmd.Flags().StringVarP(&typ, "type", "t", "string", "value type ("+strings.Join(valueTypes, "|")+")")
	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "write the result to the file instead of stdout")
	_ = cmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return valueTypes, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func parseValue(typ, value string) (tree.Node, error) {
	switch typ {
	case "string":
		return tree.String(value), nil
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid bool value %q", value)
		}
		return tree.Bool(b), nil
	case "assignment":
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("assignment value must not be empty")
		}
		return tree.Assignment(value), nil
	case "array":
		items := tree.Array{}
		if value == "" {
			return items, nil
		}
		for _, s := range strings.Split(value, ",") {
			items = append(items, strings.TrimSpace(s))
		}
		return items, nil
	case "block":
		return tree.NewBlock(""), nil
	}
	return nil, fmt.Errorf("unknown value type %q (want %s)", typ, strings.Join(valueTypes, ", "))
}
