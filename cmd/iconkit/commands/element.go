package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/iconkit/internal/adapters/element"
)

func (c *CLI) newElementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "element",
		Short: "Print an HTML image element for an icon",
	}
	cmd.AddCommand(c.newElementIconCmd())
	cmd.AddCommand(c.newElementBadgeCmd())
	return cmd
}

func (c *CLI) newElementIconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon <name>",
		Short: "Print an image element for an icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := attrsFlag(cmd)
			if err != nil {
				return err
			}
			return c.app.IconElement(cmd.Context(), args[0], attrs)
		},
	}
	addAttrFlag(cmd)
	return cmd
}

func (c *CLI) newElementBadgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badge <count>",
		Short: "Print an image element for the badge icon of a count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[0])
			if err != nil {
				return err
			}
			attrs, err := attrsFlag(cmd)
			if err != nil {
				return err
			}
			return c.app.BadgeElement(cmd.Context(), count, attrs)
		},
	}
	addAttrFlag(cmd)
	return cmd
}

func addAttrFlag(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("attr", "a", nil, "Set an element attribute as key=value (repeatable)")
}

func attrsFlag(cmd *cobra.Command) (map[string]string, error) {
	pairs, _ := cmd.Flags().GetStringArray("attr")
	return element.ParseAttrs(pairs)
}
