package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the host bridge is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Status(cmd.Context())
		},
	}
}

func (c *CLI) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <icon>",
		Short: "Print the file path of an icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.IconPath(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the icons the host provides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ListIcons(cmd.Context())
		},
	}
}

func (c *CLI) newPreloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preload [icons...]",
		Short: "Resolve the default icons and any given icons, reporting each result",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Preload(cmd.Context(), args)
		},
	}
}
