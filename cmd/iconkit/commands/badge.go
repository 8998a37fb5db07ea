package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/ui/output"
	"go.trai.ch/zerr"
)

func (c *CLI) newBadgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badge",
		Short: "Resolve badge icons and control the taskbar badge",
	}
	cmd.AddCommand(c.newBadgePathCmd())
	cmd.AddCommand(c.newBadgeSetCmd())
	cmd.AddCommand(c.newBadgeClearCmd())
	cmd.AddCommand(c.newBadgeWatchCmd())
	return cmd
}

func (c *CLI) newBadgePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <count>",
		Short: "Print the file path of the badge icon for a count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[0])
			if err != nil {
				return err
			}
			return c.app.BadgePath(cmd.Context(), count)
		},
	}
}

func (c *CLI) newBadgeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <count>",
		Short: "Show a count on the taskbar badge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[0])
			if err != nil {
				return err
			}
			return c.app.SetBadge(cmd.Context(), count)
		},
	}
}

func (c *CLI) newBadgeClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the taskbar badge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ClearBadge(cmd.Context())
		},
	}
}

func (c *CLI) newBadgeWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Mirror the unread count of window titles onto the taskbar badge",
		Long: "Reads window titles, one per line, from stdin or from a file given with --file,\n" +
			"and sets the taskbar badge to the count found in each title, e.g. \"Inbox (3)\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			if file == "" && output.IsTerminal(cmd.InOrStdin()) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "reading window titles from stdin, press Ctrl+D to stop")
			}

			src, err := c.app.OpenTitleSource(cmd.Context(), file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return c.app.WatchBadge(cmd.Context(), src)
		},
	}
	cmd.Flags().StringP("file", "f", "", "Watch a file holding the window title instead of reading stdin")
	return cmd
}

func parseCount(arg string) (int, error) {
	count, err := strconv.Atoi(arg)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrInvalidCount.Error()), "count", arg)
	}
	return count, nil
}
