package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/iconkit/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the iconkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			if short {
				_, _ = fmt.Fprintln(w, build.Version)
				return
			}
			_, _ = fmt.Fprintf(w, "iconkit version %s (commit: %s, date: %s)\n",
				build.Version, build.Commit, build.Date)
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")
	return cmd
}
