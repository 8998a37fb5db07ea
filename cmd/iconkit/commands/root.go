// Package commands implements the CLI commands for iconkit.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/iconkit/internal/build"
	"go.trai.ch/iconkit/internal/core/ports"
)

// CLI represents the command line interface for iconkit.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Status(ctx context.Context) error
	IconPath(ctx context.Context, name string) error
	BadgePath(ctx context.Context, count int) error
	ListIcons(ctx context.Context) error
	Preload(ctx context.Context, names []string) error
	SetBadge(ctx context.Context, count int) error
	ClearBadge(ctx context.Context) error
	OpenTitleSource(ctx context.Context, path string, stdin io.Reader) (ports.TitleSource, error)
	WatchBadge(ctx context.Context, src ports.TitleSource) error
	IconElement(ctx context.Context, name string, attrs map[string]string) error
	BadgeElement(ctx context.Context, count int, attrs map[string]string) error
}

const (
	groupIcons = "icons"
	groupBadge = "badge"
)

// New wires every subcommand onto a root command backed by a.
func New(a Application) *CLI {
	root := &cobra.Command{
		Use:           "iconkit",
		Short:         "Resolve icons and set the taskbar badge through the host shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}
	root.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit, build.Date,
	))
	root.InitDefaultVersionFlag()
	root.InitDefaultHelpFlag()
	root.Flags().Lookup("version").Usage = "Print the iconkit version"
	root.Flags().Lookup("help").Usage = "Show help for command"

	root.AddGroup(
		&cobra.Group{ID: groupIcons, Title: "Icon Commands:"},
		&cobra.Group{ID: groupBadge, Title: "Badge Commands:"},
	)

	c := &CLI{app: a, rootCmd: root}

	for _, cmd := range []*cobra.Command{
		c.newStatusCmd(),
		c.newPathCmd(),
		c.newListCmd(),
		c.newPreloadCmd(),
		c.newElementCmd(),
	} {
		cmd.GroupID = groupIcons
		root.AddCommand(cmd)
	}

	badge := c.newBadgeCmd()
	badge.GroupID = groupBadge
	root.AddCommand(badge, c.newVersionCmd())

	return c
}

// Execute runs the command selected by the arguments under ctx.
func (c *CLI) Execute(ctx context.Context) error {
	return c.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and errors.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput redirects stdin, which badge watch reads titles from.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
