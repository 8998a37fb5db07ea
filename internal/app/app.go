// Package app implements the application layer for iconkit.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.trai.ch/iconkit/internal/adapters/element"
	"go.trai.ch/iconkit/internal/adapters/watcher"
	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/iconkit/internal/engine/badgesync"
	"go.trai.ch/iconkit/internal/engine/resolver"
	"go.trai.ch/iconkit/internal/ui/style"
)

// App represents the main application logic.
type App struct {
	resolver *resolver.Resolver
	syncer   *badgesync.Syncer
	elements *element.Builder
	logger   ports.Logger

	out    io.Writer
	styles style.Styles
}

// New creates a new App instance writing results to stdout.
func New(
	res *resolver.Resolver,
	syncer *badgesync.Syncer,
	elements *element.Builder,
	log ports.Logger,
) *App {
	return &App{
		resolver: res,
		syncer:   syncer,
		elements: elements,
		logger:   log,
		out:      os.Stdout,
		styles:   style.New(os.Stdout),
	}
}

// WithOutput redirects command results to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	a.styles = style.New(w)
	return a
}

// Status prints whether a host bridge was found and where.
func (a *App) Status(_ context.Context) error {
	capability := a.resolver.Capability()
	if !capability.Available() {
		a.printf("%s %s\n", a.styles.Failure.Render(style.Cross), "host bridge unavailable")
		return nil
	}

	a.printf("%s %s\n", a.styles.Success.Render(style.Check), "host bridge available")
	a.printf("  %s %s\n", a.styles.Muted.Render("variant:"), capability.Variant)
	a.printf("  %s  %s\n", a.styles.Muted.Render("source:"), capability.Source)
	return nil
}

// IconPath prints the file path of the named icon.
func (a *App) IconPath(ctx context.Context, name string) error {
	path, err := a.resolver.ResolvePath(ctx, name)
	if err != nil {
		return err
	}
	a.printf("%s\n", path)
	return nil
}

// BadgePath prints the file path of the badge icon for count.
func (a *App) BadgePath(ctx context.Context, count int) error {
	path, err := a.resolver.ResolveBadgePath(ctx, count)
	if err != nil {
		return err
	}
	a.printf("%s\n", path)
	return nil
}

// ListIcons prints the names of all icons the host knows, one per line.
func (a *App) ListIcons(ctx context.Context) error {
	names, err := a.resolver.ListAvailable(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		a.printf("%s\n", name)
	}
	return nil
}

// Preload resolves the default icons plus names and prints one line per key.
// Individual failures are reported, not returned.
func (a *App) Preload(ctx context.Context, names []string) error {
	report := a.resolver.Preload(ctx, names...)

	width := 0
	for _, o := range report.Outcomes {
		width = max(width, len(o.Key))
	}

	for _, o := range report.Outcomes {
		if o.OK() {
			a.printf("%s %-*s  %s\n", a.styles.Success.Render(style.Check), width, o.Key, a.styles.Muted.Render(o.Path))
			continue
		}
		a.printf("%s %-*s  %s\n", a.styles.Failure.Render(style.Cross), width, o.Key, a.styles.Failure.Render(o.Err.Error()))
	}

	a.printf("%s of %s icons resolved\n",
		a.styles.Accent.Render(strconv.Itoa(report.Resolved())),
		strconv.Itoa(len(report.Outcomes)),
	)
	return nil
}

// SetBadge shows count on the taskbar badge and prints a status line.
func (a *App) SetBadge(ctx context.Context, count int) error {
	return a.setBadge(ctx, count, fmt.Sprintf("badge set to %d", count))
}

// ClearBadge removes the taskbar badge and prints a status line.
func (a *App) ClearBadge(ctx context.Context) error {
	return a.setBadge(ctx, 0, "badge cleared")
}

func (a *App) setBadge(ctx context.Context, count int, done string) error {
	if err := a.resolver.SetBadge(ctx, count); err != nil {
		a.printf("%s %s\n", a.styles.Failure.Render(style.Cross), a.styles.Failure.Render(err.Error()))
		return errors.Join(domain.ErrCommandFailed, err)
	}
	a.printf("%s %s\n", a.styles.Success.Render(style.Check), a.styles.Success.Render(done))
	return nil
}

// OpenTitleSource returns a source reading titles from the file at path,
// re-read on every change, or from the lines of stdin when path is empty.
func (a *App) OpenTitleSource(ctx context.Context, path string, stdin io.Reader) (ports.TitleSource, error) {
	if path == "" {
		return watcher.NewLineSource(stdin), nil
	}
	return watcher.WatchFile(ctx, path, domain.TitleDebounce, a.logger)
}

// WatchBadge mirrors the unread count of every title from src onto the
// taskbar badge until src ends or ctx is done. It closes src.
func (a *App) WatchBadge(ctx context.Context, src ports.TitleSource) error {
	defer func() { _ = src.Close() }()

	a.logger.Info("mirroring window titles to the taskbar badge")
	err := a.syncer.Run(ctx, src.Titles())
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return err
	}
	return src.Err()
}

// IconElement prints an <img> element for the named icon.
func (a *App) IconElement(ctx context.Context, name string, attrs map[string]string) error {
	el, err := a.elements.Icon(ctx, name, attrs)
	if err != nil {
		return err
	}
	a.printf("%s\n", el)
	return nil
}

// BadgeElement prints an <img> element for the badge icon of count.
func (a *App) BadgeElement(ctx context.Context, count int, attrs map[string]string) error {
	el, err := a.elements.Badge(ctx, count, attrs)
	if err != nil {
		return err
	}
	a.printf("%s\n", el)
	return nil
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
