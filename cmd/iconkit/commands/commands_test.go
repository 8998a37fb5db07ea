package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconkit/cmd/iconkit/commands"
	"go.trai.ch/iconkit/internal/build"
	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
)

type call struct {
	method string
	name   string
	count  int
	names  []string
	attrs  map[string]string
}

type emptySource struct{}

func (emptySource) Titles() iter.Seq[string] { return func(func(string) bool) {} }
func (emptySource) Err() error               { return nil }
func (emptySource) Close() error             { return nil }

type mockApp struct {
	calls    []call
	err      error
	openPath string
	stdin    io.Reader
}

func (m *mockApp) record(c call) error {
	m.calls = append(m.calls, c)
	return m.err
}

func (m *mockApp) Status(context.Context) error {
	return m.record(call{method: "Status"})
}

func (m *mockApp) IconPath(_ context.Context, name string) error {
	return m.record(call{method: "IconPath", name: name})
}

func (m *mockApp) BadgePath(_ context.Context, count int) error {
	return m.record(call{method: "BadgePath", count: count})
}

func (m *mockApp) ListIcons(context.Context) error {
	return m.record(call{method: "ListIcons"})
}

func (m *mockApp) Preload(_ context.Context, names []string) error {
	return m.record(call{method: "Preload", names: names})
}

func (m *mockApp) SetBadge(_ context.Context, count int) error {
	return m.record(call{method: "SetBadge", count: count})
}

func (m *mockApp) ClearBadge(context.Context) error {
	return m.record(call{method: "ClearBadge"})
}

func (m *mockApp) OpenTitleSource(_ context.Context, path string, stdin io.Reader) (ports.TitleSource, error) {
	m.openPath = path
	m.stdin = stdin
	return emptySource{}, m.err
}

func (m *mockApp) WatchBadge(_ context.Context, _ ports.TitleSource) error {
	return m.record(call{method: "WatchBadge"})
}

func (m *mockApp) IconElement(_ context.Context, name string, attrs map[string]string) error {
	return m.record(call{method: "IconElement", name: name, attrs: attrs})
}

func (m *mockApp) BadgeElement(_ context.Context, count int, attrs map[string]string) error {
	return m.record(call{method: "BadgeElement", count: count, attrs: attrs})
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want call
	}{
		{name: "status", args: []string{"status"}, want: call{method: "Status"}},
		{name: "path", args: []string{"path", "icon.ico"}, want: call{method: "IconPath", name: "icon.ico"}},
		{name: "list", args: []string{"list"}, want: call{method: "ListIcons"}},
		{name: "preload without names", args: []string{"preload"}, want: call{method: "Preload", names: []string{}}},
		{
			name: "preload with names",
			args: []string{"preload", "tray.png", "badges/4.ico"},
			want: call{method: "Preload", names: []string{"tray.png", "badges/4.ico"}},
		},
		{name: "badge path", args: []string{"badge", "path", "3"}, want: call{method: "BadgePath", count: 3}},
		{name: "badge path zero", args: []string{"badge", "path", "0"}, want: call{method: "BadgePath", count: 0}},
		{name: "badge set", args: []string{"badge", "set", "12"}, want: call{method: "SetBadge", count: 12}},
		{name: "badge clear", args: []string{"badge", "clear"}, want: call{method: "ClearBadge"}},
		{
			name: "element icon",
			args: []string{"element", "icon", "icon.png", "--attr", "alt=Main", "-a", "width=32"},
			want: call{method: "IconElement", name: "icon.png", attrs: map[string]string{"alt": "Main", "width": "32"}},
		},
		{
			name: "element badge",
			args: []string{"element", "badge", "2"},
			want: call{method: "BadgeElement", count: 2, attrs: map[string]string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			require.Len(t, m.calls, 1)
			assert.Equal(t, tt.want.method, m.calls[0].method)
			assert.Equal(t, tt.want.name, m.calls[0].name)
			assert.Equal(t, tt.want.count, m.calls[0].count)
			if tt.want.names != nil {
				assert.ElementsMatch(t, tt.want.names, m.calls[0].names)
			}
			if tt.want.attrs != nil {
				assert.Equal(t, tt.want.attrs, m.calls[0].attrs)
			}
		})
	}
}

func TestCommands_InvalidArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "count not a number", args: []string{"badge", "set", "three"}, wantErr: domain.ErrInvalidCount.Error()},
		{name: "element count not a number", args: []string{"element", "badge", "x"}, wantErr: domain.ErrInvalidCount.Error()},
		{name: "attr without value", args: []string{"element", "icon", "a.png", "--attr", "width"}, wantErr: domain.ErrInvalidAttribute.Error()},
		{name: "path without name", args: []string{"path"}, wantErr: "accepts 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, m.calls)
		})
	}
}

func TestCommands_BadgeWatch(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		m := &mockApp{}
		cli := commands.New(m)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		stdin := strings.NewReader("Inbox (1)\n")
		cli.SetInput(stdin)
		cli.SetArgs([]string{"badge", "watch"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, m.openPath)
		assert.Same(t, stdin, m.stdin)
		require.Len(t, m.calls, 1)
		assert.Equal(t, "WatchBadge", m.calls[0].method)
	})

	t.Run("file", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "badge", "watch", "--file", "/tmp/title")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/title", m.openPath)
	})

	t.Run("open failure", func(t *testing.T) {
		m := &mockApp{err: domain.ErrTitleSourceFailed}
		_, err := execute(t, m, "badge", "watch", "-f", "/missing")
		require.ErrorIs(t, err, domain.ErrTitleSourceFailed)
		assert.Empty(t, m.calls)
	})
}

func TestCommands_AppError(t *testing.T) {
	m := &mockApp{err: errors.New("simulated error")}
	_, err := execute(t, m, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "iconkit version "+build.Version)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, build.Commit)

	out, err = execute(t, &mockApp{}, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, build.Version+"\n", out)
}

func TestCommands_HelpGroups(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Icon Commands:")
	assert.Contains(t, out, "Badge Commands:")
	assert.Contains(t, out, "preload")
}
