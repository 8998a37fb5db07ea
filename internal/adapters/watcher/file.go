package watcher

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TitleSource = (*FileSource)(nil)

// FileSource yields the first line of a file each time the file changes.
//
// The parent directory is watched rather than the file, so editors that save
// by renaming a temporary file over the original are picked up. Only the
// latest title is kept: a slow consumer skips intermediate titles.
type FileSource struct {
	path      string
	log       ports.Logger
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer

	mu     sync.Mutex
	latest string
	notify chan struct{}
	done   chan struct{}
	cancel context.CancelFunc
}

// WatchFile starts watching the title file at path. The current content is
// the first title yielded. Changes within window of each other are coalesced.
func WatchFile(ctx context.Context, path string, window time.Duration, log ports.Logger) (*FileSource, error) {
	path = filepath.Clean(path)
	title, err := readTitle(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTitleSourceFailed.Error()), "path", path)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrTitleSourceFailed.Error())
	}
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		_ = fsWatcher.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTitleSourceFailed.Error()), "path", path)
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &FileSource{
		path:      path,
		log:       log,
		fsWatcher: fsWatcher,
		latest:    title,
		notify:    make(chan struct{}, 1),
		done:      make(chan struct{}),
		cancel:    cancel,
	}
	s.debouncer = NewDebouncer(window, s.reload)
	s.notify <- struct{}{}

	go s.processEvents(ctx)
	return s, nil
}

// Titles returns an iterator over the file's titles. It ends when the source
// is closed or the context passed to WatchFile is done.
func (s *FileSource) Titles() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			select {
			case <-s.done:
				return
			case <-s.notify:
				s.mu.Lock()
				title := s.latest
				s.mu.Unlock()
				if !yield(title) {
					return
				}
			}
		}
	}
}

// Err always returns nil. Read failures after start are logged and skipped.
func (s *FileSource) Err() error {
	return nil
}

// Close stops watching and ends the title sequence.
func (s *FileSource) Close() error {
	s.cancel()
	<-s.done
	return nil
}

func (s *FileSource) processEvents(ctx context.Context) {
	defer close(s.done)
	defer s.debouncer.Stop()
	defer func() { _ = s.fsWatcher.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-s.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				s.debouncer.Trigger()
			}
		case err, ok := <-s.fsWatcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("title watcher error", "path", s.path, "error", err.Error())
		}
	}
}

func (s *FileSource) reload() {
	title, err := readTitle(s.path)
	if err != nil {
		s.log.Debug("title file unreadable", "path", s.path, "error", err.Error())
		return
	}

	s.mu.Lock()
	s.latest = title
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func readTitle(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
