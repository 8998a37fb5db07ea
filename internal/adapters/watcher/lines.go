package watcher

import (
	"bufio"
	"io"
	"iter"
	"sync"

	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TitleSource = (*LineSource)(nil)

// LineSource yields every line of a reader as a title.
type LineSource struct {
	scanner *bufio.Scanner

	mu  sync.Mutex
	err error
}

// NewLineSource creates a LineSource reading from r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

// Titles returns an iterator over the lines of the reader.
func (s *LineSource) Titles() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.scanner.Scan() {
			if !yield(s.scanner.Text()) {
				return
			}
		}
		if err := s.scanner.Err(); err != nil {
			s.mu.Lock()
			s.err = zerr.Wrap(err, domain.ErrTitleSourceFailed.Error())
			s.mu.Unlock()
		}
	}
}

// Err returns the read error that ended the sequence, if any.
func (s *LineSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close does nothing. The reader is owned by the caller.
func (s *LineSource) Close() error {
	return nil
}
