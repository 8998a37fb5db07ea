// Package badgesync mirrors the unread count in a window title onto the host taskbar badge.
package badgesync

import (
	"context"
	"iter"
	"regexp"
	"sync"

	"go.trai.ch/iconkit/internal/core/domain"
	"go.trai.ch/iconkit/internal/core/ports"
)

// Syncer pushes the count found in each observed title to a BadgeSetter,
// skipping titles whose count is already shown.
type Syncer struct {
	setter  ports.BadgeSetter
	log     ports.Logger
	pattern *regexp.Regexp

	mu     sync.Mutex
	last   int
	synced bool
}

// New creates a Syncer. A nil pattern uses domain.DefaultTitlePattern.
func New(setter ports.BadgeSetter, log ports.Logger, pattern *regexp.Regexp) *Syncer {
	return &Syncer{
		setter:  setter,
		log:     log,
		pattern: pattern,
	}
}

// Observe extracts the count from title and sets the badge when it changed.
// A count is only remembered once the host accepted it, so a failed push is
// retried on the next title.
func (s *Syncer) Observe(ctx context.Context, title string) error {
	count := domain.CountFromTitle(title, s.pattern)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.synced && s.last == count {
		return nil
	}
	if err := s.setter.SetBadge(ctx, count); err != nil {
		return err
	}

	s.last = count
	s.synced = true
	s.log.Debug("badge updated", "count", count)
	return nil
}

// Last returns the most recently pushed count and whether any push succeeded.
func (s *Syncer) Last() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.synced
}

// Run observes every title from titles until the sequence ends or ctx is done.
// Push failures are logged and do not stop the loop. Run returns as soon as
// ctx is done, even while titles is blocked waiting for input.
func (s *Syncer) Run(ctx context.Context, titles iter.Seq[string]) error {
	next := make(chan string)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		defer close(next)
		for title := range titles {
			select {
			case next <- title:
			case <-stop:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case title, ok := <-next:
			if !ok {
				return ctx.Err()
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.Observe(ctx, title); err != nil {
				s.log.Error(err)
			}
		}
	}
}
