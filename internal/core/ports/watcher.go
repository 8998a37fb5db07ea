package ports

import "iter"

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// TitleSource yields window titles as they change.
type TitleSource interface {
	// Titles returns an iterator over titles. It ends when the source is
	// exhausted or closed.
	Titles() iter.Seq[string]

	// Err returns the error that ended the sequence, if any.
	Err() error

	// Close stops the source and releases its resources.
	Close() error
}
