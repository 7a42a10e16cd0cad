package gitrepo

import (
	"context"
	"log/slog"
	"time"
)

// Store implements the provision.RevisionStore port on go-git. Every
// operation is re-runnable against a repository already on disk and derives
// all state from the working copy at call time.
type Store struct {
	options StoreOptions
}

type StoreOptions struct {
	// Timeout bounds each individual version-control operation so an
	// unreachable remote cannot hang a whole run. Zero disables the bound.
	Timeout time.Duration
	Logger  *slog.Logger
}

func NewStore() *Store {
	return &Store{}
}

func NewStoreWithOptions(options StoreOptions) *Store {
	return &Store{options: options}
}

func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.options.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.options.Timeout)
}

// logOp announces a version-control operation before it runs, the one place
// a user can see what the tool is about to do to their disk and network.
func (s *Store) logOp(operation, path string, args ...any) {
	if s.options.Logger == nil {
		return
	}
	fields := append([]any{"path", path}, args...)
	s.options.Logger.Info(operation, fields...)
}
