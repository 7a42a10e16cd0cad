package provision

import (
	"context"

	"github.com/Bastard-Software/depsync/internal/domain"
)

// RepoState is the derived state of one dependency directory. It is read
// fresh on every operation; nothing is cached across runs because external
// actors may change the directory between invocations.
type RepoState struct {
	Exists   bool
	HasRepo  bool
	Revision string
}

// RevisionStore is the version-control capability the synchronizer runs on.
// All mutating calls must be safely re-runnable against a repository already
// on disk: an interrupted run leaves partial directories behind.
type RevisionStore interface {
	State(ctx context.Context, path string) (RepoState, error)
	Clone(ctx context.Context, url, path string) error
	Fetch(ctx context.Context, path string) error
	Checkout(ctx context.Context, path, revision string) error
	UpdateSubmodules(ctx context.Context, path string) error
}

// Cleaner removes dependency directories best-effort and never fails the
// caller.
type Cleaner interface {
	Clean(ctx context.Context, root string) domain.CleanReport
}

// Synchronizer brings one dependency directory to its pinned revision.
type Synchronizer interface {
	Synchronize(ctx context.Context, root string, spec domain.DependencySpec) domain.Outcome
}

// IDGenerator mints the run identifier attached to every log line of a pass.
type IDGenerator interface {
	NewID() (string, error)
}
