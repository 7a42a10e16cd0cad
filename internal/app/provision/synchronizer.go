package provision

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Bastard-Software/depsync/internal/domain"
)

// SyncService implements the revision synchronizer: it brings one dependency
// directory to its exact pinned revision whether the directory is absent,
// present at another revision, or already correct.
type SyncService struct {
	store RevisionStore
}

func NewSyncService(store RevisionStore) *SyncService {
	return &SyncService{store: store}
}

// Synchronize never returns an error; failures are captured in the outcome so
// the orchestrator can keep going with the rest of the registry.
func (s *SyncService) Synchronize(ctx context.Context, root string, spec domain.DependencySpec) domain.Outcome {
	started := time.Now()
	done := func(kind domain.OutcomeKind, revision string, err error) domain.Outcome {
		return domain.Outcome{
			Name:     spec.Name,
			Kind:     kind,
			Revision: revision,
			Err:      err,
			Duration: time.Since(started),
		}
	}
	failed := func(err error) domain.Outcome {
		return done(domain.OutcomeFailed, "", err)
	}

	if err := spec.Validate(); err != nil {
		return failed(err)
	}

	path := filepath.Join(root, spec.Name)
	state, err := s.store.State(ctx, path)
	if err != nil {
		return failed(fmt.Errorf("inspect %s: %w", spec.Name, err))
	}

	switch {
	case !state.Exists:
		if err := s.store.Clone(ctx, spec.URL, path); err != nil {
			return failed(fmt.Errorf("clone %s: %w", spec.URL, err))
		}
		if err := s.checkoutPinned(ctx, path, spec); err != nil {
			return failed(err)
		}

	case !state.HasRepo:
		return failed(fmt.Errorf("%s: %w", path, ErrNoRepository))

	case state.Revision == spec.Revision:
		// Fast idempotent path: no remote access at all.
		return done(domain.OutcomeUnchanged, state.Revision, nil)

	default:
		// Present at another revision, or present with no readable HEAD
		// (interrupted earlier run); both converge via fetch+checkout.
		if err := s.store.Fetch(ctx, path); err != nil {
			return failed(fmt.Errorf("fetch %s: %w", spec.Name, err))
		}
		if err := s.checkoutPinned(ctx, path, spec); err != nil {
			return failed(err)
		}
	}

	// Re-read the revision even though every step reported success; a
	// checkout can leave the tree elsewhere without a non-zero result.
	after, err := s.store.State(ctx, path)
	if err != nil {
		return failed(fmt.Errorf("verify %s: %w", spec.Name, err))
	}
	if after.Revision != spec.Revision {
		return failed(fmt.Errorf("%w: expected %s got %s",
			domain.ErrVerificationMismatch, spec.Revision, after.Revision))
	}
	return done(domain.OutcomeSynchronized, after.Revision, nil)
}

func (s *SyncService) checkoutPinned(ctx context.Context, path string, spec domain.DependencySpec) error {
	if err := s.store.Checkout(ctx, path, spec.Revision); err != nil {
		return fmt.Errorf("checkout %s at %s: %w", spec.Name, shortRevision(spec.Revision), err)
	}
	if err := s.store.UpdateSubmodules(ctx, path); err != nil {
		return fmt.Errorf("update submodules of %s: %w", spec.Name, err)
	}
	return nil
}

func shortRevision(revision string) string {
	if len(revision) > 8 {
		return revision[:8]
	}
	return revision
}
