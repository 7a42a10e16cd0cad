package gitrepo

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Checkout moves the working tree to an exact revision, leaving HEAD
// detached. Callers re-read the revision afterwards; a checkout that lands
// elsewhere is caught by that verification, not here.
func (s *Store) Checkout(ctx context.Context, path, revision string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return err
	}

	repo, err := git.PlainOpen(path)
	if err != nil {
		return fmt.Errorf("open git repo: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	s.logOp("git checkout", path, "revision", revision)
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: plumbing.NewHash(revision)}); err != nil {
		return fmt.Errorf("checkout %s: %w", revision, err)
	}
	return nil
}
