package gitrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// UpdateSubmodules recursively initializes and updates any nested
// repositories referenced by the checked-out tree. Trees without submodules
// are the common case and a no-op.
func (s *Store) UpdateSubmodules(ctx context.Context, path string) error {
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

	submodules, err := worktree.Submodules()
	if err != nil {
		return fmt.Errorf("read submodules: %w", err)
	}
	if len(submodules) == 0 {
		return nil
	}

	s.logOp("git submodule update --init --recursive", path, "count", len(submodules))
	err = submodules.Update(&git.SubmoduleUpdateOptions{
		Init:              true,
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
	})
	if err != nil {
		if errors.Is(err, git.NoErrAlreadyUpToDate) {
			return nil
		}
		return fmt.Errorf("update submodules: %w", err)
	}
	return nil
}
