package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/Bastard-Software/depsync/internal/app/provision"
)

// State derives the current condition of one dependency directory: absent,
// present without usable repository metadata, or present at some revision.
// A repository that opens but has no resolvable HEAD (an earlier run died
// mid-provisioning) reports an empty revision so the caller can converge it
// through the fetch+checkout path.
func (s *Store) State(ctx context.Context, path string) (provision.RepoState, error) {
	if err := ctx.Err(); err != nil {
		return provision.RepoState{}, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return provision.RepoState{}, nil
	}
	if err != nil {
		return provision.RepoState{}, fmt.Errorf("stat dependency dir: %w", err)
	}
	if !info.IsDir() {
		return provision.RepoState{}, fmt.Errorf("dependency path %s is a file", path)
	}

	state := provision.RepoState{Exists: true}

	repo, err := git.PlainOpen(path)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return state, nil
		}
		return provision.RepoState{}, fmt.Errorf("open git repo: %w", err)
	}
	state.HasRepo = true

	ref, err := repo.Head()
	if err == nil {
		state.Revision = ref.Hash().String()
		return state, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) || errors.Is(err, plumbing.ErrObjectNotFound) {
		return state, nil
	}
	return provision.RepoState{}, fmt.Errorf("read HEAD: %w", err)
}
