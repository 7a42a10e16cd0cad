package gitrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// Fetch updates the origin remote. Unlike a status probe, a sync run with a
// stale working copy cannot proceed without a remote, so a missing origin is
// an error here.
func (s *Store) Fetch(ctx context.Context, path string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return err
	}

	repo, err := git.PlainOpen(path)
	if err != nil {
		return fmt.Errorf("open git repo: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return fmt.Errorf("read git remote: %w", err)
	}
	remoteURL := ""
	if cfg := remote.Config(); cfg != nil && len(cfg.URLs) > 0 {
		remoteURL = cfg.URLs[0]
	}
	auth, err := authForURL(remoteURL)
	if err != nil {
		return err
	}

	s.logOp("git fetch origin", path, "remote", remoteURL)
	err = repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: "origin",
		RefSpecs: []config.RefSpec{
			"+refs/heads/*:refs/remotes/origin/*",
		},
		Tags: git.AllTags,
		Auth: auth,
	})
	if err != nil {
		if errors.Is(err, git.NoErrAlreadyUpToDate) {
			return nil
		}
		return fmt.Errorf("fetch git repo: %w", err)
	}
	return nil
}
