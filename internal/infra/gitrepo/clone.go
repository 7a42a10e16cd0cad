package gitrepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

func (s *Store) Clone(ctx context.Context, url, path string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return err
	}

	parent := filepath.Dir(path)
	if parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create workspace dir: %w", err)
		}
	}

	auth, err := authForURL(url)
	if err != nil {
		return err
	}

	s.logOp("git clone", path, "url", url)
	_, err = git.PlainCloneContext(ctx, path, false, &git.CloneOptions{URL: url, Auth: auth})
	if err != nil {
		return fmt.Errorf("clone git repo: %w", err)
	}
	return nil
}
