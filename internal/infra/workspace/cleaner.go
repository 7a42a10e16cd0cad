package workspace

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Bastard-Software/depsync/internal/domain"
)

// Cleaner removes every dependency directory under the workspace root.
// Cleanup is best-effort: a directory that refuses to die is recorded and
// the remaining entries are still attempted. Version-control tooling leaves
// read-only files behind on some platforms, so a failed delete is retried
// after clearing modes, then handed to the platform's forceful remover.
type Cleaner struct {
	remover ForcefulRemover
	logger  *slog.Logger
}

func NewCleaner(remover ForcefulRemover, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{remover: remover, logger: logger}
}

func (c *Cleaner) Clean(ctx context.Context, root string) domain.CleanReport {
	report := domain.CleanReport{Failed: map[string]string{}}

	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.Missing = true
			return report
		}
		c.logger.Warn("cannot read workspace root", "root", root, "error", err)
		report.Failed[root] = err.Error()
		return report
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		c.logger.Info("removing dependency directory", "path", path)
		if err := c.removeDir(ctx, path); err != nil {
			c.logger.Warn("could not remove dependency directory", "path", path, "error", err)
			report.Failed[path] = err.Error()
			continue
		}
		report.Removed = append(report.Removed, entry.Name())
	}
	return report
}

func (c *Cleaner) removeDir(ctx context.Context, path string) error {
	err := os.RemoveAll(path)
	if err == nil {
		return nil
	}

	// Read-only attributes are the usual culprit. Clear them and retry
	// before reaching for the platform fallback.
	makeWritable(path)
	if err = os.RemoveAll(path); err == nil {
		return nil
	}

	if c.remover == nil {
		return err
	}
	c.logger.Warn("library delete failed, invoking system remover", "path", path, "error", err)
	if fallbackErr := c.remover.Remove(ctx, path); fallbackErr != nil {
		// The fallback's own failure does not replace the original one.
		return errors.Join(err, fallbackErr)
	}
	return nil
}

func makeWritable(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			_ = os.Chmod(path, 0o755)
		} else {
			_ = os.Chmod(path, 0o644)
		}
		return nil
	})
}
