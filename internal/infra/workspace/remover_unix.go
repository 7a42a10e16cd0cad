//go:build !windows

package workspace

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

type systemRemover struct{}

// NewPlatformRemover returns the POSIX forceful remover. The path is passed
// as an argument vector entry, never through a shell.
func NewPlatformRemover() ForcefulRemover {
	return systemRemover{}
}

func (systemRemover) Remove(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "rm", "-rf", path)
	cmd.Stdout = io.Discard

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("rm -rf: %w: %s", err, msg)
		}
		return fmt.Errorf("rm -rf: %w", err)
	}
	return nil
}
