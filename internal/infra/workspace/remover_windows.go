//go:build windows

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

// NewPlatformRemover returns the Windows forceful remover. rd clears the
// read-only attributes rmdir-style deletes choke on.
func NewPlatformRemover() ForcefulRemover {
	return systemRemover{}
}

func (systemRemover) Remove(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "cmd", "/c", "rd", "/s", "/q", path)
	cmd.Stdout = io.Discard

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("rd /s /q: %w: %s", err, msg)
		}
		return fmt.Errorf("rd /s /q: %w", err)
	}
	return nil
}
