package ident

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunIDs mints lexically sortable run identifiers so log lines from
// consecutive provisioning passes can be grouped and ordered.
type RunIDs struct {
	entropy *ulid.MonotonicEntropy
}

func NewRunIDs() *RunIDs {
	return &RunIDs{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *RunIDs) NewID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), g.entropy)
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return id.String(), nil
}
