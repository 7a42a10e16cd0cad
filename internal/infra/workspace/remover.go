package workspace

import "context"

// ForcefulRemover is the platform capability behind the cleanup fallback: an
// operating-system-native forced recursive delete, used only when the
// library-level delete cannot complete. One implementation exists per
// platform family, selected at compile time.
type ForcefulRemover interface {
	Remove(ctx context.Context, path string) error
}
