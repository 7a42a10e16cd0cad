package provision

import "errors"

// ErrNoRepository marks a dependency directory that exists but holds no
// usable version-control metadata. The synchronizer cannot converge such a
// directory without destroying whatever is in it, which it never does on its
// own; --force is the recovery path.
var ErrNoRepository = errors.New("directory exists but is not a repository")

var ErrWorkspaceRequired = errors.New("workspace root is required")
var ErrEmptyRegistry = errors.New("dependency registry is empty")
